package domain

import "time"

// LogEntry is one recorded instance of a block being added to the plan.
// Entries are exclusively owned by the planner's log: they are created on
// every add, destroyed only by an explicit delete or a reset, and other
// components only ever see copies.
type LogEntry struct {
	ID         string // unique token, stable for the entry's lifetime
	Seq        int64  // monotonic insertion sequence; drives display order
	BlockName  string
	DistanceKm float64
	AddedAt    time.Time
}
