// Package planner implements the state container behind the board: an
// append-only, deletable log of added workouts plus a per-block aggregate
// maintained incrementally as a materialized view of that log.
//
// The planner exposes exactly three mutations — AddWorkout, DeleteEntry and
// Reset — and read accessors that return copies. All calls are expected to
// run on the UI event loop, one interaction at a time, so the planner does
// no locking of its own.
package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fitboard/internal/catalog"
	"github.com/alexanderramin/fitboard/internal/domain"
	"github.com/google/uuid"
)

type Planner struct {
	catalog *catalog.Catalog
	entries []domain.LogEntry

	// Aggregate view, kept in first-occurrence order with a name index.
	// Updated on every log mutation, never recomputed by full scan.
	records []*domain.AggregateRecord
	byName  map[string]*domain.AggregateRecord

	seq int64
}

// New creates an empty planner over the given catalog.
func New(cat *catalog.Catalog) *Planner {
	return &Planner{
		catalog: cat,
		byName:  make(map[string]*domain.AggregateRecord),
	}
}

// Catalog returns the catalog this planner selects blocks from.
func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// AddWorkout appends one instance of the given catalog block to the log and
// bumps its aggregate count. It is the single semantic add operation; both
// gesture modalities in the UI (direct select and grab/drop) end up here.
//
// The entry token is a UUID, so uniqueness does not depend on wall-clock
// resolution; Seq additionally orders entries even within one time quantum.
func (p *Planner) AddWorkout(blockID string) (domain.LogEntry, error) {
	block, ok := p.catalog.Get(blockID)
	if !ok {
		return domain.LogEntry{}, fmt.Errorf("unknown block %q", blockID)
	}

	p.seq++
	entry := domain.LogEntry{
		ID:         uuid.New().String(),
		Seq:        p.seq,
		BlockName:  block.Name,
		DistanceKm: block.DistanceKm,
		AddedAt:    time.Now(),
	}
	p.entries = append(p.entries, entry)

	if r, ok := p.byName[block.Name]; ok {
		r.Count++
	} else {
		r := &domain.AggregateRecord{
			BlockName:  block.Name,
			DistanceKm: block.DistanceKm,
			Count:      1,
		}
		p.byName[block.Name] = r
		p.records = append(p.records, r)
	}

	return entry, nil
}

// DeleteEntry removes the log entry with the given token and decrements its
// aggregate record, dropping the record entirely when the count reaches zero.
// An unknown token is a no-op and returns false: a stale delete (e.g. a
// doubled click on a row that is already gone) must not fail.
func (p *Planner) DeleteEntry(token string) bool {
	idx := -1
	for i, e := range p.entries {
		if e.ID == token {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	// Capture the block name before the entry leaves the log; looking it
	// up afterwards would silently miss and leave the aggregate stale.
	name := p.entries[idx].BlockName
	p.entries = append(p.entries[:idx], p.entries[idx+1:]...)

	p.decrement(name)
	return true
}

func (p *Planner) decrement(name string) {
	r, ok := p.byName[name]
	if !ok {
		// Inconsistent aggregate; nothing to decrement.
		return
	}
	r.Count--
	if r.Count > 0 {
		return
	}
	delete(p.byName, name)
	for i, rec := range p.records {
		if rec == r {
			p.records = append(p.records[:i], p.records[i+1:]...)
			break
		}
	}
}

// Reset clears the log and the aggregate view. The catalog is untouched.
func (p *Planner) Reset() {
	p.entries = nil
	p.records = nil
	p.byName = make(map[string]*domain.AggregateRecord)
}

// Entries returns the log in insertion order. The returned slice is a copy.
func (p *Planner) Entries() []domain.LogEntry {
	out := make([]domain.LogEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Records returns the aggregate view in first-occurrence order.
// The returned slice holds copies; callers cannot alias planner state.
func (p *Planner) Records() []domain.AggregateRecord {
	out := make([]domain.AggregateRecord, 0, len(p.records))
	for _, r := range p.records {
		out = append(out, *r)
	}
	return out
}

// Len returns the number of live log entries.
func (p *Planner) Len() int { return len(p.entries) }

// Empty reports whether the log holds no entries.
func (p *Planner) Empty() bool { return len(p.entries) == 0 }

// TotalKm returns the accumulated distance across all live log entries.
func (p *Planner) TotalKm() float64 {
	var total float64
	for _, r := range p.records {
		total += r.TotalKm()
	}
	return total
}
