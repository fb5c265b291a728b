package domain

// AggregateRecord is the per-block running count derived from the log.
// It is a materialized view: it exists only while at least one matching
// log entry is live, so Count is always >= 1. A block whose count drops
// to zero has its record removed, never retained at zero.
type AggregateRecord struct {
	BlockName  string
	DistanceKm float64
	Count      int
}

// TotalKm returns the accumulated distance for this block.
func (r AggregateRecord) TotalKm() float64 {
	return r.DistanceKm * float64(r.Count)
}
