package domain

import "fmt"

// BlockDefinition is a named, fixed workout segment offered by the catalog.
// Definitions are created at startup and never mutated or destroyed during
// a session.
type BlockDefinition struct {
	ID         string
	Name       string
	DistanceKm float64
}

// Label returns the display string for a block, e.g. "Warm-up (0.4 km)".
func (b BlockDefinition) Label() string {
	return fmt.Sprintf("%s (%s)", b.Name, FormatDistance(b.DistanceKm))
}

// FormatDistance renders a distance in km with a trailing unit,
// trimming the fraction for whole kilometers: "2 km", "0.4 km".
func FormatDistance(km float64) string {
	if km == float64(int64(km)) {
		return fmt.Sprintf("%d km", int64(km))
	}
	return fmt.Sprintf("%.1f km", km)
}
