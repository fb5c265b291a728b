// Package chart projects the planner's aggregate view into the parallel
// label/count/color triple a bar chart renders from. The projection is a
// pure function of the aggregate records; it holds no state of its own.
package chart

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fitboard/internal/domain"
)

// Series is a parallel triple: one label, count and color per aggregate
// record, in the records' first-occurrence order.
type Series struct {
	Labels []string
	Counts []int
	Colors []string // hex colors, e.g. "#d08770"
}

// Build projects aggregate records into a Series. Colors are a fixed
// hue rotation over the position index, so a given bar position always
// gets the same color regardless of how many records exist.
func Build(records []domain.AggregateRecord) Series {
	s := Series{
		Labels: make([]string, 0, len(records)),
		Counts: make([]int, 0, len(records)),
		Colors: make([]string, 0, len(records)),
	}
	for i, r := range records {
		s.Labels = append(s.Labels, r.BlockName)
		s.Counts = append(s.Counts, r.Count)
		s.Colors = append(s.Colors, ColorAt(i))
	}
	return s
}

// Empty reports whether the series has no data points. An empty series is
// rendered as an explicit "no data" placeholder, never as a chart of
// zero-height bars.
func (s Series) Empty() bool { return len(s.Labels) == 0 }

// Len returns the number of data points.
func (s Series) Len() int { return len(s.Labels) }

// MaxCount returns the largest count in the series, 0 when empty.
func (s Series) MaxCount() int {
	max := 0
	for _, c := range s.Counts {
		if c > max {
			max = c
		}
	}
	return max
}

// hueStep spaces consecutive bars 45 degrees apart on the color wheel,
// cycling after eight bars.
const hueStep = 45

// ColorAt returns the hex color for the bar at position index i.
func ColorAt(i int) string {
	hue := float64((i * hueStep) % 360)
	return hslToHex(hue, 0.55, 0.55)
}

// hslToHex converts an HSL color (h in degrees, s and l in [0,1]) to a
// "#rrggbb" hex string.
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)),
	)
}
