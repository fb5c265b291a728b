package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitboard/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

const barBlock = "█"

// NoDataPlaceholder is rendered in place of the chart when the series is
// empty. An empty plan shows this text, never a row of zero-height bars.
const NoDataPlaceholder = "No workouts yet — pick a block to get started."

// RenderBarChart renders a horizontal bar chart from a series, one row per
// label. Bars are scaled so the largest count fills barWidth cells and are
// colored with the series' per-position colors.
//
//	Warm-up    ████████ 2
//	Active     ████ 1
func RenderBarChart(s chart.Series, barWidth int) string {
	if s.Empty() {
		return Dim(NoDataPlaceholder)
	}
	if barWidth < 1 {
		barWidth = 1
	}

	labelWidth := 0
	for _, l := range s.Labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}
	max := s.MaxCount()

	var b strings.Builder
	for i, label := range s.Labels {
		cells := s.Counts[i] * barWidth / max
		if cells < 1 {
			cells = 1 // every live record is visible, even next to a tall bar
		}
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Colors[i])).
			Render(strings.Repeat(barBlock, cells))

		b.WriteString(fmt.Sprintf("%s %s %s",
			StyleFg.Render(padRight(label, labelWidth)),
			bar,
			Bold(fmt.Sprintf("%d", s.Counts[i])),
		))
		if i < s.Len()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
