package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitboard/internal/chart"
	"github.com/alexanderramin/fitboard/internal/cli/formatter"
	"github.com/alexanderramin/fitboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardPane identifies which pane of the board has keyboard focus.
type boardPane int

const (
	paneCatalog boardPane = iota
	paneLog
)

// boardView is the home screen: the block catalog on the left, the chart
// and the workout log on the right. All planner mutations happen
// synchronously inside Update — one interaction event runs to completion
// before the next is processed.
type boardView struct {
	state *SharedState

	pane       boardPane
	catCursor  int
	logCursor  int
	lastAction string // transient feedback line under the log
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{state: state}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Board" }

func (v *boardView) ShortHelp() []key.Binding {
	if v.state.Carrying() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d/enter", "drop")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	if v.pane == paneLog {
		return []key.Binding{
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove entry")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "catalog")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "log")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursors()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *boardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	blocks := v.state.App.Catalog.Blocks()
	entries := v.state.App.Planner.Entries()

	// A carry gesture in flight: only drop and cancel apply.
	if v.state.Carrying() {
		switch msg.String() {
		case "d", "enter":
			if id, ok := v.state.DropCarry(); ok {
				v.addBlock(id)
			}
		case "esc":
			v.state.ClearCarry()
			v.lastAction = formatter.Dim("Dropped nothing.")
		}
		return v, nil
	}

	switch msg.String() {
	case "tab":
		if v.pane == paneCatalog {
			v.pane = paneLog
		} else {
			v.pane = paneCatalog
		}

	case "up", "k":
		if v.pane == paneCatalog && v.catCursor > 0 {
			v.catCursor--
		} else if v.pane == paneLog && v.logCursor > 0 {
			v.logCursor--
		}

	case "down", "j":
		if v.pane == paneCatalog && v.catCursor < len(blocks)-1 {
			v.catCursor++
		} else if v.pane == paneLog && v.logCursor < len(entries)-1 {
			v.logCursor++
		}

	case "enter", " ":
		// Direct select — the "click" modality.
		if v.pane == paneCatalog && v.catCursor < len(blocks) {
			v.addBlock(blocks[v.catCursor].ID)
		}

	case "g":
		// Grab — first half of the "drag" modality.
		if v.pane == paneCatalog && v.catCursor < len(blocks) {
			v.state.Grab(blocks[v.catCursor])
		}

	case "x", "backspace", "delete":
		if v.pane == paneLog && v.logCursor < len(entries) {
			v.deleteEntry(entries[v.logCursor])
		}

	case "r":
		if !v.state.App.Planner.Empty() {
			return v, pushView(newResetConfirmView(v.state))
		}
	}

	return v, nil
}

// addBlock funnels both gesture modalities into the one semantic add.
func (v *boardView) addBlock(blockID string) {
	entry, err := v.state.App.Planner.AddWorkout(blockID)
	if err != nil {
		v.lastAction = formatter.StyleRed.Render("Error: " + err.Error())
		return
	}
	v.lastAction = fmt.Sprintf("%s Added %s (%s)",
		formatter.StyleGreen.Render("✔"),
		formatter.Bold(entry.BlockName),
		formatter.Dim(domain.FormatDistance(entry.DistanceKm)),
	)
	v.clampCursors()
}

func (v *boardView) deleteEntry(entry domain.LogEntry) {
	if !v.state.App.Planner.DeleteEntry(entry.ID) {
		// Stale row, e.g. a doubled keypress; the log simply re-renders.
		v.clampCursors()
		return
	}
	v.lastAction = fmt.Sprintf("%s Removed %s",
		formatter.StyleRed.Render("✖"),
		formatter.Bold(entry.BlockName),
	)
	v.clampCursors()
}

// clampCursors keeps both cursors inside the current list bounds after
// any mutation (including resets confirmed in a view above this one).
func (v *boardView) clampCursors() {
	if n := v.state.App.Catalog.Len(); v.catCursor >= n {
		v.catCursor = max(0, n-1)
	}
	if n := v.state.App.Planner.Len(); v.logCursor >= n {
		v.logCursor = max(0, n-1)
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

const boardLeftPaneWidth = 30

func (v *boardView) View() string {
	leftPane := v.renderCatalogPane()
	rightPane := v.renderPlanPane()

	if v.state.Width < 80 {
		return "\n" + leftPane + "\n" + rightPane
	}

	rightWidth := v.state.Width - boardLeftPaneWidth - 3
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftCol := lipgloss.NewStyle().Width(boardLeftPaneWidth).Render(leftPane)
	divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

// renderCatalogPane renders the selectable block list.
func (v *boardView) renderCatalogPane() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("BLOCKS") + "\n\n")

	for i, block := range v.state.App.Catalog.Blocks() {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if v.pane == paneCatalog && i == v.catCursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		marker := ""
		if v.state.CarryingID == block.ID {
			marker = " " + formatter.StyleYellow.Render("✈")
		}

		b.WriteString(fmt.Sprintf("%s%s %s%s\n",
			cursor,
			nameStyle.Render(formatter.Truncate(block.Name, 14)),
			formatter.Dim(domain.FormatDistance(block.DistanceKm)),
			marker,
		))
	}

	return b.String()
}

// renderPlanPane renders the chart and the chronological log.
func (v *boardView) renderPlanPane() string {
	var b strings.Builder

	series := chart.Build(v.state.App.Planner.Records())
	b.WriteString(formatter.StyleHeader.Render("PLAN") + "\n\n")
	b.WriteString(formatter.RenderBarChart(series, 16))
	b.WriteString("\n\n")

	entries := v.state.App.Planner.Entries()
	if len(entries) > 0 {
		b.WriteString(formatter.StyleHeader.Render("LOG") + "\n\n")
		for i, e := range entries {
			cursor := "  "
			nameStyle := formatter.StyleFg
			if v.pane == paneLog && i == v.logCursor {
				cursor = formatter.StyleGreen.Render("▸ ")
				nameStyle = formatter.StyleBold
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursor,
				formatter.Dim(fmt.Sprintf("#%d", e.Seq)),
				nameStyle.Render(e.BlockName),
				formatter.Dim(domain.FormatDistance(e.DistanceKm)),
			))
		}
	}

	if v.lastAction != "" {
		b.WriteString("\n" + v.lastAction + "\n")
	}

	return b.String()
}
