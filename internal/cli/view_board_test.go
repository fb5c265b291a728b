package cli

import (
	"testing"

	"github.com/alexanderramin/fitboard/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	return teatest.New(newAppModel(app), 100, 30)
}

func boardOf(t *testing.T, d *teatest.Driver) appModel {
	t.Helper()
	m, ok := d.Model.(appModel)
	require.True(t, ok)
	return m
}

func TestBoard_AddBySelect(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	// Enter on the first catalog entry — the click modality.
	d.PressEnter()

	require.Equal(t, 1, app.Planner.Len())
	entries := app.Planner.Entries()
	assert.Equal(t, "Warm-up", entries[0].BlockName)
	assert.Contains(t, d.View(), "Warm-up")
}

func TestBoard_AddAfterCursorMove(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressDown() // Active
	d.PressEnter()
	d.PressDown() // Sprints
	d.PressEnter()

	entries := app.Planner.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Active", entries[0].BlockName)
	assert.Equal(t, "Sprints", entries[1].BlockName)
}

func TestBoard_GrabAndDrop(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('g')
	m := boardOf(t, d)
	assert.True(t, m.state.Carrying())
	assert.Contains(t, d.View(), "carrying: Warm-up")

	d.PressKey('d')
	m = boardOf(t, d)
	assert.False(t, m.state.Carrying())

	// Drag and click are the same semantic add.
	require.Equal(t, 1, app.Planner.Len())
	assert.Equal(t, "Warm-up", app.Planner.Entries()[0].BlockName)
}

func TestBoard_GrabCancelledByEsc(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('g')
	d.PressEsc()

	m := boardOf(t, d)
	assert.False(t, m.state.Carrying())
	assert.True(t, app.Planner.Empty(), "a cancelled grab adds nothing")
}

func TestBoard_DeleteLogEntry(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressEnter() // Warm-up
	d.PressDown()
	d.PressEnter() // Active
	require.Equal(t, 2, app.Planner.Len())

	d.PressTab() // focus the log pane; cursor on the first entry
	d.PressKey('x')

	entries := app.Planner.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Active", entries[0].BlockName)

	records := app.Planner.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Active", records[0].BlockName)
}

func TestBoard_DeleteLastEntryKeepsCursorInBounds(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressEnter()
	d.PressEnter()
	d.PressTab()
	d.PressDown() // cursor on the second (last) entry
	d.PressKey('x')
	d.PressKey('x') // cursor clamped back onto the remaining entry

	assert.True(t, app.Planner.Empty())
}

func TestBoard_ChartPlaceholderWhenEmpty(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	assert.Contains(t, d.View(), "No workouts yet")

	d.PressEnter()
	out := d.View()
	assert.NotContains(t, out, "No workouts yet")
	assert.Contains(t, out, "█")
}

func TestBoard_ResetConfirmed(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressEnter()
	d.PressDown()
	d.PressEnter()
	require.Equal(t, 2, app.Planner.Len())

	d.PressKey('r')
	m := boardOf(t, d)
	require.Equal(t, ViewForm, m.activeView().ID(), "reset pushes a confirmation form")

	d.PressKey('y') // accept the confirm

	m = boardOf(t, d)
	assert.Equal(t, ViewBoard, m.activeView().ID())
	assert.True(t, app.Planner.Empty())
	assert.Empty(t, app.Planner.Records())
	assert.Equal(t, 3, app.Catalog.Len(), "catalog survives a reset")
}

func TestBoard_ResetCancelled(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressEnter()
	d.PressKey('r')

	d.PressEsc() // cancel the confirmation

	m := boardOf(t, d)
	assert.Equal(t, ViewBoard, m.activeView().ID())
	assert.Equal(t, 1, app.Planner.Len(), "a cancelled reset changes nothing")
}

func TestBoard_ResetIgnoredWhenEmpty(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('r')

	m := boardOf(t, d)
	assert.Equal(t, ViewBoard, m.activeView().ID(), "nothing to reset, no form")
}

func TestBoard_LogShowsEntriesInOrder(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressEnter() // Warm-up
	d.PressEnter() // Warm-up
	d.PressDown()
	d.PressEnter() // Active

	out := d.View()
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Active")
}
