package cli

import (
	"testing"

	"github.com/alexanderramin/fitboard/internal/catalog"
	"github.com/alexanderramin/fitboard/internal/domain"
	"github.com/alexanderramin/fitboard/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cat, err := catalog.New([]domain.BlockDefinition{
		{ID: "warmup", Name: "Warm-up", DistanceKm: 0.4},
		{ID: "active", Name: "Active", DistanceKm: 1.0},
		{ID: "sprints", Name: "Sprints", DistanceKm: 0.2},
	})
	require.NoError(t, err)
	return &App{
		Catalog: cat,
		Planner: planner.New(cat),
	}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, nil
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }

func TestNewAppModelStartsAtBoard(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := &stubView{id: ViewForm, title: "Reset", viewText: "confirm"}

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := &stubView{id: ViewBoard, title: "Board"}
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_QuitKeys(t *testing.T) {
	t.Run("q quits from the board", func(t *testing.T) {
		m := newAppModel(testApp(t))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("ctrl+c quits everywhere", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = append(m.viewStack, &stubView{id: ViewForm, title: "Reset"})

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})

	t.Run("form view receives q instead of quitting", func(t *testing.T) {
		m := newAppModel(testApp(t))
		v := &stubView{id: ViewForm, title: "Reset"}
		m.viewStack = append(m.viewStack, v)

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		assert.False(t, m.quitting)
		require.Len(t, v.updateSeen, 1)
	})
}

func TestAppModel_EscPopsStack(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = append(m.viewStack, &stubView{id: ViewBoard, title: "Other"})

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_RefreshBroadcastsToAllViews(t *testing.T) {
	m := newAppModel(testApp(t))
	under := &stubView{id: ViewBoard, title: "Board"}
	over := &stubView{id: ViewForm, title: "Reset"}
	m.viewStack = []View{under, over}

	model, _ := m.Update(refreshViewMsg{})
	m = model.(appModel)

	require.Len(t, under.updateSeen, 1)
	require.Len(t, over.updateSeen, 1)
}

func TestAppModel_FormCompletePopsAndRefreshes(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = append(m.viewStack, &stubView{id: ViewForm, title: "Reset"})

	model, cmd := m.Update(formCompleteMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd, "a refresh command must follow the pop")
}

func TestAppModel_HeaderShowsPlanTotal(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	m.state.Width = 100

	assert.NotContains(t, m.renderHeader(), "km", "empty plan shows no total")

	_, err := app.Planner.AddWorkout("active")
	require.NoError(t, err)
	_, err = app.Planner.AddWorkout("active")
	require.NoError(t, err)

	assert.Contains(t, m.renderHeader(), "2 km")
}
