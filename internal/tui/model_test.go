package tui_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tarefas/internal/service"
	"tarefas/internal/testutil"
	"tarefas/internal/tui"
	"tarefas/internal/view"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newModel(svc service.Service) tui.Model {
	m := tui.New(context.Background(), svc, language.MustParse("pt-BR"), nil)
	m.SetClock(func() time.Time { return t0 })
	m.SetTimer(func(time.Duration) tea.Cmd { return nil })
	return m
}

// drain runs cmd and feeds every view message it produces back into m.
func drain(m tui.Model, cmd tea.Cmd) tui.Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case view.Msg:
			next, nextCmd := m.Update(msg)
			m = next.(tui.Model)
			queue = append(queue, nextCmd)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key and runs the resulting commands.
func press(m tui.Model, keys ...string) tui.Model {
	for _, k := range keys {
		next, cmd := m.Update(key(k))
		m = drain(next.(tui.Model), cmd)
	}
	return m
}

func start(svc service.Service) tui.Model {
	m := newModel(svc)
	return drain(m, m.Init())
}

func seeded() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Zebra", "", false)
	svc.AddTask(2, "abelha", "mel", true)
	svc.AddTask(3, "Casa", "", false)
	return svc
}

func TestModel_InitialLoad(t *testing.T) {
	m := newModel(seeded())
	assert.Contains(t, m.View(), view.PlaceholderLoading)

	m = drain(m, m.Init())

	assert.Equal(t, view.PhaseRendered, m.State().Phase)
	out := m.View()
	assert.Contains(t, out, "#1 Zebra")
	assert.Contains(t, out, "#2 abelha")
	assert.Contains(t, out, "mel")
	assert.Contains(t, out, view.NoDescription)
	assert.Contains(t, out, "Filter: All")
	assert.NotContains(t, out, view.PlaceholderLoading)
}

func TestModel_EmptyList(t *testing.T) {
	m := start(testutil.NewFakeService())

	assert.Equal(t, view.PhaseEmpty, m.State().Phase)
	assert.Contains(t, m.View(), view.PlaceholderEmpty)
}

func TestModel_LoadFailure(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &service.Error{Kind: service.ErrNetwork}

	m := start(svc)

	out := m.View()
	assert.Contains(t, out, view.PlaceholderUnavailable)
	assert.Contains(t, out, view.TextLoadFailed)
}

func TestModel_FilterAndSortKeys(t *testing.T) {
	m := start(seeded())

	m = press(m, "f")
	assert.Equal(t, view.FilterDone, m.State().Filter)
	require.Len(t, m.State().Visible, 1)
	assert.Equal(t, 2, m.State().Visible[0].ID)
	assert.Contains(t, m.View(), "Filter: Completed")

	m = press(m, "f", "s")
	assert.Equal(t, view.FilterPending, m.State().Filter)
	assert.Equal(t, view.SortByTitle, m.State().Sort)
	var got []int
	for _, task := range m.State().Visible {
		got = append(got, task.ID)
	}
	assert.Equal(t, []int{3, 1}, got)
}

func TestModel_CursorMovement(t *testing.T) {
	m := start(seeded())

	m = press(m, "j", "j", "j")
	assert.Equal(t, 2, m.Cursor())
	m = press(m, "k")
	assert.Equal(t, 1, m.Cursor())

	// Fewer cards after filtering pulls the cursor back.
	m = press(m, "f")
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_CreateTask(t *testing.T) {
	svc := testutil.NewFakeService()
	m := start(svc)

	m = press(m, "n")
	require.True(t, m.State().Form.Open())
	assert.Contains(t, m.View(), "New task")

	m = press(m, "Buy milk", "tab", "two liters", "tab", " ", "enter")

	got, ok := svc.Task(1)
	require.True(t, ok)
	assert.Equal(t, service.Task{ID: 1, Title: "Buy milk", Description: "two liters", Done: true}, got)
	assert.False(t, m.State().Form.Open())
	assert.Contains(t, m.View(), view.TextCreated)
	assert.Contains(t, m.View(), "#1 Buy milk")
}

func TestModel_EditSelectedTask(t *testing.T) {
	svc := seeded()
	m := start(svc)

	m = press(m, "j", "e")
	require.Equal(t, view.FormEdit, m.State().Form.Mode)
	assert.Equal(t, 2, m.State().Form.ID)
	assert.Contains(t, m.View(), "Edit task")

	m = press(m, "!", "tab", "tab", " ", "enter")

	got, _ := svc.Task(2)
	assert.Equal(t, service.Task{ID: 2, Title: "abelha!", Description: "mel", Done: false}, got)
	assert.Contains(t, m.View(), view.TextUpdated)
	assert.Zero(t, svc.CallCount("CreateTask"))
}

func TestModel_EscClosesFormWithoutCalls(t *testing.T) {
	svc := testutil.NewFakeService()
	m := start(svc)

	m = press(m, "n", "typed", "esc")

	assert.False(t, m.State().Form.Open())
	assert.Zero(t, svc.CallCount("CreateTask"))
	assert.Equal(t, 1, svc.CallCount("ListTasks"))
}

func TestModel_ValidationErrorKeepsForm(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = testutil.ValidationError("titulo obrigatório")
	m := start(svc)

	m = press(m, "n", "tab", "only a description", "enter")

	assert.Equal(t, view.FormCreate, m.State().Form.Mode)
	assert.Equal(t, "only a description", m.State().Form.Fields.Description)
	assert.Contains(t, m.View(), "titulo obrigatório")
}

func TestModel_DeleteConfirmation(t *testing.T) {
	svc := seeded()
	m := start(svc)

	m = press(m, "d")
	assert.True(t, m.State().Confirming)
	assert.Contains(t, m.View(), "Delete task 1? (y/n)")

	m = press(m, "n")
	assert.False(t, m.State().Confirming)
	assert.Zero(t, svc.CallCount("DeleteTask"))

	m = press(m, "d", "y")
	_, ok := svc.Task(1)
	assert.False(t, ok)
	assert.Contains(t, m.View(), view.TextDeleted)
	assert.Len(t, m.State().Visible, 2)
}

func TestModel_MessageDismissedByTimer(t *testing.T) {
	m := newModel(testutil.NewFakeService())
	m.SetTimer(func(d time.Duration) tea.Cmd {
		return func() tea.Msg { return view.DismissMessage{At: t0.Add(d)} }
	})
	m = drain(m, m.Init())

	m = press(m, "n", "task", "enter")

	assert.Nil(t, m.State().Message)
	assert.NotContains(t, m.View(), view.TextCreated)
}

func TestModel_LastResponseWins(t *testing.T) {
	m := newModel(testutil.NewFakeService())
	tasks := []service.Task{{ID: 1, Title: "a", Done: true}, {ID: 2, Title: "b"}}

	next, _ := m.Update(view.TasksLoaded{Filter: view.FilterDone, Tasks: tasks})
	next, _ = next.Update(view.TasksLoaded{Filter: view.FilterPending, Tasks: tasks})
	m = next.(tui.Model)

	require.Len(t, m.State().Visible, 1)
	assert.Equal(t, 2, m.State().Visible[0].ID)
}

func TestModel_Quit(t *testing.T) {
	m := start(testutil.NewFakeService())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
