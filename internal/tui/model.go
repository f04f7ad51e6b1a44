// Package tui is the interactive terminal page. It drives the view state
// machine with Bubble Tea: effects run as commands and their results come
// back as messages, so overlapping requests resolve in arrival order.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"tarefas/internal/logging"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

// Form field focus order.
const (
	focusTitle = iota
	focusDescription
	focusDone
	focusCount
)

// Model is the Bubble Tea model of the terminal page.
type Model struct {
	ctx    context.Context
	svc    service.Service
	log    *slog.Logger
	now    func() time.Time
	timer  func(time.Duration) tea.Cmd
	styles Styles

	state  view.State
	cursor int

	title       textinput.Model
	description textinput.Model
	done        bool
	focus       int
}

// New creates the page in the loading state. Init issues the first load.
func New(ctx context.Context, svc service.Service, locale language.Tag, logger *slog.Logger) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000

	return Model{
		ctx:         ctx,
		svc:         svc,
		log:         logging.OrDiscard(logger),
		now:         time.Now,
		timer:       dismissAfter,
		styles:      DefaultStyles(),
		state:       view.NewState(locale),
		title:       title,
		description: desc,
	}
}

// SetClock replaces the time source (for testing).
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetTimer replaces the message dismissal timer (for testing).
func (m *Model) SetTimer(timer func(time.Duration) tea.Cmd) {
	m.timer = timer
}

// State returns the view state.
func (m Model) State() view.State {
	return m.state
}

// Cursor returns the index of the selected card.
func (m Model) Cursor() int {
	return m.cursor
}

// Run starts the program on out and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m Model, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal view: %w", err)
	}
	return nil
}

func dismissAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return view.DismissMessage{At: t}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	load := view.LoadTasks{Filter: m.state.Filter, Sort: m.state.Sort}
	return func() tea.Msg { return load }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case view.Msg:
		return m.apply(msg)
	}
	return m, nil
}

// apply runs one transition and turns its effect into a command.
func (m Model) apply(msg view.Msg) (Model, tea.Cmd) {
	prevMessage := m.state.Message
	prevForm := m.state.Form

	var effect view.Effect
	m.state, effect = view.Update(m.state, msg, m.now())
	m.logResult(msg)

	var cmds []tea.Cmd
	if effect != nil {
		cmds = append(cmds, m.run(effect))
	}
	if m.state.Message != nil && m.state.Message != prevMessage && m.timer != nil {
		cmds = append(cmds, m.timer(view.MessageTTL))
	}
	if f := m.state.Form; f.Open() && (f.Mode != prevForm.Mode || f.ID != prevForm.ID) {
		cmds = append(cmds, m.loadForm())
	}
	m.clampCursor()
	return m, tea.Batch(cmds...)
}

func (m Model) run(effect view.Effect) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return effect(ctx, svc)
	}
}

func (m Model) logResult(msg view.Msg) {
	var err error
	switch r := msg.(type) {
	case view.TasksLoaded:
		err = r.Err
	case view.TaskFetched:
		err = r.Err
	case view.TaskSaved:
		err = r.Err
	case view.TaskDeleted:
		err = r.Err
	}
	if err != nil {
		m.log.DebugContext(m.ctx, "request failed", "msg", fmt.Sprintf("%T", msg), "error", err)
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Visible) {
		m.cursor = len(m.state.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the id of the selected card, or zero when there is none.
func (m Model) selected() int {
	if m.state.Phase == view.PhaseLoading || m.cursor >= len(m.state.Visible) {
		return 0
	}
	return m.state.Visible[m.cursor].ID
}

// loadForm copies the form fields into the inputs and focuses the title.
func (m *Model) loadForm() tea.Cmd {
	f := m.state.Form.Fields
	m.title.SetValue(f.Title)
	m.title.CursorEnd()
	m.description.SetValue(f.Description)
	m.description.CursorEnd()
	m.done = f.Done
	m.focus = focusTitle
	m.description.Blur()
	return m.title.Focus()
}

func (m Model) fields() service.TaskFields {
	return service.TaskFields{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		Done:        m.done,
	}
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = (focus + focusCount) % focusCount
	m.title.Blur()
	m.description.Blur()
	switch m.focus {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}
