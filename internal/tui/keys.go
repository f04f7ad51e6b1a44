package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tarefas/internal/view"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case m.state.Confirming:
		return m.handleConfirmKey(msg)
	case m.state.Form.Open():
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.state.Visible)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "f":
		return m.apply(view.LoadTasks{Filter: m.state.Filter.Next(), Sort: m.state.Sort})
	case "s":
		return m.apply(view.LoadTasks{Filter: m.state.Filter, Sort: m.state.Sort.Next()})
	case "r":
		return m.apply(view.LoadTasks{Filter: m.state.Filter, Sort: m.state.Sort})
	case "n":
		return m.apply(view.OpenForm{Mode: view.FormCreate})
	case "e", "enter":
		if id := m.selected(); id != 0 {
			return m.apply(view.OpenForm{Mode: view.FormEdit, ID: id})
		}
	case "d", "x":
		if id := m.selected(); id != 0 {
			return m.apply(view.DeleteTask{ID: id})
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "s", "S":
		return m.apply(view.ConfirmDelete{Accept: true})
	case "n", "N", "esc", "q":
		return m.apply(view.ConfirmDelete{Accept: false})
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.apply(view.CloseForm{})
	case "enter":
		return m.apply(view.SubmitForm(m.state.Form, m.fields()))
	case "tab", "down":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case " ", "space":
		if m.focus == focusDone {
			m.done = !m.done
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}
