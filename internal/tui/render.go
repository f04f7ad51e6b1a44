package tui

import (
	"fmt"
	"strings"

	"tarefas/internal/view"
)

const (
	listHelp    = "j/k move • f filter • s sort • r reload • n new • e edit • d delete • q quit"
	formHelp    = "tab next field • space toggle completed • enter save • esc cancel"
	confirmHelp = "y confirm • n cancel"
)

// View implements tea.Model.
func (m Model) View() string {
	page := view.Render(m.state, m.now())
	st := m.styles

	var b strings.Builder
	b.WriteString(st.Title.Render("Tarefas"))
	b.WriteString("\n")
	b.WriteString(st.Selector.Render(fmt.Sprintf("Filter: %s   Sort: %s", page.Filter.Label(), page.Sort.Label())))
	b.WriteString("\n\n")

	if page.Placeholder != "" {
		b.WriteString(st.Placeholder.Render(page.Placeholder))
		b.WriteString("\n")
	}
	for i, c := range page.Cards {
		b.WriteString(m.renderCard(c, i == m.cursor))
	}

	if page.Confirming {
		b.WriteString("\n")
		b.WriteString(st.Error.Render(fmt.Sprintf("Delete task %d? (y/n)", page.ConfirmID)))
		b.WriteString("\n")
	}

	if page.Form.Open() {
		b.WriteString("\n")
		b.WriteString(m.renderForm(page.Form))
		b.WriteString("\n")
	}

	if page.Message != nil {
		style := st.Success
		if page.Message.Kind == view.MessageError {
			style = st.Error
		}
		b.WriteString("\n")
		b.WriteString(style.Render(page.Message.Text))
		b.WriteString("\n")
	}

	help := listHelp
	switch {
	case page.Confirming:
		help = confirmHelp
	case page.Form.Open():
		help = formHelp
	}
	b.WriteString("\n")
	b.WriteString(st.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(c view.Card, selected bool) string {
	st := m.styles
	cursor := "  "
	if selected {
		cursor = st.Cursor.Render("> ")
	}
	check := "[ ]"
	title := st.CardTitle.Render(c.Title)
	if c.Done {
		check = "[x]"
		title = st.Done.Render(c.Title)
	}
	return fmt.Sprintf("%s%s #%d %s  %s\n%s\n", cursor, check, c.ID, title,
		st.Selector.Render(c.Status), st.Description.Render(c.Description))
}

func (m Model) renderForm(f view.Form) string {
	st := m.styles
	label := func(focus int, text string) string {
		if m.focus == focus {
			return st.Focused.Render(text)
		}
		return text
	}
	check := "[ ]"
	if m.done {
		check = "[x]"
	}
	lines := []string{
		st.Title.Render(f.Heading()),
		label(focusTitle, "Title:       ") + m.title.View(),
		label(focusDescription, "Description: ") + m.description.View(),
		label(focusDone, "Completed:   ") + check,
	}
	return st.Form.Render(strings.Join(lines, "\n"))
}
