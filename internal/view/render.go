package view

import (
	"time"

	"tarefas/internal/service"
)

// Placeholder texts of the task container.
const (
	PlaceholderLoading     = "Loading..."
	PlaceholderEmpty       = "No tasks found."
	PlaceholderUnavailable = "Tasks unavailable."
	NoDescription          = "No description"
)

// Action is a button on a card.
type Action int

const (
	ActionEdit Action = iota
	ActionDelete
)

func (a Action) String() string {
	if a == ActionDelete {
		return "Delete"
	}
	return "Edit"
}

// Card is the view model of one task.
type Card struct {
	ID          int
	Title       string
	Description string
	Status      string
	Done        bool
	Actions     []Action
}

// Page is everything a front end needs to draw the view. The container
// holds either Placeholder or Cards, never both.
type Page struct {
	Filter      Filter
	Sort        SortKey
	Phase       Phase
	Placeholder string
	Cards       []Card
	Form        Form
	Confirming  bool
	ConfirmID   int
	Message     *Message
}

// CardFor maps a task to its card.
func CardFor(t service.Task) Card {
	desc := t.Description
	if desc == "" {
		desc = NoDescription
	}
	status := "Pending"
	if t.Done {
		status = "Completed"
	}
	return Card{
		ID:          t.ID,
		Title:       t.Title,
		Description: desc,
		Status:      status,
		Done:        t.Done,
		Actions:     []Action{ActionEdit, ActionDelete},
	}
}

// Render builds the page for s at time now. Expired messages are omitted.
func Render(s State, now time.Time) Page {
	p := Page{
		Filter:     s.Filter,
		Sort:       s.Sort,
		Phase:      s.Phase,
		Form:       s.Form,
		Confirming: s.Confirming,
		ConfirmID:  s.ConfirmID,
	}
	if s.Message.Visible(now) {
		p.Message = s.Message
	}

	switch s.Phase {
	case PhaseLoading:
		p.Placeholder = PlaceholderLoading
		return p
	case PhaseError:
		if !s.Loaded {
			p.Placeholder = PlaceholderUnavailable
			return p
		}
	}

	if len(s.Visible) == 0 {
		p.Placeholder = PlaceholderEmpty
		return p
	}
	p.Cards = make([]Card, len(s.Visible))
	for i, t := range s.Visible {
		p.Cards[i] = CardFor(t)
	}
	return p
}
