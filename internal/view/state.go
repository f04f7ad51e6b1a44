// Package view implements the task list view controller: an explicit state,
// a closed set of messages, a pure transition function and a pure render
// function. Front ends drive it either synchronously (Controller) or by
// running the returned effects asynchronously.
package view

import (
	"time"

	"golang.org/x/text/language"

	"tarefas/internal/service"
)

// MessageTTL is how long a transient message stays visible.
const MessageTTL = 3 * time.Second

// Phase is the state of the task list container.
type Phase int

const (
	// PhaseLoading shows the loading placeholder.
	PhaseLoading Phase = iota
	// PhaseRendered shows one card per visible task.
	PhaseRendered
	// PhaseEmpty shows the empty placeholder.
	PhaseEmpty
	// PhaseError keeps the last successful render and shows an error message.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRendered:
		return "rendered"
	case PhaseEmpty:
		return "empty"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// FormMode is the state of the create/edit form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// Form holds the create/edit form. ID is zero unless editing.
type Form struct {
	Mode   FormMode
	ID     int
	Fields service.TaskFields
}

// Open reports whether the form is shown.
func (f Form) Open() bool { return f.Mode != FormClosed }

// Heading is the form title.
func (f Form) Heading() string {
	if f.Mode == FormEdit {
		return "Edit task"
	}
	return "New task"
}

// MessageKind distinguishes success from error messages.
type MessageKind int

const (
	MessageSuccess MessageKind = iota
	MessageError
)

// Message is a transient notice shown to the user.
type Message struct {
	Text    string
	Kind    MessageKind
	Expires time.Time

	// Err is the failure behind an error message, if any.
	Err error
}

// Visible reports whether the message is still shown at now.
func (m *Message) Visible(now time.Time) bool {
	return m != nil && now.Before(m.Expires)
}

// State is the complete view state.
type State struct {
	Phase  Phase
	Filter Filter
	Sort   SortKey
	Locale language.Tag

	// Tasks is the last fetched list, unfiltered.
	Tasks []service.Task

	// Visible is the filtered and sorted set of the last successful load.
	Visible []service.Task

	// Loaded is set once a list fetch has succeeded.
	Loaded bool

	Form Form

	// Confirming is set while a delete of ConfirmID awaits confirmation.
	Confirming bool
	ConfirmID  int

	Message *Message
}

// NewState returns the initial state: loading, all tasks, ordered by id.
func NewState(locale language.Tag) State {
	return State{
		Phase:  PhaseLoading,
		Filter: FilterAll,
		Sort:   SortByID,
		Locale: locale,
	}
}

// Err returns the error behind the current message, if any.
func (s State) Err() error {
	if s.Message == nil {
		return nil
	}
	return s.Message.Err
}
