package view

import (
	"context"
	"time"

	"tarefas/internal/service"
)

// User-facing message texts.
const (
	TextLoadFailed   = "Could not load tasks."
	TextFetchFailed  = "Could not load task."
	TextSaveFailed   = "Could not save task."
	TextDeleteFailed = "Could not delete task."
	TextCreated      = "Task created."
	TextUpdated      = "Task updated."
	TextDeleted      = "Task deleted."
)

// Update applies msg to s and returns the new state and the effect to run,
// if any. It performs no I/O; now stamps message expiry.
func Update(s State, msg Msg, now time.Time) (State, Effect) {
	switch m := msg.(type) {
	case LoadTasks:
		s.Filter = m.Filter
		s.Sort = m.Sort
		return load(s)

	case TasksLoaded:
		if m.Err != nil {
			s.Phase = PhaseError
			s.Message = failure(now, m.Err, TextLoadFailed)
			return s, nil
		}
		s.Tasks = m.Tasks
		s.Visible = Apply(m.Tasks, m.Filter, m.Sort, s.Locale)
		s.Loaded = true
		if len(s.Visible) == 0 {
			s.Phase = PhaseEmpty
		} else {
			s.Phase = PhaseRendered
		}
		return s, nil

	case OpenForm:
		switch m.Mode {
		case FormCreate:
			s.Form = Form{Mode: FormCreate}
			return s, nil
		case FormEdit:
			id := m.ID
			return s, func(ctx context.Context, svc service.Service) Msg {
				t, err := svc.GetTask(ctx, id)
				return TaskFetched{Task: t, Err: err}
			}
		}
		s.Form = Form{}
		return s, nil

	case TaskFetched:
		if m.Err != nil {
			s.Message = failure(now, m.Err, TextFetchFailed)
			return s, nil
		}
		s.Form = Form{Mode: FormEdit, ID: m.Task.ID, Fields: m.Task.Fields()}
		return s, nil

	case CloseForm:
		s.Form = Form{}
		return s, nil

	case CreateTask:
		if s.Form.Open() {
			s.Form.Fields = m.Fields
		}
		fields := m.Fields
		return s, func(ctx context.Context, svc service.Service) Msg {
			t, err := svc.CreateTask(ctx, fields)
			return TaskSaved{Mode: FormCreate, Task: t, Err: err}
		}

	case UpdateTask:
		if s.Form.Open() {
			s.Form.Fields = m.Fields
		}
		id, fields := m.ID, m.Fields
		return s, func(ctx context.Context, svc service.Service) Msg {
			t, err := svc.UpdateTask(ctx, id, fields)
			return TaskSaved{Mode: FormEdit, Task: t, Err: err}
		}

	case TaskSaved:
		if m.Err != nil {
			s.Message = failure(now, m.Err, TextSaveFailed)
			return s, nil
		}
		s.Form = Form{}
		text := TextCreated
		if m.Mode == FormEdit {
			text = TextUpdated
		}
		s.Message = success(now, text)
		return load(s)

	case DeleteTask:
		s.Confirming = true
		s.ConfirmID = m.ID
		return s, nil

	case ConfirmDelete:
		if !s.Confirming {
			return s, nil
		}
		id := s.ConfirmID
		s.Confirming = false
		s.ConfirmID = 0
		if !m.Accept {
			return s, nil
		}
		return s, func(ctx context.Context, svc service.Service) Msg {
			return TaskDeleted{ID: id, Err: svc.DeleteTask(ctx, id)}
		}

	case TaskDeleted:
		if m.Err != nil {
			s.Message = failure(now, m.Err, TextDeleteFailed)
			return s, nil
		}
		s.Message = success(now, TextDeleted)
		return load(s)

	case DismissMessage:
		if s.Message != nil && !m.At.Before(s.Message.Expires) {
			s.Message = nil
		}
		return s, nil
	}
	return s, nil
}

// load enters the loading phase and requests the list with the current
// filter and sort.
func load(s State) (State, Effect) {
	s.Phase = PhaseLoading
	filter, sortKey := s.Filter, s.Sort
	return s, func(ctx context.Context, svc service.Service) Msg {
		tasks, err := svc.ListTasks(ctx)
		return TasksLoaded{Filter: filter, Sort: sortKey, Tasks: tasks, Err: err}
	}
}

func success(now time.Time, text string) *Message {
	return &Message{Text: text, Kind: MessageSuccess, Expires: now.Add(MessageTTL)}
}

// failure prefers the server-supplied message over fallback.
func failure(now time.Time, err error, fallback string) *Message {
	return &Message{
		Text:    service.MessageOf(err, fallback),
		Kind:    MessageError,
		Expires: now.Add(MessageTTL),
		Err:     err,
	}
}
