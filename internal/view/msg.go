package view

import (
	"context"
	"time"

	"tarefas/internal/service"
)

// Msg is a user command or an effect result. The set is closed.
type Msg interface {
	isMsg()
}

// Effect performs the I/O requested by a transition and reports the result.
type Effect func(ctx context.Context, svc service.Service) Msg

// LoadTasks fetches the list and renders it with the given filter and sort.
type LoadTasks struct {
	Filter Filter
	Sort   SortKey
}

// CreateTask submits a new task.
type CreateTask struct {
	Fields service.TaskFields
}

// UpdateTask submits a full replacement of task ID.
type UpdateTask struct {
	ID     int
	Fields service.TaskFields
}

// DeleteTask asks to delete task ID. Nothing is sent until ConfirmDelete.
type DeleteTask struct {
	ID int
}

// ConfirmDelete answers a pending delete confirmation.
type ConfirmDelete struct {
	Accept bool
}

// OpenForm opens the form. ID is required for FormEdit.
type OpenForm struct {
	Mode FormMode
	ID   int
}

// CloseForm discards the form without calling the API.
type CloseForm struct{}

// DismissMessage hides the current message if it has expired at At.
type DismissMessage struct {
	At time.Time
}

// TasksLoaded carries the result of a list fetch along with the filter and
// sort of the request that produced it.
type TasksLoaded struct {
	Filter Filter
	Sort   SortKey
	Tasks  []service.Task
	Err    error
}

// TaskFetched carries the result of fetching a task for editing.
type TaskFetched struct {
	Task service.Task
	Err  error
}

// TaskSaved carries the result of a create (Mode FormCreate) or update.
type TaskSaved struct {
	Mode FormMode
	Task service.Task
	Err  error
}

// TaskDeleted carries the result of a delete.
type TaskDeleted struct {
	ID  int
	Err error
}

func (LoadTasks) isMsg()      {}
func (CreateTask) isMsg()     {}
func (UpdateTask) isMsg()     {}
func (DeleteTask) isMsg()     {}
func (ConfirmDelete) isMsg()  {}
func (OpenForm) isMsg()       {}
func (CloseForm) isMsg()      {}
func (DismissMessage) isMsg() {}
func (TasksLoaded) isMsg()    {}
func (TaskFetched) isMsg()    {}
func (TaskSaved) isMsg()      {}
func (TaskDeleted) isMsg()    {}

// SubmitForm returns the command that submits fields from form: an update
// when the form carries an id, a create otherwise.
func SubmitForm(form Form, fields service.TaskFields) Msg {
	if form.ID != 0 {
		return UpdateTask{ID: form.ID, Fields: fields}
	}
	return CreateTask{Fields: fields}
}
