// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All calls against the remote collection resource go through this interface.
// Commands and views never import the HTTP backend directly.
type Service interface {
	// ListTasks returns every task in server order.
	// Fails with ErrNetwork or ErrServer.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns a single task.
	// Fails with ErrNotFound if the id is unknown.
	GetTask(ctx context.Context, id int) (Task, error)

	// CreateTask creates a task and returns it with its server-assigned id.
	// A rejected request fails with ErrValidation carrying the server message.
	CreateTask(ctx context.Context, fields TaskFields) (Task, error)

	// UpdateTask replaces every field of an existing task.
	UpdateTask(ctx context.Context, id int, fields TaskFields) (Task, error)

	// DeleteTask removes a task. Deleting twice returns ErrNotFound on the
	// second call.
	DeleteTask(ctx context.Context, id int) error
}
