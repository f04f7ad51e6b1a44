// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task ("tarefa") as served by the collection resource.
// ID is assigned by the remote service and never generated by the client.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Done        bool   `json:"concluida"`
}

// TaskFields is the request body for create and full-replace update.
type TaskFields struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Done        bool   `json:"concluida"`
}

// Fields returns the mutable fields of a task.
func (t Task) Fields() TaskFields {
	return TaskFields{
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
	}
}
