// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sort"
	"sync"

	"tarefas/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  map[int]service.Task
	nextID int

	// Calls counts invocations per method name.
	Calls map[string]int

	// Error injection for testing
	ListTasksErr  error
	GetTaskErr    error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:  make(map[int]service.Task),
		nextID: 1,
		Calls:  make(map[string]int),
	}
}

// AddTask stores a task with an explicit id.
func (f *FakeService) AddTask(id int, title, description string, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[id] = service.Task{ID: id, Title: title, Description: description, Done: done}
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// Task returns the stored task with the given id.
func (f *FakeService) Task(id int) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.tasks[id]
	return t, ok
}

// CallCount returns how many times method was invoked.
func (f *FakeService) CallCount(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Calls[method]
}

func (f *FakeService) record(method string) {
	f.Calls[method]++
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}

	result := make([]service.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id int) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetTask")
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}

	t, ok := f.tasks[id]
	if !ok {
		return service.Task{}, notFound()
	}
	return t, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, fields service.TaskFields) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	t := service.Task{ID: f.nextID, Title: fields.Title, Description: fields.Description, Done: fields.Done}
	f.tasks[t.ID] = t
	f.nextID++
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, fields service.TaskFields) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}

	if _, ok := f.tasks[id]; !ok {
		return service.Task{}, notFound()
	}
	t := service.Task{ID: id, Title: fields.Title, Description: fields.Description, Done: fields.Done}
	f.tasks[id] = t
	return t, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	if _, ok := f.tasks[id]; !ok {
		return notFound()
	}
	delete(f.tasks, id)
	return nil
}

func notFound() error {
	return &service.Error{Kind: service.ErrNotFound, Status: 404}
}

// ValidationError builds the error a server returns when it rejects input.
func ValidationError(msg string) error {
	return &service.Error{Kind: service.ErrValidation, Status: 400, Message: msg}
}
