package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"tarefas/internal/service"
)

// TitleRequired is the message the fake server returns when titulo is missing.
const TitleRequired = "Título é obrigatório"

// Server is an in-memory /tarefas API served over httptest.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	tasks  map[int]service.Task
	nextID int
}

// NewServer starts a fake task API and closes it when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{tasks: make(map[int]service.Task), nextID: 1}

	r := chi.NewRouter()
	r.Route("/tarefas", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.get)
			r.Put("/", s.update)
			r.Delete("/", s.remove)
		})
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the absolute collection resource URL.
func (s *Server) BaseURL() string {
	return s.URL + "/tarefas"
}

// Seed stores tasks as-is.
func (s *Server) Seed(tasks ...service.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		s.tasks[t.ID] = t
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]service.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

// taskBody distinguishes absent fields from zero values.
type taskBody struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descricao"`
	Done        *bool   `json:"concluida"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var body taskBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": TitleRequired})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := service.Task{ID: s.nextID, Title: *body.Title}
	if body.Description != nil {
		t.Description = *body.Description
	}
	if body.Done != nil {
		t.Done = *body.Done
	}
	s.tasks[t.ID] = t
	s.nextID++
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var body taskBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Dados de tarefa não fornecidos"})
		return
	}
	if body.Title != nil {
		t.Title = *body.Title
	}
	if body.Description != nil {
		t.Description = *body.Description
	}
	if body.Done != nil {
		t.Done = *body.Done
	}
	s.tasks[t.ID] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	delete(s.tasks, t.ID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tarefa deletada com sucesso"})
}

// lookup resolves the {id} URL parameter, writing a 404 page when missing.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (service.Task, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return service.Task{}, false
	}
	t, ok := s.tasks[id]
	if !ok {
		http.NotFound(w, r)
		return service.Task{}, false
	}
	return t, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
