package restapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarefas/internal/backend/restapi"
	"tarefas/internal/config"
	"tarefas/internal/service"
	"tarefas/internal/testutil"
)

func newClient(t *testing.T) (*restapi.Client, *testutil.Server) {
	t.Helper()
	srv := testutil.NewServer(t)
	return restapi.NewWithHTTPClient(srv.BaseURL(), srv.Client(), nil), srv
}

func TestClient_CreateThenGet(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, service.TaskFields{Title: "A", Description: "B", Done: false})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := c.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Description)
	assert.False(t, got.Done)
}

func TestClient_ListTasks(t *testing.T) {
	c, srv := newClient(t)
	srv.Seed(
		service.Task{ID: 1, Title: "B"},
		service.Task{ID: 2, Title: "A", Done: true},
	)

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.Task{
		{ID: 1, Title: "B"},
		{ID: 2, Title: "A", Done: true},
	}, tasks)
}

func TestClient_UpdateTask(t *testing.T) {
	c, srv := newClient(t)
	srv.Seed(service.Task{ID: 4, Title: "old", Description: "d"})

	updated, err := c.UpdateTask(context.Background(), 4, service.TaskFields{Title: "new", Done: true})
	require.NoError(t, err)
	assert.Equal(t, service.Task{ID: 4, Title: "new", Description: "", Done: true}, updated)
}

func TestClient_GetTaskNotFound(t *testing.T) {
	c, _ := newClient(t)

	_, err := c.GetTask(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestClient_DeleteTwice(t *testing.T) {
	c, srv := newClient(t)
	srv.Seed(service.Task{ID: 1, Title: "x"})
	ctx := context.Background()

	require.NoError(t, c.DeleteTask(ctx, 1))

	err := c.DeleteTask(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestClient_ValidationMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"titulo obrigatório"}`))
	}))
	defer srv.Close()
	c := restapi.NewWithHTTPClient(srv.URL+"/tarefas", srv.Client(), nil)

	_, err := c.CreateTask(context.Background(), service.TaskFields{})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Equal(t, "titulo obrigatório", err.Error())

	var apiErr *service.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestClient_EmptyTitleIsServerDecision(t *testing.T) {
	c, srv := newClient(t)

	resp, err := srv.Client().Post(srv.BaseURL(), "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// titulo is always sent, so the fake server accepts an empty one.
	_, err = c.CreateTask(context.Background(), service.TaskFields{Title: ""})
	require.NoError(t, err)
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := restapi.NewWithHTTPClient(srv.URL, srv.Client(), nil)

	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrServer)
	assert.Equal(t, "", service.MessageOf(err, ""))
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()
	c := restapi.NewWithHTTPClient(srv.URL, srv.Client(), nil)

	_, err := c.ListTasks(context.Background())
	assert.ErrorIs(t, err, service.ErrServer)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := restapi.NewWithHTTPClient(url, http.DefaultClient, nil)

	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNetwork)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.URL = srv.URL + "/tarefas"
	cfg.Timeout = 50 * time.Millisecond

	c, err := restapi.New(cfg, nil)
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background())
	assert.ErrorIs(t, err, service.ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"titulo":"t","descricao":null,"concluida":false}`))
	}))
	defer srv.Close()
	c := restapi.NewWithHTTPClient(srv.URL, srv.Client(), nil)

	task, err := c.CreateTask(context.Background(), service.TaskFields{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, "", task.Description)

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	_, err = uuid.Parse(got.Get(restapi.RequestIDHeader))
	assert.NoError(t, err)
}
