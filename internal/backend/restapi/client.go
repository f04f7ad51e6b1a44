// Package restapi implements the service.Service interface against the
// /tarefas REST collection resource.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tarefas/internal/config"
	"tarefas/internal/logging"
	"tarefas/internal/service"
)

const (
	// RequestIDHeader carries a per-request id for log correlation.
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Client implements service.Service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// New creates a client for the collection resource configured in cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	c := NewWithHTTPClient(baseURL, http.DefaultClient, logger)
	c.timeout = cfg.Timeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// No per-call timeout is applied.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     logging.OrDiscard(logger),
	}
}

// ListTasks returns every task in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a single task.
func (c *Client) GetTask(ctx context.Context, id int) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, fields service.TaskFields) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, c.baseURL, fields, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces every field of a task.
func (c *Client) UpdateTask(ctx context.Context, id int, fields service.TaskFields) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPut, c.taskURL(id), fields, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task. The response body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, nil)
}

func (c *Client) taskURL(id int) string {
	return c.baseURL + "/" + strconv.Itoa(id)
}

// do performs one request. body is JSON-encoded when non-nil; out receives
// the decoded 2xx response when non-nil.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &service.Error{Kind: service.ErrNetwork, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			"method", method, "url", url, "request_id", requestID, "error", err)
		return &service.Error{Kind: service.ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "request",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return wrapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &service.Error{Kind: service.ErrNetwork, Err: err}
		}
		return &service.Error{Kind: service.ErrServer, Status: resp.StatusCode, Err: fmt.Errorf("invalid response: %w", err)}
	}
	return nil
}

// errorBody is the JSON error shape returned by the API.
type errorBody struct {
	Error string `json:"error"`
}

// wrapStatus classifies a non-2xx response.
func wrapStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return &service.Error{Kind: service.ErrNotFound, Status: resp.StatusCode}
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
		return &service.Error{Kind: service.ErrValidation, Status: resp.StatusCode, Message: eb.Error}
	}
	return &service.Error{Kind: service.ErrServer, Status: resp.StatusCode}
}
