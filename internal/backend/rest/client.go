// Package rest implements the service.Service interface against the remote
// task service's HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"taskdash/internal/config"
	"taskdash/internal/service"
	"taskdash/internal/session"
)

// APITimeout is the timeout for API calls.
const APITimeout = 10 * time.Second

// maxErrorBody bounds how much of an error response body is read.
const maxErrorBody = 4096

// Client implements service.Service over the remote HTTP API.
// It is the single chokepoint for outbound calls: base endpoint,
// auth header, and content negotiation live here.
type Client struct {
	base     string
	sessions *session.Store
	httpc    *http.Client
	logf     func(format string, args ...any)
}

// New creates a client against cfg.BaseURL. The session token is read from
// sessions immediately before each dispatch, never cached across calls, so a
// token set or cleared between requests takes effect on the next one.
func New(cfg *config.Config, sessions *session.Store) *Client {
	c := &Client{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		sessions: sessions,
		httpc:    &http.Client{},
	}
	if cfg.Debug {
		c.logf = log.New(os.Stderr, "taskdash: ", 0).Printf
	}
	return c
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(cfg *config.Config, sessions *session.Store, httpc *http.Client) *Client {
	c := New(cfg, sessions)
	c.httpc = httpc
	return c
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// taskBody is the wire payload for task mutations.
type taskBody struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", taskBody{Title: title}, &task); err != nil {
		return service.Task{}, err
	}
	// Every successful mutation must return the canonical task object.
	if task.ID == "" {
		return service.Task{}, &service.ServerError{Message: "response missing task id"}
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) (service.Task, error) {
	var updated service.Task
	path := "/tasks/" + task.ID
	body := taskBody{Title: task.Title, Completed: task.Completed}
	if err := c.do(ctx, http.MethodPut, path, body, &updated); err != nil {
		return service.Task{}, err
	}
	if updated.ID == "" {
		return service.Task{}, &service.ServerError{Message: "response missing task id"}
	}
	return updated, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		// On this endpoint a rejection means bad credentials, not a bad
		// session token.
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return "", service.ErrInvalidCredentials
		}
		var srvErr *service.ServerError
		if errors.As(err, &srvErr) && srvErr.Status == http.StatusBadRequest {
			return "", service.ErrInvalidCredentials
		}
		return "", err
	}
	if resp.Token == "" {
		return "", &service.ServerError{Message: "response missing token"}
	}
	return resp.Token, nil
}

// Signup implements service.Service.
func (c *Client) Signup(ctx context.Context, signup service.Signup) error {
	body := map[string]string{
		"name":     signup.Name,
		"email":    signup.Email,
		"password": signup.Password,
	}
	if signup.Note != "" {
		body["note"] = signup.Note
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, nil); err != nil {
		var srvErr *service.ServerError
		if errors.As(err, &srvErr) && srvErr.Status == http.StatusConflict {
			return service.ErrEmailTaken
		}
		return err
	}
	return nil
}

// do issues one request and decodes the response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// Read the token right before dispatch. No header when no session.
	if tok, err := c.sessions.Token(); err == nil {
		tok.SetAuthHeader(req)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.logf != nil {
			c.logf("%s %s: %v", method, path, err)
		}
		return &service.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if c.logf != nil {
		c.logf("%s %s: %d", method, path, resp.StatusCode)
	}

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &service.ServerError{Status: resp.StatusCode, Message: "malformed response body"}
		}
	}
	return nil
}

// checkStatus maps non-2xx responses onto the error taxonomy:
// 401/403 auth, other 4xx server with the body's message, 5xx network.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &service.AuthError{Status: resp.StatusCode}
	case resp.StatusCode >= 500:
		return &service.NetworkError{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	default:
		return &service.ServerError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}
}

// readMessage extracts {"message": ...} from an error body, if present.
func readMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}
