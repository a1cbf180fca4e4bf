package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"taskdash/internal/service"
)

// RemoteServer is an in-process stand-in for the remote task service,
// speaking its HTTP contract: /tasks CRUD behind bearer auth, /auth/login
// and /auth/signup open.
type RemoteServer struct {
	mu    sync.Mutex
	tasks []service.Task
	users map[string]string
	token string

	Server *httptest.Server
}

// NewRemoteServer starts the server. Callers must Close it.
func NewRemoteServer() *RemoteServer {
	rs := &RemoteServer{
		users: make(map[string]string),
		token: uuid.NewString(),
	}

	r := chi.NewRouter()
	r.Post("/auth/login", rs.handleLogin)
	r.Post("/auth/signup", rs.handleSignup)
	r.Group(func(r chi.Router) {
		r.Use(rs.requireAuth)
		r.Get("/tasks", rs.handleList)
		r.Post("/tasks", rs.handleCreate)
		r.Put("/tasks/{id}", rs.handleUpdate)
		r.Delete("/tasks/{id}", rs.handleDelete)
	})

	rs.Server = httptest.NewServer(r)
	return rs
}

// Close shuts the server down.
func (rs *RemoteServer) Close() {
	rs.Server.Close()
}

// URL returns the server's base URL.
func (rs *RemoteServer) URL() string {
	return rs.Server.URL
}

// Token returns the bearer token the server accepts.
func (rs *RemoteServer) Token() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.token
}

// AddUser seeds an account accepted by the login endpoint.
func (rs *RemoteServer) AddUser(email, password string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.users[email] = password
}

// Seed inserts tasks directly into the store, assigning IDs.
func (rs *RemoteServer) Seed(titles ...string) []service.Task {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for _, title := range titles {
		rs.tasks = append(rs.tasks, service.Task{ID: uuid.NewString(), Title: title})
	}
	out := make([]service.Task, len(rs.tasks))
	copy(out, rs.tasks)
	return out
}

// Tasks returns a copy of the stored tasks.
func (rs *RemoteServer) Tasks() []service.Task {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]service.Task, len(rs.tasks))
	copy(out, rs.tasks)
	return out
}

func (rs *RemoteServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "Bearer " + rs.Token()
		if r.Header.Get("Authorization") != want {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rs *RemoteServer) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rs.Tasks())
}

func (rs *RemoteServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if strings.TrimSpace(body.Title) == "" {
		writeError(w, http.StatusBadRequest, "title required")
		return
	}

	rs.mu.Lock()
	task := service.Task{ID: uuid.NewString(), Title: body.Title, Completed: body.Completed}
	rs.tasks = append(rs.tasks, task)
	rs.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (rs *RemoteServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	for i, t := range rs.tasks {
		if t.ID == id {
			if body.Title != "" {
				rs.tasks[i].Title = body.Title
			}
			rs.tasks[i].Completed = body.Completed
			writeJSON(w, http.StatusOK, rs.tasks[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "task not found")
}

func (rs *RemoteServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rs.mu.Lock()
	defer rs.mu.Unlock()
	for i, t := range rs.tasks {
		if t.ID == id {
			rs.tasks = append(rs.tasks[:i], rs.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "task not found")
}

func (rs *RemoteServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	rs.mu.Lock()
	stored, ok := rs.users[body.Email]
	token := rs.token
	rs.mu.Unlock()

	if !ok || stored != body.Password {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (rs *RemoteServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Note     string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email, and password required")
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, exists := rs.users[body.Email]; exists {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	rs.users[body.Email] = body.Password
	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
