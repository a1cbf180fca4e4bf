// Package auth implements the credential exchange flows.
package auth

import (
	"context"
	"strings"

	"taskdash/internal/service"
	"taskdash/internal/session"
	"taskdash/internal/task"
)

// Flow exchanges credentials for a session and tears sessions down.
type Flow struct {
	svc      service.Service
	sessions *session.Store
	repo     *task.Repository
}

// NewFlow creates a Flow over the given backend, session store, and
// task repository.
func NewFlow(svc service.Service, sessions *session.Store, repo *task.Repository) *Flow {
	return &Flow{svc: svc, sessions: sessions, repo: repo}
}

// Login exchanges credentials for a token and persists it via the session
// store. Empty fields fail before any remote call.
func (f *Flow) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &service.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return &service.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	token, err := f.svc.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return f.sessions.Set(token)
}

// Signup registers a new account. It does not establish a session; the
// caller routes to login afterwards.
func (f *Flow) Signup(ctx context.Context, signup service.Signup) error {
	if strings.TrimSpace(signup.Name) == "" {
		return &service.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(signup.Email) == "" {
		return &service.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if signup.Password == "" {
		return &service.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	return f.svc.Signup(ctx, signup)
}

// Logout clears the session store and the local collection. No remote call
// is made; responses still in flight for the old session are discarded by
// the repository.
func (f *Flow) Logout() error {
	if err := f.sessions.Clear(); err != nil {
		return err
	}
	f.repo.Clear()
	return nil
}
