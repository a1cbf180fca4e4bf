// Package service defines the backend-agnostic interface for remote task operations.
package service

import "context"

// Service defines the interface for the remote task store.
// All HTTP calls go through this interface. The repository and the
// commands never build requests directly.
type Service interface {
	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given title, not completed.
	// Returns the created task carrying its server-assigned ID.
	CreateTask(ctx context.Context, title string) (Task, error)

	// UpdateTask sends the full fields of task to the record with task.ID.
	// Returns the updated task as the server committed it.
	UpdateTask(ctx context.Context, task Task) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id string) error

	// Login exchanges credentials for a session token.
	// Rejected credentials surface as ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup registers a new account. It does not establish a session.
	// A duplicate email surfaces as ErrEmailTaken.
	Signup(ctx context.Context, signup Signup) error
}
