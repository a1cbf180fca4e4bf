// Package task keeps an in-memory task collection consistent with the
// remote store.
package task

import (
	"context"
	"strings"
	"sync"

	"taskdash/internal/service"
)

// State describes the lifecycle of the local collection.
type State int

const (
	// Uninitialized means no fetch has completed yet.
	Uninitialized State = iota

	// Loading means a full fetch is in flight.
	Loading

	// Ready means the collection mirrors a successful fetch.
	Ready
)

// Repository is a CRUD facade over the remote task store.
//
// The local collection is updated only from server response payloads, never
// from locally submitted input, so every entry corresponds to a committed
// remote record. Methods are safe for concurrent use; the lock is released
// around remote calls, and each completion reconciles by server-assigned ID
// against the collection as it stands when the response arrives.
type Repository struct {
	svc service.Service

	mu    sync.Mutex
	tasks []service.Task
	state State
	gen   int // bumped by Clear; stale completions check it before applying
}

// NewRepository creates a repository over the given backend.
func NewRepository(svc service.Service) *Repository {
	return &Repository{svc: svc}
}

// Load fetches the full collection and replaces local state wholesale.
// On failure local state is left untouched: stale or empty, never corrupt.
func (r *Repository) Load(ctx context.Context) ([]service.Task, error) {
	r.mu.Lock()
	prev := r.state
	r.state = Loading
	gen := r.gen
	r.mu.Unlock()

	tasks, err := r.svc.ListTasks(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen != gen {
		// Cleared while the fetch was in flight; the result is stale.
		return r.snapshotLocked(), nil
	}
	if err != nil {
		r.state = prev
		return nil, err
	}
	r.tasks = append([]service.Task(nil), tasks...)
	r.state = Ready
	return r.snapshotLocked(), nil
}

// Add creates a task remotely and appends the server-returned record.
// An empty title after trimming fails before any remote call.
func (r *Repository) Add(ctx context.Context, title string) (service.Task, error) {
	if strings.TrimSpace(title) == "" {
		return service.Task{}, &service.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	r.mu.Lock()
	gen := r.gen
	r.mu.Unlock()

	created, err := r.svc.CreateTask(ctx, title)
	if err != nil {
		return service.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		r.tasks = append(r.tasks, created)
	}
	return created, nil
}

// Remove deletes a task remotely, then drops the matching local entry.
// An entry already absent locally is fine: deletion is idempotent.
func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	gen := r.gen
	r.mu.Unlock()

	if err := r.svc.DeleteTask(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen != gen {
		return nil
	}
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Toggle flips the Completed flag of the task with the given ID and replaces
// the local entry with the server's object. An ID unknown locally is a caller
// error and fails with ErrTaskNotFound before any remote call. If the entry
// disappears while the update is in flight, a concurrent delete won the race;
// the replace becomes a no-op and the call still succeeds.
func (r *Repository) Toggle(ctx context.Context, id string) (service.Task, error) {
	r.mu.Lock()
	gen := r.gen
	current, ok := r.findLocked(id)
	r.mu.Unlock()
	if !ok {
		return service.Task{}, service.ErrTaskNotFound
	}

	current.Completed = !current.Completed
	updated, err := r.svc.UpdateTask(ctx, current)
	if err != nil {
		return service.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		for i, t := range r.tasks {
			if t.ID == id {
				r.tasks[i] = updated
				break
			}
		}
	}
	return updated, nil
}

// Clear empties the collection. Remote completions started before the call
// see the generation change and discard their results instead of applying
// them, so nothing leaks into the next session.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = nil
	r.state = Uninitialized
	r.gen++
}

// Snapshot returns a copy of the collection in fetch/insert order.
func (r *Repository) Snapshot() []service.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// State returns the collection's lifecycle state.
func (r *Repository) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Len returns the number of tasks.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// CompletedCount returns the number of completed tasks.
func (r *Repository) CompletedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completedLocked()
}

// PercentComplete returns completed/total*100, or 0 for an empty collection.
func (r *Repository) PercentComplete() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tasks) == 0 {
		return 0
	}
	return float64(r.completedLocked()) / float64(len(r.tasks)) * 100
}

func (r *Repository) snapshotLocked() []service.Task {
	out := make([]service.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *Repository) completedLocked() int {
	n := 0
	for _, t := range r.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (r *Repository) findLocked(id string) (service.Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}
