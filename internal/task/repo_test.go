package task_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"taskdash/internal/service"
	"taskdash/internal/task"
	"taskdash/internal/testutil"
)

func TestAddToggleRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	repo := task.NewRepository(svc)

	created, err := repo.Add(ctx, "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected server-assigned ID")
	}
	if created.Completed {
		t.Error("new task should not be completed")
	}
	if got := repo.PercentComplete(); got != 0 {
		t.Errorf("expected 0%%, got %v", got)
	}

	updated, err := repo.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !updated.Completed {
		t.Error("expected task to be completed after toggle")
	}
	if got := repo.PercentComplete(); got != 100 {
		t.Errorf("expected 100%%, got %v", got)
	}

	if err := repo.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("expected empty collection, got %d tasks", repo.Len())
	}
}

// The collection must always equal the server's state after each successful
// mutation: what is shown is server-derived, never client-guessed.
func TestLocalMatchesServerAfterEachCall(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	repo := task.NewRepository(svc)

	check := func(step string) {
		t.Helper()
		if got, want := repo.Snapshot(), svc.Tasks(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: local %v != server %v", step, got, want)
		}
	}

	a, _ := repo.Add(ctx, "one")
	check("add one")
	b, _ := repo.Add(ctx, "two")
	check("add two")
	if _, err := repo.Toggle(ctx, a.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	check("toggle one")
	if err := repo.Remove(ctx, b.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	check("remove two")
}

func TestPercentCompleteEmpty(t *testing.T) {
	repo := task.NewRepository(testutil.NewFakeService())
	if got := repo.PercentComplete(); got != 0 {
		t.Errorf("expected 0 on empty collection, got %v", got)
	}
}

func TestAddEmptyTitleMakesNoRemoteCall(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("remote call must not happen")
	repo := task.NewRepository(svc)

	for _, title := range []string{"", "   "} {
		_, err := repo.Add(ctx, title)
		var valErr *service.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("Add(%q): expected ValidationError, got %v", title, err)
		}
		if repo.Len() != 0 {
			t.Errorf("Add(%q): collection changed", title)
		}
	}
}

func TestToggleUnknownIDMakesNoRemoteCall(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	svc.UpdateTaskErr = errors.New("remote call must not happen")
	repo := task.NewRepository(svc)

	_, err := repo.Toggle(ctx, "nope")
	if !errors.Is(err, service.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	svc.AddTask("a", "first", false)
	svc.AddTask("b", "second", true)
	repo := task.NewRepository(svc)

	if repo.State() != task.Uninitialized {
		t.Error("expected Uninitialized before first load")
	}

	tasks, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Errorf("unexpected tasks: %v", tasks)
	}
	if repo.State() != task.Ready {
		t.Error("expected Ready after load")
	}
	if repo.CompletedCount() != 1 {
		t.Errorf("expected 1 completed, got %d", repo.CompletedCount())
	}
}

func TestLoadFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	svc.AddTask("a", "first", false)
	repo := task.NewRepository(svc)

	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	svc.ListTasksErr = &service.NetworkError{Err: errors.New("connection refused")}
	if _, err := repo.Load(ctx); err == nil {
		t.Fatal("expected load error")
	}
	if repo.State() != task.Ready {
		t.Error("failed reload should leave the collection Ready")
	}
	if repo.Len() != 1 {
		t.Errorf("stale collection should survive, got %d tasks", repo.Len())
	}
}

func TestAddFailureLeavesNoPhantomEntry(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	repo := task.NewRepository(svc)

	svc.CreateTaskErr = &service.NetworkError{Err: errors.New("timeout")}
	if _, err := repo.Add(ctx, "ghost"); err == nil {
		t.Fatal("expected add error")
	}
	if repo.Len() != 0 {
		t.Error("failed add must not leave a phantom entry")
	}

	svc.CreateTaskErr = nil
	tasks, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("server truth should be empty, got %v", tasks)
	}
}

func TestRemoveFailureLeavesEntry(t *testing.T) {
	ctx := context.Background()
	svc := testutil.NewFakeService()
	svc.AddTask("a", "keep me", false)
	repo := task.NewRepository(svc)
	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	svc.DeleteTaskErr = &service.NetworkError{Err: errors.New("timeout")}
	if err := repo.Remove(ctx, "a"); err == nil {
		t.Fatal("expected remove error")
	}
	if repo.Len() != 1 {
		t.Error("failed remove must leave the entry in place")
	}
}

// blockingCreate suspends CreateTask between dispatch and completion so the
// test can interleave other operations.
type blockingCreate struct {
	*testutil.FakeService
	entered chan struct{}
	release chan struct{}
}

func (s *blockingCreate) CreateTask(ctx context.Context, title string) (service.Task, error) {
	close(s.entered)
	<-s.release
	return s.FakeService.CreateTask(ctx, title)
}

func TestClearDiscardsInFlightCompletion(t *testing.T) {
	ctx := context.Background()
	svc := &blockingCreate{
		FakeService: testutil.NewFakeService(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	repo := task.NewRepository(svc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := repo.Add(ctx, "issued before logout"); err != nil {
			t.Errorf("Add failed: %v", err)
		}
	}()

	<-svc.entered
	repo.Clear()
	close(svc.release)
	<-done

	if repo.Len() != 0 {
		t.Errorf("completion after Clear must be discarded, got %d tasks", repo.Len())
	}
}

// committedUpdate simulates the server committing an update whose completion
// arrives after a delete already removed the task locally.
type committedUpdate struct {
	*testutil.FakeService
	entered chan struct{}
	release chan struct{}
}

func (s *committedUpdate) UpdateTask(ctx context.Context, tk service.Task) (service.Task, error) {
	close(s.entered)
	<-s.release
	return tk, nil
}

func TestToggleRacingDeleteIsNotAnError(t *testing.T) {
	ctx := context.Background()
	svc := &committedUpdate{
		FakeService: testutil.NewFakeService(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	svc.AddTask("a", "contested", false)
	repo := task.NewRepository(svc)
	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := repo.Toggle(ctx, "a"); err != nil {
			t.Errorf("racing toggle must not fail: %v", err)
		}
	}()

	<-svc.entered
	if err := repo.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	close(svc.release)
	<-done

	if repo.Len() != 0 {
		t.Error("delete wins the race; the toggled entry must stay gone")
	}
}
