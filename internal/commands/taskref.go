package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taskdash/internal/service"
	"taskdash/internal/task"
)

// ErrTaskRefRequired is returned when no task reference was given.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskRefOutOfRange is returned when the number does not match a task.
var ErrTaskRefOutOfRange = errors.New("task number out of range")

// parseTaskNum parses a 1-based task number from the positional arguments.
func parseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	raw := strings.TrimSpace(strings.Join(args, ""))
	num, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", raw)
	}
	if num < 1 {
		return 0, ErrTaskRefOutOfRange
	}
	return num, nil
}

// resolveTaskNum loads the collection and returns the task displayed at the
// given 1-based position. Numbers follow the order the list command prints.
func resolveTaskNum(ctx context.Context, repo *task.Repository, num int) (service.Task, error) {
	tasks, err := repo.Load(ctx)
	if err != nil {
		return service.Task{}, err
	}
	if num > len(tasks) {
		return service.Task{}, ErrTaskRefOutOfRange
	}
	return tasks[num-1], nil
}
