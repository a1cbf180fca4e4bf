package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskdash/internal/commands"
	"taskdash/internal/config"
	"taskdash/internal/exitcode"
	"taskdash/internal/service"
	"taskdash/internal/session"
	"taskdash/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{Dir: t.TempDir()}
	sess := session.NewStore(cfg)

	code = cmd.Run(context.Background(), cfg, sess, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskdash 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

func TestListCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", "Buy milk", false)
	svc.AddTask("b", "Buy eggs", true)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "   1  [ ] Buy milk\n   2  [x] Buy eggs\n\n1/2 completed\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &service.NetworkError{Err: context.DeadlineExceeded}

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error: backend error:") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestListCommand_SessionRejected(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &service.AuthError{Status: 401}

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: session expired or invalid (run: taskdash login)\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "milk"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("unexpected remote tasks: %v", tasks)
	}
}

func TestAddCommand_EmptyTitle(t *testing.T) {
	svc := testutil.NewFakeService()

	for _, args := range [][]string{nil, {"   "}} {
		_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, args)

		if code != exitcode.UserError {
			t.Errorf("args %v: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if stderr != "error: title required\n" {
			t.Errorf("args %v: unexpected stderr %q", args, stderr)
		}
	}
	if len(svc.Tasks()) != 0 {
		t.Error("empty title must not create a task")
	}
}

func TestDoneCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", "Buy milk", false)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if tasks := svc.Tasks(); !tasks[0].Completed {
		t.Error("task should be completed on the server")
	}

	// Toggling again reopens.
	stdout, _, code = runCommand(t, &commands.DoneCmd{}, svc, []string{"1"})
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok (reopened)\n" {
		t.Errorf("expected 'ok (reopened)', got %q", stdout)
	}
	if tasks := svc.Tasks(); tasks[0].Completed {
		t.Error("task should be reopened on the server")
	}
}

func TestDoneCommand_OutOfRange(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", "only one", false)

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"5"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 5\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRmCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", "first", false)
	svc.AddTask("b", "second", false)

	stdout, _, code := runCommand(t, &commands.RmCmd{}, svc, []string{"2"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "a" {
		t.Errorf("unexpected remote tasks: %v", tasks)
	}
}

func TestRmCommand_BadReference(t *testing.T) {
	svc := testutil.NewFakeService()

	for _, args := range [][]string{nil, {"abc"}, {"0"}} {
		_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, args)
		if code != exitcode.UserError {
			t.Errorf("args %v: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if !strings.HasPrefix(stderr, "error: ") {
			t.Errorf("args %v: unexpected stderr %q", args, stderr)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", "one", true)
	svc.AddTask("b", "two", false)
	svc.AddTask("c", "three", false)

	stdout, stderr, code := runCommand(t, &commands.StatsCmd{}, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "stats", stdout)
}

func TestDarkCommand(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	sess := session.NewStore(cfg)
	ctx := context.Background()

	run := func(args []string) (string, int) {
		var outBuf, errBuf bytes.Buffer
		code := (&commands.DarkCmd{}).Run(ctx, cfg, sess, nil, args, &outBuf, &errBuf)
		return outBuf.String(), code
	}

	if stdout, code := run(nil); code != exitcode.Success || stdout != "off\n" {
		t.Errorf("default status = %q (code %d)", stdout, code)
	}
	if stdout, code := run([]string{"on"}); code != exitcode.Success || stdout != "ok\n" {
		t.Errorf("dark on = %q (code %d)", stdout, code)
	}
	if stdout, code := run(nil); code != exitcode.Success || stdout != "on\n" {
		t.Errorf("status after on = %q (code %d)", stdout, code)
	}
	if _, code := run([]string{"sideways"}); code != exitcode.UserError {
		t.Errorf("invalid argument should be a user error, got %d", code)
	}
}
