package commands

import (
	"errors"
	"fmt"
	"io"

	"taskdash/internal/exitcode"
	"taskdash/internal/service"
)

// reportError prints err and returns the matching exit code.
// A rejected session token means the stored session is invalid; the user is
// told to log in again rather than retrying.
func reportError(errOut io.Writer, err error) int {
	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		fmt.Fprintln(errOut, "error: session expired or invalid (run: taskdash login)")
		return exitcode.AuthError
	}

	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		fmt.Fprintf(errOut, "error: %v\n", valErr)
		return exitcode.UserError
	}

	if errors.Is(err, service.ErrTaskNotFound) {
		fmt.Fprintln(errOut, "error: task not found")
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
