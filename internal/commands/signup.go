package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdash/internal/auth"
	"taskdash/internal/config"
	"taskdash/internal/exitcode"
	"taskdash/internal/service"
	"taskdash/internal/session"
	"taskdash/internal/task"
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command.
// A successful signup does not log in; the user runs login afterwards.
type SignupCmd struct {
	name     string
	email    string
	password string
	note     string
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return nil }
func (c *SignupCmd) Synopsis() string  { return "Register a new account" }
func (c *SignupCmd) Usage() string {
	return "taskdash signup --name <name> --email <email> --password <password> [--note <note>]"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.note, "note", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	flow := auth.NewFlow(svc, sess, task.NewRepository(svc))
	signup := service.Signup{Name: c.name, Email: c.email, Password: c.password, Note: c.note}
	if err := flow.Signup(ctx, signup); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			fmt.Fprintln(errOut, "error: email already registered")
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok (run: taskdash login)")
	}
	return exitcode.Success
}
