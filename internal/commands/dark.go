package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdash/internal/config"
	"taskdash/internal/exitcode"
	"taskdash/internal/service"
	"taskdash/internal/session"
)

func init() {
	Register(&DarkCmd{})
}

// DarkCmd implements the dark command: the persisted dark-mode preference.
type DarkCmd struct{}

func (c *DarkCmd) Name() string      { return "dark" }
func (c *DarkCmd) Aliases() []string { return nil }
func (c *DarkCmd) Synopsis() string  { return "Get or set the dark-mode preference" }
func (c *DarkCmd) Usage() string     { return "taskdash dark [on|off]" }
func (c *DarkCmd) NeedsAuth() bool   { return false }

func (c *DarkCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DarkCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		if cfg.DarkMode() {
			fmt.Fprintln(out, "on")
		} else {
			fmt.Fprintln(out, "off")
		}
		return exitcode.Success
	}

	var on bool
	switch args[0] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		fmt.Fprintf(errOut, "error: invalid argument: %s\n", args[0])
		return exitcode.UserError
	}

	if err := cfg.SetDarkMode(on); err != nil {
		fmt.Fprintf(errOut, "error: failed to save preference: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
