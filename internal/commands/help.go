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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskdash help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskdash                                     List tasks
  taskdash list [common flags]
  taskdash add [common flags] <title...>
  taskdash done [common flags] <n>             Toggle task n completed
  taskdash rm [common flags] <n>
  taskdash stats [common flags]
  taskdash cal [--month <YYYY-MM>]
  taskdash dark [on|off]
  taskdash signup --name <name> --email <email> --password <password> [--note <note>]
  taskdash login --email <email> --password <password>
  taskdash logout
  taskdash help
  taskdash version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKDASH_API_URL   Override the remote endpoint
`
