package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskdash/internal/config"
	"taskdash/internal/exitcode"
	"taskdash/internal/output"
	"taskdash/internal/service"
	"taskdash/internal/session"
)

func init() {
	Register(&CalCmd{})
}

// CalCmd implements the cal command: a month grid with today marked.
type CalCmd struct {
	month string
}

func (c *CalCmd) Name() string      { return "cal" }
func (c *CalCmd) Aliases() []string { return []string{"calendar"} }
func (c *CalCmd) Synopsis() string  { return "Show a month calendar" }
func (c *CalCmd) Usage() string     { return "taskdash cal [--month <YYYY-MM>]" }
func (c *CalCmd) NeedsAuth() bool   { return false }

func (c *CalCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.month, "month", "", "")
	fs.StringVar(&c.month, "m", "", "")
}

func (c *CalCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	now := time.Now()
	year, month := now.Year(), now.Month()
	today := now.Day()

	if c.month != "" {
		parsed, err := time.Parse("2006-01", c.month)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid month: %s\n", c.month)
			return exitcode.UserError
		}
		year, month = parsed.Year(), parsed.Month()
		if year != now.Year() || month != now.Month() {
			today = 0
		}
	}

	output.FormatMonth(out, year, month, today)
	return exitcode.Success
}
