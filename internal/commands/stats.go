package commands

import (
	"context"
	"flag"
	"io"

	"taskdash/internal/config"
	"taskdash/internal/exitcode"
	"taskdash/internal/output"
	"taskdash/internal/service"
	"taskdash/internal/session"
	"taskdash/internal/task"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd implements the stats command: the progress overview panel.
type StatsCmd struct{}

func (c *StatsCmd) Name() string      { return "stats" }
func (c *StatsCmd) Aliases() []string { return []string{"progress"} }
func (c *StatsCmd) Synopsis() string  { return "Show progress statistics" }
func (c *StatsCmd) Usage() string     { return "taskdash stats [common flags]" }
func (c *StatsCmd) NeedsAuth() bool   { return true }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	repo := task.NewRepository(svc)
	if _, err := repo.Load(ctx); err != nil {
		return reportError(errOut, err)
	}

	output.FormatStats(out, repo.Len(), repo.CompletedCount(), repo.PercentComplete())
	return exitcode.Success
}
