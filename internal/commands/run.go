package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pintask/internal/config"
	"pintask/internal/exitcode"
	"pintask/internal/manager"
	"pintask/internal/tui"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd opens the interactive task list. It is the default command.
type RunCmd struct{}

func (c *RunCmd) Name() string       { return "run" }
func (c *RunCmd) Aliases() []string  { return []string{"ui"} }
func (c *RunCmd) Synopsis() string   { return "Open the interactive task list" }
func (c *RunCmd) Usage() string      { return "pintask run [common flags]" }
func (c *RunCmd) NeedsSession() bool { return true }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RunCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	sched := tui.NewScheduler()
	m, page := sess.NewManager(manager.WithScheduler(sched))

	if err := tui.Run(ctx, tui.New(m, page, cfg.Settings.Theme), sched, sess.In, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
