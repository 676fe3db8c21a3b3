package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pintask/internal/config"
	"pintask/internal/exitcode"
	"pintask/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints both views once and exits.
type ShowCmd struct {
	query string
}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return []string{"ls"} }
func (c *ShowCmd) Synopsis() string   { return "Print pinned and unpinned tasks" }
func (c *ShowCmd) Usage() string      { return "pintask show [common flags] [--query <q>]" }
func (c *ShowCmd) NeedsSession() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.query, "query", "", "")
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	m, page := sess.NewManager()
	page.SetInput(c.query)
	m.Refresh()

	output.FormatPage(out, page.Snapshot())
	return exitcode.Success
}
