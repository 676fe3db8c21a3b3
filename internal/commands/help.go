package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pintask/internal/config"
	"pintask/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "pintask help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  pintask                                     Open the interactive task list
  pintask run [common flags] [source flags]
  pintask repl [common flags] [source flags]  Line mode on stdin
  pintask show [common flags] [source flags] [--query <q>]
  pintask find [common flags] [source flags] <query...>
  pintask login [common flags]
  pintask logout [common flags]
  pintask help
  pintask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Source flags:
  --google               Import open tasks from Google Tasks at startup
  --google-list <name>   Google Tasks list to import (implies --google)
`
