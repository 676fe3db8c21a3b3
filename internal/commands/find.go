package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"pintask/internal/config"
	"pintask/internal/exitcode"
	"pintask/internal/output"
)

func init() {
	Register(&FindCmd{})
}

// FindCmd prints the names of tasks containing a query, ignoring case.
type FindCmd struct{}

func (c *FindCmd) Name() string       { return "find" }
func (c *FindCmd) Aliases() []string  { return []string{"search"} }
func (c *FindCmd) Synopsis() string   { return "Find tasks by name" }
func (c *FindCmd) Usage() string      { return "pintask find [common flags] <query...>" }
func (c *FindCmd) NeedsSession() bool { return true }

func (c *FindCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FindCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, args []string, out, errOut io.Writer) int {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(errOut, "error: query required")
		return exitcode.UserError
	}

	m, _ := sess.NewManager()
	matches := m.Filter(query)
	if len(matches) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatNames(out, matches)
	return exitcode.Success
}
