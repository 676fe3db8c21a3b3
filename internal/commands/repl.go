package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"pintask/internal/config"
	"pintask/internal/exitcode"
	"pintask/internal/manager"
	"pintask/internal/output"
	"pintask/internal/view"
)

const replPrompt = "> "

func init() {
	Register(&ReplCmd{})
}

// ReplCmd drives the task list line by line from stdin.
type ReplCmd struct{}

func (c *ReplCmd) Name() string       { return "repl" }
func (c *ReplCmd) Aliases() []string  { return nil }
func (c *ReplCmd) Synopsis() string   { return "Line mode task list on stdin" }
func (c *ReplCmd) Usage() string      { return "pintask repl [common flags]" }
func (c *ReplCmd) NeedsSession() bool { return true }

func (c *ReplCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReplCmd) Run(ctx context.Context, cfg *config.Config, sess *Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if sess.In == nil {
		fmt.Fprintln(errOut, "error: no input")
		return exitcode.UserError
	}

	m, page := sess.NewManager()
	r := &repl{m: m, page: page, quiet: cfg.Quiet, out: out, errOut: errOut}

	if !r.quiet {
		fmt.Fprintln(out, "pintask repl, type /help for commands")
	}
	r.printPage()

	scanner := bufio.NewScanner(sess.In)
	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		r.prompt()
		if !scanner.Scan() {
			break
		}
		if done := r.handle(scanner.Text()); done {
			return exitcode.Success
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: failed to read input: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

type repl struct {
	m     *manager.Manager
	page  *view.Page
	quiet bool

	out, errOut io.Writer
}

func (r *repl) prompt() {
	if !r.quiet {
		fmt.Fprint(r.out, replPrompt)
	}
}

func (r *repl) printPage() {
	output.FormatPage(r.out, r.page.Snapshot())
}

// handle processes one input line. Reports whether the session should end.
func (r *repl) handle(line string) bool {
	if !strings.HasPrefix(line, "/") {
		r.submit(line)
		return false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(r.out, replHelp)
	case "show":
		r.m.Refresh()
		r.printPage()
	case "add":
		if err := r.m.Add(arg); err != nil {
			output.FormatError(r.errOut, err.Error())
			return false
		}
		r.printPage()
	case "filter":
		r.m.HandleInput(arg)
		r.printPage()
	case "find":
		matches := r.m.Filter(arg)
		if len(matches) == 0 {
			if !r.quiet {
				fmt.Fprintln(r.out, "no tasks found")
			}
			return false
		}
		output.FormatNames(r.out, matches)
	case "pin", "unpin", "toggle":
		r.setPin(name, arg)
	default:
		output.FormatError(r.errOut, "unknown command: /"+name)
	}
	return false
}

// submit types line into the input and presses Enter.
func (r *repl) submit(line string) {
	before := r.m.Len()
	r.page.SetInput(line)
	r.m.Submit()

	if r.m.Len() == before {
		if msg := r.page.Snapshot().Error; msg != "" {
			output.FormatError(r.errOut, msg)
		}
		return
	}
	r.printPage()
}

func (r *repl) setPin(op, name string) {
	if name == "" {
		output.FormatError(r.errOut, "task name required")
		return
	}

	var changed bool
	switch op {
	case "pin":
		changed = r.m.Pin(name)
	case "unpin":
		changed = r.m.Unpin(name)
	default:
		changed = r.m.TogglePin(name)
	}

	if !changed {
		if !r.quiet {
			fmt.Fprintln(r.out, "no change")
		}
		return
	}
	r.printPage()
}

const replHelp = `Commands:
  <text>            Add a task (Enter on the input)
  /add <name>       Add a task
  /filter <query>   Show tasks containing query (live filter)
  /find <query>     Print names of tasks containing query
  /pin <name>       Pin the first task with this name
  /unpin <name>     Unpin the first task with this name
  /toggle <name>    Toggle the pin of the first task with this name
  /show             Print pinned and unpinned tasks
  /help             Print this help
  /quit, /exit      Leave
`
