// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"pintask/internal/commands"
	"pintask/internal/config"
	"pintask/internal/exitcode"
	"pintask/internal/seed"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "run"

// SourceFactory creates the seed source for a session from config.
// Used to inject the Google Tasks import during dispatch.
type SourceFactory func(ctx context.Context, cfg *config.Config) (seed.Source, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SourceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and source factory.
// A nil factory seeds sessions from config.yaml only.
func NewDispatcher(registry *commands.Registry, factory SourceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// in is handed to interactive commands. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, DefaultCommand, nil, in, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Source flags, only for commands that work on a task list
	var google bool
	var googleList string
	if cmd.NeedsSession() {
		fs.BoolVar(&google, "google", false, "")
		fs.StringVar(&googleList, "google-list", "", "")
	}

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// A leading dash here means a flag after "--"
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if google || googleList != "" {
		cfg.Settings.Google.Enabled = true
	}
	if googleList != "" {
		cfg.Settings.Google.List = googleList
	}

	logger := cfg.Logger(errOut)
	logger.Printf("config dir %s, command %s", cfg.Dir, cmd.Name())

	var sess *commands.Session
	if cmd.NeedsSession() {
		entries, code := d.loadEntries(ctx, cfg, errOut)
		if code != exitcode.Success {
			return code
		}
		logger.Printf("loaded %d seed entries", len(entries))
		sess = &commands.Session{Entries: entries, In: in, Log: logger}
	}

	return cmd.Run(ctx, cfg, sess, positionalArgs, out, errOut)
}

// loadEntries builds the session source and loads it once.
func (d *Dispatcher) loadEntries(ctx context.Context, cfg *config.Config, errOut io.Writer) ([]seed.Entry, int) {
	var src seed.Source = seed.Static(cfg.Settings.Tasks)
	if d.factory != nil {
		var err error
		src, err = d.factory(ctx, cfg)
		if err != nil {
			return nil, reportSourceError(errOut, err)
		}
	}

	entries, err := src.Load(ctx)
	if err != nil {
		return nil, reportSourceError(errOut, err)
	}
	return entries, exitcode.Success
}

func reportSourceError(errOut io.Writer, err error) int {
	if isAuthError(err) {
		fmt.Fprintf(errOut, "error: auth error: %s\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: source error: %s\n", err)
	return exitcode.SourceError
}

func isAuthError(err error) bool {
	msg := err.Error()
	for _, s := range []string{"token", "auth", "login"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		return errStr
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}

	return errStr
}
