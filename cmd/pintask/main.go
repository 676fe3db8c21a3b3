// Package main is the entry point for the pintask CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pintask/internal/cli"
	"pintask/internal/commands"
	"pintask/internal/config"
	"pintask/internal/seed"
	"pintask/internal/seed/googletasks"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newSource)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

// newSource seeds from config.yaml, followed by Google Tasks when enabled.
func newSource(ctx context.Context, cfg *config.Config) (seed.Source, error) {
	sources := seed.Multi{seed.Static(cfg.Settings.Tasks)}
	if !cfg.Settings.Google.Enabled {
		return sources, nil
	}

	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("oauth_client.json not found in %s", cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("not logged in (run: pintask login)")
	}

	src, err := googletasks.New(ctx, cfg, cfg.Settings.Google.List)
	if err != nil {
		return nil, err
	}
	return append(sources, src), nil
}
