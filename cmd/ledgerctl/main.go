// Command ledgerctl operates the waxworks usage ledger: it applies schema
// migrations, reports token usage aggregates and verifies them against the
// event log.
//
// Exit codes: 0 = success, 1 = a check failed, 2 = command error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/waxworks/internal/app"
	"github.com/heartmarshall/waxworks/internal/cli"
	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/config"
	"github.com/heartmarshall/waxworks/pkg/ctxutil"
)

const closeTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, _ = ctxutil.EnsureRequestID(ctx)

	root := cli.NewRootCommand(open, clock.Real{}, app.BuildVersion())
	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	format, _ := root.PersistentFlags().GetString("format")
	f := &cli.OutputFormatter{Format: format, Writer: os.Stdout, ErrWriter: os.Stderr}
	if ferr := f.Error(err); ferr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}

func open(ctx context.Context, opts *cli.RootOptions) (*cli.Backend, error) {
	load := config.Load
	if opts.ConfigPath != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(opts.ConfigPath) }
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	// Info-level startup logs only with -v.
	switch {
	case opts.Verbose:
		cfg.Log.Level = "debug"
	case cfg.Log.Level == "info":
		cfg.Log.Level = "warn"
	}

	logger := app.NewLogger(cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &cli.Backend{
		Ledger:   a.Usage,
		Migrator: a,
		Close: func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := a.Close(closeCtx); err != nil {
				logger.Warn("close", "error", err)
			}
		},
	}, nil
}
