package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sirkon/astpass"
	"github.com/sirkon/astpass/internal/config"
	"github.com/sirkon/astpass/internal/report"
	"github.com/sirkon/astpass/internal/watch"
)

func (a *app) cmdRun(args []string) (int, error) {
	var f passFlags
	fs := newFlagSet("run", a.stderr)
	f.register(fs, true)
	file, err := singleFile(fs, args)
	if err != nil {
		return exitError, err
	}
	if err := f.validateOutput(); err != nil {
		return exitError, err
	}

	cfg, err := f.load()
	if err != nil {
		return exitError, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return exitError, err
	}
	defer func() { _ = logger.Sync() }()

	return a.runOnce(cfg, logger, &f, file)
}

func (a *app) runOnce(cfg *config.Config, logger *zap.Logger, f *passFlags, file string) (int, error) {
	res, err := astpass.New(cfg, astpass.WithLogger(logger)).RunFile(file)
	if err != nil {
		return exitError, err
	}

	if err := writeTree(a.stdout, res.Tree, f.output, f.lines); err != nil {
		return exitError, err
	}
	if err := report.Write(a.stderr, res.Reports, res.Dropped, useColor(cfg, a.stderr)); err != nil {
		return exitError, err
	}

	if len(res.Diagnostics) > 0 {
		return exitDiagnostics, nil
	}
	return exitOK, nil
}

func (a *app) cmdUsage(args []string) (int, error) {
	var f passFlags
	fs := newFlagSet("usage", a.stderr)
	f.register(fs, false)
	file, err := singleFile(fs, args)
	if err != nil {
		return exitError, err
	}

	cfg, err := f.load()
	if err != nil {
		return exitError, err
	}
	cfg.Passes = nil
	cfg.Usage = true

	res, err := astpass.New(cfg).RunFile(file)
	if err != nil {
		return exitError, err
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(a.stdout, "%s:%s\n", file, d)
	}
	if len(res.Diagnostics) > 0 {
		return exitDiagnostics, nil
	}
	return exitOK, nil
}

func (a *app) cmdWatch(args []string) (int, error) {
	var f passFlags
	fs := newFlagSet("watch", a.stderr)
	f.register(fs, true)
	file, err := singleFile(fs, args)
	if err != nil {
		return exitError, err
	}
	if err := f.validateOutput(); err != nil {
		return exitError, err
	}

	cfg, err := f.load()
	if err != nil {
		return exitError, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return exitError, err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var mu sync.Mutex
	rerun := func() {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(a.stderr, "== %s at %s\n", file, time.Now().Format(time.TimeOnly))
		if _, err := a.runOnce(cfg, logger, &f, file); err != nil {
			fmt.Fprintf(a.stderr, "astpass: %s\n", err)
		}
	}

	w, err := watch.New(func(string) { rerun() }, watch.WithLogger(logger))
	if err != nil {
		return exitError, err
	}
	defer func() { _ = w.Close() }()
	if err := w.Add(file); err != nil {
		return exitError, err
	}

	rerun()
	if err := w.Run(ctx); err != nil {
		return exitError, errors.Wrap(err, "watch")
	}
	return exitOK, nil
}
