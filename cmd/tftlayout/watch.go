package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"
)

// watch regenerates the layout every time its document is written. Runs are
// serial; a failing run is logged and the watch carries on.
func watch(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	opts, err := parseGenerateOptions(c, e.cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	if err := e.watch(ctx, opts); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func (e *env) watch(ctx context.Context, opts *generateOptions) error {
	layout, err := filepath.Abs(e.layout)
	if err != nil {
		return err
	}

	run := func() {
		compiler, err := e.open(true)
		if err != nil {
			e.logger.Error("Failed to load layout", "err", err)
			return
		}
		if err := e.generate(compiler, opts); err != nil {
			e.logger.Error("Failed to generate", "err", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory instead
	if err := watcher.Add(filepath.Dir(layout)); err != nil {
		return err
	}

	e.printf("watching", layout)
	run()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != layout {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				e.logger.Debug("Layout changed", "op", event.Op.String())
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("Watch error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
