package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// settle is how long the settings file must stay quiet before a re-render.
const settle = 200 * time.Millisecond

// watch re-runs the render whenever the settings document changes, until
// ctx is cancelled. The parent directory is watched so that editors which
// replace the file by rename are still seen.
func watch(ctx context.Context, o options, inputs []string, log *logrus.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(o.settingsPath)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	_, _ = yellow.Printf("watching %s (Ctrl-C to stop)\n", o.settingsPath)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, target) {
				continue
			}
			log.WithField("op", ev.Op.String()).Debug("settings changed")
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timer.C:
			if err := run(ctx, o, inputs, log); err != nil {
				_, _ = red.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
	}
}

func relevant(ev fsnotify.Event, target string) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != target {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
