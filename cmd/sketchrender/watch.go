package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/sketch"
)

// watch re-renders whenever the config or script changes and reports each
// result to done. It returns when ctx is canceled.
//
// Parent directories are watched rather than the files themselves so that
// editors that save by rename keep triggering events.
func watch(ctx context.Context, o options, done func(error)) error {
	inputs := map[string]bool{}
	for _, p := range []string{o.configPath, o.scriptPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		inputs[abs] = true
	}
	if len(inputs) == 0 {
		return errors.New("watch: no -config or -script to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{}
	for p := range inputs {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		dirs[dir] = true
	}

	log := sketch.Logger()
	log.Info("watching", "files", len(inputs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !inputs[name] {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				log.Debug("input changed", "file", event.Name, "op", event.Op.String())
				done(render(o))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		}
	}
}
