// Command sketchrender replays an input script into a sketch and writes
// the result as PNG.
//
// Usage:
//
//	sketchrender -config sketch.toml -script steps.yaml -output out.png
//
// With -watch the command keeps running and re-renders whenever the config
// or script file changes.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/sketch"
)

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "TOML configuration file")
	flag.StringVar(&o.scriptPath, "script", "", "YAML input script")
	flag.StringVar(&o.output, "output", "sketch.png", "output PNG file")
	flag.BoolVar(&o.status, "status", false, "draw the status line")
	var (
		watchFiles = flag.Bool("watch", false, "re-render when inputs change")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)

	if err := render(o); err != nil {
		if !*watchFiles {
			log.Fatalf("sketchrender: %v", err)
		}
		logger.Error("render failed", "err", err)
	} else {
		logger.Info("sketch saved", "output", o.output)
	}
	if !*watchFiles {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := watch(ctx, o, func(err error) {
		if err != nil {
			logger.Error("render failed", "err", err)
			return
		}
		logger.Info("sketch saved", "output", o.output)
	})
	if err != nil {
		log.Fatalf("sketchrender: %v", err)
	}
}
