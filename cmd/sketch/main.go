// Command sketch opens an interactive drawing window.
//
// Keys 1-8 pick a tool (point, line, arc, polyline, circle, rect, ellipse,
// polygon) and 0 returns to selection mode. Ctrl-click toggles selection,
// alt-drag pans, ctrl+A selects everything and Delete removes the selection.
// Modifier bindings are configurable with -config.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/config"
	"github.com/gogpu/sketch/integration/ggsurface"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		title      = flag.String("title", "Sketch", "window title")
		verbose    = flag.Bool("v", false, "log controller activity")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	canvas, err := ggsurface.New(cfg.Canvas.Width, cfg.Canvas.Height,
		ggsurface.WithBackground(bg), ggsurface.WithStatusLine(true))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer canvas.Close()

	g := newGame(sketch.NewController(opts...), canvas)
	ebiten.SetWindowTitle(*title)
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("sketch: %v", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
