package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/config"
	"github.com/gogpu/sketch/integration/ggsurface"
	"github.com/gogpu/sketch/script"
)

type options struct {
	configPath string
	scriptPath string
	output     string
	status     bool
}

// render builds a controller from the config, plays the script and saves
// the canvas.
func render(o options) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	ctl := sketch.NewController(opts...)
	if o.scriptPath != "" {
		sc, err := script.Load(o.scriptPath)
		if err != nil {
			return err
		}
		if err := sc.Play(ctl); err != nil {
			return fmt.Errorf("%s: %w", o.scriptPath, err)
		}
	}

	canvas, err := ggsurface.New(cfg.Canvas.Width, cfg.Canvas.Height,
		ggsurface.WithBackground(bg), ggsurface.WithStatusLine(o.status))
	if err != nil {
		return err
	}
	if err := canvas.Render(ctl); err != nil {
		return errors.Join(err, canvas.Close())
	}
	return errors.Join(canvas.SavePNG(o.output), canvas.Close())
}
