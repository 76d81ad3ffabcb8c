// Package script replays recorded input events into a sketch.Controller.
//
// A script is a YAML document holding a list of steps. Each step performs
// exactly one action:
//
//	name: two rectangles
//	steps:
//	  - tool: rect
//	  - drag: [[10, 10], [120, 80]]
//	  - click: [50, 40]
//	    mods: ctrl
//	  - down: [200, 200]
//	    button: right
//	  - move: [210, 220]
//	  - up: [210, 220]
//	  - key: delete
//
// Positions are screen coordinates, written as [x, y] or {x: .., y: ..}.
// button defaults to left; mods applies to the step's events.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// ErrInvalidStep is wrapped by errors for malformed steps.
var ErrInvalidStep = errors.New("script: invalid step")

// Pos is a screen position.
type Pos sketch.Point

// UnmarshalYAML accepts a two-element sequence or an x/y mapping.
func (p *Pos) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := n.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("%w: line %d: position needs 2 coordinates, got %d", ErrInvalidStep, n.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := n.Decode(&xy); err != nil {
			return err
		}
		p.X, p.Y = xy.X, xy.Y
		return nil
	}
	return fmt.Errorf("%w: line %d: position must be [x, y] or {x, y}", ErrInvalidStep, n.Line)
}

// Step is one scripted action.
type Step struct {
	Tool  string `yaml:"tool,omitempty"`
	Down  *Pos   `yaml:"down,omitempty"`
	Move  *Pos   `yaml:"move,omitempty"`
	Up    *Pos   `yaml:"up,omitempty"`
	Click *Pos   `yaml:"click,omitempty"`
	Drag  []Pos  `yaml:"drag,omitempty"`
	Key   string `yaml:"key,omitempty"`

	Button string `yaml:"button,omitempty"`
	Mods   string `yaml:"mods,omitempty"`

	// Line is the source line of the step, zero for steps built in code.
	Line int `yaml:"-"`
}

var stepKeys = map[string]bool{
	"tool": true, "down": true, "move": true, "up": true, "click": true,
	"drag": true, "key": true, "button": true, "mods": true,
}

// UnmarshalYAML rejects unknown keys and records the step's source line.
func (s *Step) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: step must be a mapping", ErrInvalidStep, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; !stepKeys[k.Value] {
			return fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidStep, k.Line, k.Value)
		}
	}

	type plain Step
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	s.Line = n.Line
	return nil
}

func (s *Step) action() (string, error) {
	var names []string
	if s.Tool != "" {
		names = append(names, "tool")
	}
	if s.Down != nil {
		names = append(names, "down")
	}
	if s.Move != nil {
		names = append(names, "move")
	}
	if s.Up != nil {
		names = append(names, "up")
	}
	if s.Click != nil {
		names = append(names, "click")
	}
	if s.Drag != nil {
		names = append(names, "drag")
	}
	if s.Key != "" {
		names = append(names, "key")
	}
	if len(names) != 1 {
		return "", fmt.Errorf("%w: want exactly one action, got %v", ErrInvalidStep, names)
	}
	if names[0] == "drag" && len(s.Drag) < 2 {
		return "", fmt.Errorf("%w: drag needs at least 2 positions", ErrInvalidStep)
	}
	return names[0], nil
}

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Script
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Script{}, nil
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load parses the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks every step without running it.
func (sc *Script) Validate() error {
	var errs []error
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if _, err := st.action(); err != nil {
			errs = append(errs, stepError(i, st, err))
			continue
		}
		if _, err := st.button(); err != nil {
			errs = append(errs, stepError(i, st, err))
		}
		if _, err := sketch.ParseModifiers(st.Mods); err != nil {
			errs = append(errs, stepError(i, st, err))
		}
		if st.Key != "" {
			if _, err := sketch.ParseKey(st.Key); err != nil {
				errs = append(errs, stepError(i, st, err))
			}
		}
		if st.Tool != "" && st.Tool != "none" {
			if _, err := sketch.ParseKind(st.Tool); err != nil {
				errs = append(errs, stepError(i, st, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Play feeds every step to c in order and stops at the first failure.
func (sc *Script) Play(c *sketch.Controller) error {
	log := sketch.Logger()
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if err := st.play(c); err != nil {
			return stepError(i, st, err)
		}
		log.Debug("script: step", "index", i, "state", c.State(), "shapes", c.Registry().Len())
	}
	return nil
}

func (s *Step) button() (sketch.Button, error) {
	if s.Button == "" {
		return sketch.ButtonLeft, nil
	}
	return sketch.ParseButton(s.Button)
}

func (s *Step) play(c *sketch.Controller) error {
	action, err := s.action()
	if err != nil {
		return err
	}
	b, err := s.button()
	if err != nil {
		return err
	}
	mods, err := sketch.ParseModifiers(s.Mods)
	if err != nil {
		return err
	}
	held := sketch.Buttons(0).With(b)

	switch action {
	case "tool":
		k := sketch.KindNone
		if s.Tool != "none" {
			if k, err = sketch.ParseKind(s.Tool); err != nil {
				return err
			}
		}
		return c.SetKind(k)
	case "down":
		c.PointerDown(b, sketch.Point(*s.Down), mods)
	case "move":
		c.PointerMove(sketch.Point(*s.Move), 0, mods)
	case "up":
		c.PointerUp(b, sketch.Point(*s.Up), mods)
	case "click":
		p := sketch.Point(*s.Click)
		c.PointerDown(b, p, mods)
		c.PointerUp(b, p, mods)
	case "drag":
		c.PointerDown(b, sketch.Point(s.Drag[0]), mods)
		for _, p := range s.Drag[1:] {
			c.PointerMove(sketch.Point(p), held, mods)
		}
		c.PointerUp(b, sketch.Point(s.Drag[len(s.Drag)-1]), mods)
	case "key":
		k, err := sketch.ParseKey(s.Key)
		if err != nil {
			return err
		}
		c.KeyDown(k, mods)
	}
	return nil
}

func stepError(i int, s *Step, err error) error {
	if s.Line > 0 {
		return fmt.Errorf("script: step %d (line %d): %w", i+1, s.Line, err)
	}
	return fmt.Errorf("script: step %d: %w", i+1, err)
}
