package sketch

import (
	"fmt"
	"strings"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

var buttonNames = [...]string{
	ButtonNone:   "none",
	ButtonLeft:   "left",
	ButtonRight:  "right",
	ButtonMiddle: "middle",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ParseButton converts "left", "right" or "middle" to a Button.
func ParseButton(s string) (Button, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b := ButtonLeft; b <= ButtonMiddle; b++ {
		if buttonNames[b] == name {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("%w: button %q", ErrUnknownInput, s)
}

// Buttons is the set of pointer buttons held during a move.
type Buttons uint8

// Has reports whether b is held.
func (bs Buttons) Has(b Button) bool {
	return b != ButtonNone && bs&(1<<(b-1)) != 0
}

// With returns bs with b added.
func (bs Buttons) With(b Button) Buttons {
	if b == ButtonNone {
		return bs
	}
	return bs | 1<<(b-1)
}

// Without returns bs with b removed.
func (bs Buttons) Without(b Button) Buttons {
	if b == ButtonNone {
		return bs
	}
	return bs &^ (1 << (b - 1))
}

// Modifiers is the set of keyboard modifiers held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m is held. An empty m is never
// held, so an unbound action cannot trigger.
func (mods Modifiers) Has(m Modifiers) bool {
	return m != 0 && mods&m == m
}

// ParseModifiers parses names such as "ctrl", "ctrl+shift" or "none".
func ParseModifiers(s string) (Modifiers, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return 0, nil
	}
	var m Modifiers
	for name := range strings.SplitSeq(s, "+") {
		switch strings.TrimSpace(name) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModControl
		case "alt", "option":
			m |= ModAlt
		case "meta", "cmd", "super":
			m |= ModMeta
		default:
			return 0, fmt.Errorf("%w: modifier %q", ErrUnknownInput, name)
		}
	}
	return m, nil
}

// Key identifies the keys the controller reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyDelete
	KeyEscape
)

// ParseKey converts a key name such as "a", "delete" or "escape" to a Key.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return KeyA, nil
	case "delete", "del":
		return KeyDelete, nil
	case "escape", "esc":
		return KeyEscape, nil
	}
	return KeyUnknown, fmt.Errorf("%w: key %q", ErrUnknownInput, s)
}

// Bindings selects which modifiers drive multi-selection and panning.
type Bindings struct {
	// MultiSelect toggles a shape in the selection on press and suppresses
	// single selection, moving and resizing.
	MultiSelect Modifiers
	// Pan drags the whole view instead of interacting with shapes.
	Pan Modifiers
	// SelectAll is combined with KeyA to select every shape.
	SelectAll Modifiers
}

// DefaultBindings returns Control for multi-select and select-all and Alt
// for panning.
func DefaultBindings() Bindings {
	return Bindings{
		MultiSelect: ModControl,
		Pan:         ModAlt,
		SelectAll:   ModControl,
	}
}
