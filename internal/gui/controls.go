//go:build cgo

package gui

import (
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Action is a rebindable game command. Camera panning stays hard-wired to
// WASD/arrows; everything discrete goes through a binding.
type Action string

const (
	ActionInventory Action = "inventory"
	ActionDialog    Action = "dialog"
	ActionDebug     Action = "debug"
	ActionCenter    Action = "center"
	ActionTeleport  Action = "teleport"
	ActionActivate  Action = "activate"
	ActionQuit      Action = "quit"
)

// ControlsFileName is looked up in the working directory; when absent the
// defaults apply.
const ControlsFileName = "controls.yaml"

// Bindings maps actions to raylib key codes.
type Bindings map[Action]int32

// DefaultBindings mirrors the documented controls: I inventory, O dialog,
// F1 debug, C centre camera, T teleport, E portal, Esc quit.
func DefaultBindings() Bindings {
	return Bindings{
		ActionInventory: rl.KeyI,
		ActionDialog:    rl.KeyO,
		ActionDebug:     rl.KeyF1,
		ActionCenter:    rl.KeyC,
		ActionTeleport:  rl.KeyT,
		ActionActivate:  rl.KeyE,
		ActionQuit:      rl.KeyEscape,
	}
}

type controlsFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadBindings reads the controls file and overlays it on the defaults.
// A missing file returns the defaults; an unknown action or key name is an
// error so typos do not silently leave a stale default bound.
func LoadBindings(path string) (Bindings, error) {
	bindings := DefaultBindings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return bindings, nil
	}
	if err != nil {
		return nil, err
	}

	var f controlsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for name, keyName := range f.Bindings {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		if _, known := bindings[action]; !known {
			return nil, fmt.Errorf("%s: unknown action %q", path, name)
		}
		key, ok := keyByName(keyName)
		if !ok {
			return nil, fmt.Errorf("%s: unknown key %q for action %q", path, keyName, name)
		}
		bindings[action] = key
	}
	return bindings, nil
}

// Pressed reports whether the action's key was pressed this frame.
func (b Bindings) Pressed(a Action) bool {
	key, ok := b[a]
	return ok && rl.IsKeyPressed(key)
}

var specialKeys = map[string]int32{
	"escape":    rl.KeyEscape,
	"esc":       rl.KeyEscape,
	"space":     rl.KeySpace,
	"enter":     rl.KeyEnter,
	"tab":       rl.KeyTab,
	"backspace": rl.KeyBackspace,
	"f1":        rl.KeyF1,
	"f2":        rl.KeyF2,
	"f3":        rl.KeyF3,
	"f4":        rl.KeyF4,
	"f5":        rl.KeyF5,
	"f6":        rl.KeyF6,
	"f7":        rl.KeyF7,
	"f8":        rl.KeyF8,
	"f9":        rl.KeyF9,
	"f10":       rl.KeyF10,
	"f11":       rl.KeyF11,
	"f12":       rl.KeyF12,
}

// keyByName resolves a key name from the controls file: either a special
// name or a single letter/digit.
func keyByName(name string) (int32, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	if key, ok := specialKeys[name]; ok {
		return key, true
	}
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			// raylib letter key codes are the upper-case ASCII values.
			return int32(c - 'a' + 'A'), true
		}
		if c >= '0' && c <= '9' {
			return int32(c), true
		}
	}
	return 0, false
}
