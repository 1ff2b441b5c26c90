package window

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/core"
)

// namedKeys covers key names that differ between the terminal and Ebitengine.
// Anything else goes through ebiten.Key.UnmarshalText.
var namedKeys = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"/":         ebiten.KeySlash,
}

// binding is one physical key with optional modifiers.
type binding struct {
	key   ebiten.Key
	ctrl  bool
	alt   bool
	shift bool
}

func (b binding) modifiers() bool {
	return (!b.ctrl || ebiten.IsKeyPressed(ebiten.KeyControl)) &&
		(!b.alt || ebiten.IsKeyPressed(ebiten.KeyAlt)) &&
		(!b.shift || ebiten.IsKeyPressed(ebiten.KeyShift))
}

func (b binding) held() bool {
	return ebiten.IsKeyPressed(b.key) && b.modifiers()
}

func (b binding) justPressed() bool {
	return inpututil.IsKeyJustPressed(b.key) && b.modifiers()
}

// parseBinding understands names like "a", "left", "ctrl+q".
func parseBinding(name string) (binding, error) {
	var b binding
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	keyName := parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			b.ctrl = true
		case "alt":
			b.alt = true
		case "shift":
			b.shift = true
		default:
			return binding{}, fmt.Errorf("unknown modifier %q in %q", mod, name)
		}
	}

	if k, ok := namedKeys[keyName]; ok {
		b.key = k
		return b, nil
	}
	if err := b.key.UnmarshalText([]byte(keyName)); err != nil {
		return binding{}, fmt.Errorf("unknown key %q", name)
	}
	return b, nil
}

// keyMap holds the physical bindings of every logical key.
type keyMap map[core.Key][]binding

func newKeyMap(k config.KeyBindings) (keyMap, error) {
	km := make(keyMap)
	var errs []error
	for _, lk := range core.Keys() {
		for _, name := range k.For(lk) {
			b, err := parseBinding(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("keys.%s: %w", lk, err))
				continue
			}
			km[lk] = append(km[lk], b)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("window: %w", errors.Join(errs...))
	}
	return km, nil
}

// state reads the keyboard for one frame.
func (km keyMap) state() core.KeyState {
	var s core.KeyState
	for lk, bs := range km {
		for _, b := range bs {
			if b.justPressed() {
				s.Press(lk)
			} else if b.held() {
				s.Hold(lk)
			}
		}
	}
	return s
}
