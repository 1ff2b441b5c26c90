package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
)

// KeyMap defines the key bindings of the game screen.
// Bindings come from the configuration; Exit is fixed.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Help    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Exit    key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(k config.KeyBindings) KeyMap {
	bind := func(names []string, desc string) key.Binding {
		display := make([]string, len(names))
		for i, n := range names {
			display[i] = strings.ToLower(n)
		}
		return key.NewBinding(
			key.WithKeys(display...),
			key.WithHelp(strings.Join(display, "/"), desc),
		)
	}

	return KeyMap{
		Left:    bind(k.Left, "left"),
		Right:   bind(k.Right, "right"),
		Pause:   bind(k.Pause, "pause"),
		Help:    bind(k.Help, "help"),
		Restart: bind(k.Restart, "restart"),
		Quit:    bind(k.Quit, "quit"),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// binding returns the binding of a logical key.
func (km *KeyMap) binding(k core.Key) *key.Binding {
	switch k {
	case core.KeyLeft:
		return &km.Left
	case core.KeyRight:
		return &km.Right
	case core.KeyPause:
		return &km.Pause
	case core.KeyHelp:
		return &km.Help
	case core.KeyRestart:
		return &km.Restart
	case core.KeyQuit:
		return &km.Quit
	default:
		return nil
	}
}

// Match returns every logical key bound to the message's key.
// Matching ignores whether a binding is enabled: the game decides what
// each key does in the current mode.
func (km KeyMap) Match(msg tea.KeyMsg) []core.Key {
	name := strings.ToLower(msg.String())
	if name == " " {
		name = "space"
	}
	var keys []core.Key
	for _, lk := range core.Keys() {
		for _, k := range km.binding(lk).Keys() {
			if k == name {
				keys = append(keys, lk)
				break
			}
		}
	}
	return keys
}

// ForMode returns a copy with only the bindings that do something in mode
// enabled, for the help footer.
func (km KeyMap) ForMode(mode snacks.Mode) KeyMap {
	enabled := map[core.Key]bool{}
	switch mode {
	case snacks.ModePlaying:
		enabled[core.KeyLeft] = true
		enabled[core.KeyRight] = true
		enabled[core.KeyPause] = true
		enabled[core.KeyHelp] = true
	case snacks.ModePaused:
		enabled[core.KeyPause] = true
		enabled[core.KeyHelp] = true
	case snacks.ModeHelp:
		enabled[core.KeyHelp] = true
		enabled[core.KeyQuit] = true
	case snacks.ModeGameOver:
		enabled[core.KeyRestart] = true
		enabled[core.KeyQuit] = true
	}

	out := km
	for _, lk := range core.Keys() {
		out.binding(lk).SetEnabled(enabled[lk])
	}
	return out
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Pause, km.Help, km.Restart, km.Quit, km.Exit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right},
		{km.Pause, km.Help},
		{km.Restart, km.Quit, km.Exit},
	}
}
