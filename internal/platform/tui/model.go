package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/platform/driver"
	"github.com/vovakirdan/snackrun/internal/platform/scene"
)

// Model is the Bubble Tea model for the game screen.
type Model struct {
	driver    *driver.Driver
	keys      KeyMap
	help      help.Model
	labels    scene.Labels
	screen    *core.Screen
	canvas    *Canvas
	tickRate  int
	holdTicks int
	pending   core.KeyState    // Key-down edges since the last tick
	hold      map[core.Key]int // Ticks a movement key still counts as held
	quitting  bool
}

// NewModel creates a model driving d on a screen of the runtime size.
// The last terminal row is reserved for the key help footer.
func NewModel(d *driver.Driver, cfg config.SnacksConfig, rt core.RuntimeConfig) Model {
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1))

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		driver:    d,
		keys:      NewKeyMap(cfg.Keys),
		help:      h,
		labels:    scene.LabelsFor(cfg.Keys),
		screen:    screen,
		canvas:    NewCanvas(screen),
		tickRate:  rt.TickRate,
		holdTicks: cfg.Terminal.HoldTicks,
		hold:      make(map[core.Key]int),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key-down edges. Terminals send no key releases, so a
// movement key stays held for holdTicks after its last press or repeat;
// pressing the opposite direction releases it at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	for _, k := range m.keys.Match(msg) {
		m.pending.Press(k)
		switch k {
		case core.KeyLeft:
			m.hold[core.KeyLeft] = m.holdTicks
			m.hold[core.KeyRight] = 0
		case core.KeyRight:
			m.hold[core.KeyRight] = m.holdTicks
			m.hold[core.KeyLeft] = 0
		}
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running:
// the world is fixed and only the scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.canvas.fit()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds one frame of input to the driver.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	state := m.keyState()
	m.pending = core.KeyState{}

	m.driver.Tick(state)
	if m.driver.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// keyState combines pending edges with emulated held keys and ages the holds.
func (m Model) keyState() core.KeyState {
	state := m.pending
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight} {
		if m.hold[k] > 0 {
			state.Hold(k)
			m.hold[k]--
		}
	}
	return state
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".snackrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snacks_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.driver.Logger().Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.driver.Logger().Info("screenshot saved", "path", path)
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	scene.Draw(m.canvas, m.driver.Frame(), m.labels)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.keys.ForMode(m.driver.Frame().Mode))
	return RenderScreen(m.screen) + "\n" + footer
}
