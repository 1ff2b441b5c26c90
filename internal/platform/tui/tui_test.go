package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
	"github.com/vovakirdan/snackrun/internal/platform/driver"
	"github.com/vovakirdan/snackrun/internal/platform/scene"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMatch(t *testing.T) {
	km := NewKeyMap(config.DefaultSnacksConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Key
	}{
		{"a", runeKey('a'), []core.Key{core.KeyLeft}},
		{"q is left and quit", runeKey('q'), []core.Key{core.KeyLeft, core.KeyQuit}},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, []core.Key{core.KeyRight}},
		{"shifted letter", runeKey('P'), []core.Key{core.KeyPause}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Match(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("Match() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Match()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeyMapSpaceBinding(t *testing.T) {
	keys := config.DefaultSnacksConfig().Keys
	keys.Pause = []string{"space"}
	km := NewKeyMap(keys)

	got := km.Match(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(got) != 1 || got[0] != core.KeyPause {
		t.Errorf("Match(space) = %v, want [pause]", got)
	}
}

func TestKeyMapForMode(t *testing.T) {
	km := NewKeyMap(config.DefaultSnacksConfig().Keys)

	over := km.ForMode(snacks.ModeGameOver)
	if !over.Restart.Enabled() || !over.Quit.Enabled() {
		t.Error("restart and quit should be shown after game over")
	}
	if over.Left.Enabled() || over.Pause.Enabled() {
		t.Error("movement and pause do nothing after game over")
	}
	if !over.Exit.Enabled() {
		t.Error("exit is always available")
	}

	playing := km.ForMode(snacks.ModePlaying)
	if !playing.Left.Enabled() || playing.Quit.Enabled() {
		t.Error("playing footer should offer movement but not quit")
	}

	// The receiver keeps its bindings enabled.
	if !km.Left.Enabled() || !km.Quit.Enabled() {
		t.Error("ForMode changed the receiver")
	}
	// Matching ignores the enabled state.
	if got := over.Match(runeKey('d')); len(got) != 1 || got[0] != core.KeyRight {
		t.Errorf("Match on a disabled binding = %v", got)
	}
}

func TestCanvas(t *testing.T) {
	// 400x150 cells: half a cell per world unit across, a quarter down.
	screen := core.NewScreen(400, 150)
	c := NewCanvas(screen)

	c.FillRect(core.NewRectF(0, 0, snacks.ScreenWidth, snacks.ScreenHeight), scene.ColorBackground)
	if got := screen.GetCell(399, 149).BG; got != scene.ColorBackground {
		t.Errorf("background not filled: %v", got)
	}

	c.FillEllipse(core.NewRectF(100, 50, 20, 20), scene.ColorSnack)
	if screen.Get(50, 12) != glyphSnack || screen.Get(59, 17) != glyphSnack {
		t.Error("snack cells not drawn")
	}
	if screen.Get(60, 12) == glyphSnack || screen.Get(50, 18) == glyphSnack {
		t.Error("snack drawn outside its cells")
	}
	if got := screen.GetCell(50, 12).BG; got != scene.ColorBackground {
		t.Errorf("snack should keep the background, got %v", got)
	}

	c.Line(0, 300, snacks.ScreenWidth, 300, scene.FinishLineWidth, scene.ColorFinishLine)
	if row := screen.Row(75); row != strings.Repeat(string(glyphFinishLine), 400) {
		t.Errorf("finish line row = %q", row)
	}

	c.Text(400, 270, "PAUSED", scene.TextOptions{Size: scene.FontLarge, Color: scene.ColorText, Centered: true})
	if got := screen.Row(68)[197:203]; got != "PAUSED" {
		t.Errorf("centered text = %q", got)
	}

	c.Text(20, 5, "Snacks", scene.TextOptions{Size: scene.FontNormal, Color: scene.ColorText})
	if got := screen.Row(1)[10:16]; got != "Snacks" {
		t.Errorf("top-left text = %q", got)
	}
}

func TestCanvasFitsResize(t *testing.T) {
	screen := core.NewScreen(400, 150)
	c := NewCanvas(screen)

	screen.Resize(80, 30)
	c.fit()
	c.FillRect(core.NewRectF(0, 0, snacks.ScreenWidth, snacks.ScreenHeight), scene.ColorBackground)

	if got := screen.GetCell(79, 29).BG; got != scene.ColorBackground {
		t.Errorf("resized canvas does not cover the screen: %v", got)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.FillRect(core.NewRect(0, 0, 3, 1), scene.ColorPlayer)
	screen.DrawText(0, 1, "abc", scene.ColorText)

	out := RenderScreen(screen)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "abc") {
		t.Errorf("text missing from %q", out)
	}
}

func newTestModel(t *testing.T, holdTicks int) (Model, *driver.Driver) {
	t.Helper()
	cfg := config.DefaultSnacksConfig()
	cfg.Terminal.HoldTicks = holdTicks

	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	d := driver.New(snacks.New(clock), nil)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	d.Start(rt)
	return NewModel(d, cfg, rt), d
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelHoldsMovementKeys(t *testing.T) {
	m, d := newTestModel(t, 3)
	start := d.Frame().Player.X

	m = step(t, m, runeKey('d'))
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg(time.Time{}))
	}

	if got := d.Frame().Player.X - start; got != 3 {
		t.Errorf("moved %v units, want 3 (hold ticks)", got)
	}
}

func TestModelOppositeKeyReleases(t *testing.T) {
	m, d := newTestModel(t, 10)
	start := d.Frame().Player.X

	m = step(t, m, runeKey('d'))
	m = step(t, m, TickMsg(time.Time{}))
	m = step(t, m, runeKey('a'))
	for i := 0; i < 20; i++ {
		m = step(t, m, TickMsg(time.Time{}))
	}

	// One step right, then ten left.
	if got := d.Frame().Player.X - start; got != -9 {
		t.Errorf("net movement = %v, want -9", got)
	}
}

func TestModelPauseAndHelp(t *testing.T) {
	m, d := newTestModel(t, 3)

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(time.Time{}))
	if d.Frame().Mode != snacks.ModePaused {
		t.Fatalf("mode = %v, want paused", d.Frame().Mode)
	}

	m = step(t, m, runeKey('h'))
	m = step(t, m, TickMsg(time.Time{}))
	if d.Frame().Mode != snacks.ModeHelp {
		t.Fatalf("mode = %v, want help", d.Frame().Mode)
	}

	if view := m.View(); !strings.Contains(view, "Help Menu") {
		t.Errorf("help screen not rendered:\n%s", view)
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd != nil {
		t.Fatal("quit is applied on the next tick")
	}
	_, cmd = m.Update(TickMsg(time.Time{}))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelCtrlCExits(t *testing.T) {
	m, _ := newTestModel(t, 3)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after exit")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m, _ := newTestModel(t, 3)
	m = step(t, m, TickMsg(time.Time{}))

	view := m.View()
	if !strings.Contains(view, "Snacks: 0/20") || !strings.Contains(view, "Time: 20s") {
		t.Errorf("HUD missing:\n%s", view)
	}
}
