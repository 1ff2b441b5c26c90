// Package snacks implements Marathon Snack Collector.
// The player slides along the bottom of the screen catching falling snacks
// until the timer runs out, then must meet the finish line with enough of
// them collected.
package snacks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snackrun/internal/core"
)

// World geometry, in world units (the reference window is 800x600 pixels).
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Gameplay tuning. These are fixed rules of the game, not settings.
const (
	PlayerWidth  = 50
	PlayerHeight = 50
	PlayerSpeed  = 1.0 // Units per frame
	PlayerStartX = ScreenWidth/2 - PlayerWidth/2
	PlayerStartY = ScreenHeight - PlayerHeight - 10

	ItemSize      = 20
	SpawnInterval = 60 // Frames between spawns
	SpawnMinY     = -100
	SpawnMaxY     = -20

	// FallEpsilon makes items and the finish line drift marginally faster
	// than the player's nominal forward progress.
	FallEpsilon = 0.0001
	FallSpeed   = PlayerSpeed + FallEpsilon

	SessionDuration = 20 * time.Second
	TargetScore     = 20
)

// Clock supplies the wall-clock time used by the countdown.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Mode      Mode
	Restarted bool // the previous session was replaced
	Ended     bool // the outcome was decided this frame
	Quit      bool // the player asked to leave
}

// Game owns the current session and drives it frame by frame.
type Game struct {
	clock   Clock
	rng     *rand.Rand
	session *Session
	quit    bool
}

// New creates a game reading time from clock. Call Reset before stepping.
func New(clock Clock) *Game {
	if clock == nil {
		clock = SystemClock()
	}
	return &Game{clock: clock}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snacks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Marathon Snack Collector"
}

// Reset seeds the spawner and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.clock.Now())
	g.quit = false
}

// Step processes one frame: mode transitions first, then the simulation if
// the game is Playing afterwards.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.quit {
		return StepResult{Mode: g.session.Mode, Quit: true}
	}

	var res StepResult
	mode, cmd := Transition(g.session.Mode, in)
	switch cmd {
	case CommandQuit:
		g.quit = true
		return StepResult{Mode: mode, Quit: true}
	case CommandRestart:
		g.session = NewSession(g.clock.Now())
		res.Restarted = true
	}
	g.session.Mode = mode

	if g.session.Mode == ModePlaying {
		res.Ended = g.session.advance(in, g.clock.Now(), g.rng)
	}

	res.Mode = g.session.Mode
	return res
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	if g.session == nil {
		return ModePlaying
	}
	return g.session.Mode
}

// Quit reports whether the player has asked to leave.
func (g *Game) Quit() bool {
	return g.quit
}

// Session exposes the live session for inspection. Callers must not keep it
// across a Step.
func (g *Game) Session() *Session {
	return g.session
}
