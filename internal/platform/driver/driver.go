// Package driver runs the game for a frontend: it turns key state into
// intents, steps the game once per frame and logs what happened.
// Frontends own the loop and the surface; the driver owns the game.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
)

// Driver owns one game across frames.
type Driver struct {
	game   *snacks.Game
	logger *log.Logger
	cfg    core.RuntimeConfig
	quit   bool
}

// New creates a driver for game. A nil logger discards output.
func New(game *snacks.Game, logger *log.Logger) *Driver {
	if game == nil {
		game = snacks.New(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{game: game, logger: logger}
}

// Start seeds the game and begins the first session.
// A zero seed is replaced with one derived from the current time.
func (d *Driver) Start(cfg core.RuntimeConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	d.cfg = cfg
	d.quit = false
	d.game.Reset(cfg)
	d.logger.Info("session started",
		"game", d.game.ID(),
		"seed", cfg.Seed,
		"tps", cfg.TickRate,
	)
}

// Tick advances the game by one frame.
func (d *Driver) Tick(keys core.KeyState) snacks.StepResult {
	prev := d.game.Mode()
	res := d.game.Step(core.MapIntents(keys))

	if res.Restarted {
		d.logger.Info("session restarted")
	}
	if res.Mode != prev {
		d.logger.Debug("mode changed", "from", prev, "to", res.Mode)
	}
	if res.Ended {
		s := d.game.Session()
		d.logger.Info("session ended",
			"result", s.Outcome.Result,
			"score", s.Score,
			"frames", s.Frames(),
			"reason", s.Outcome.Reason,
		)
	}
	if res.Quit && !d.quit {
		d.quit = true
		d.logger.Info("quit requested", "mode", res.Mode)
	}
	return res
}

// Frame returns a snapshot for rendering.
func (d *Driver) Frame() snacks.Frame {
	return d.game.Frame()
}

// Quit reports whether the player has asked to leave.
func (d *Driver) Quit() bool {
	return d.quit || d.game.Quit()
}

// Config returns the runtime configuration passed to Start, with the
// resolved seed.
func (d *Driver) Config() core.RuntimeConfig {
	return d.cfg
}

// Logger returns the driver's logger.
func (d *Driver) Logger() *log.Logger {
	return d.logger
}
