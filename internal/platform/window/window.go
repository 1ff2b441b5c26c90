// Package window provides the Ebitengine frontend: the game in an 800x600
// desktop window with vector shapes and Go Regular text.
package window

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
	"github.com/vovakirdan/snackrun/internal/platform/driver"
	"github.com/vovakirdan/snackrun/internal/platform/scene"
	"github.com/vovakirdan/snackrun/internal/registry"
)

func init() {
	registry.Register(config.FrontendWindow, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays the game in a desktop window.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return config.FrontendWindow
}

// Title returns a human-readable description.
func (Frontend) Title() string {
	return "Desktop window (Ebitengine, 800x600)"
}

// Run opens the window and blocks until the player quits or closes it.
func (Frontend) Run(opts registry.Options) error {
	if opts.Driver == nil {
		return errors.New("window: no driver")
	}

	keys, err := newKeyMap(opts.Config.Keys)
	if err != nil {
		return err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("window: load font: %w", err)
	}

	scale := opts.Config.Window.Scale
	w, h := int(snacks.ScreenWidth*scale), int(snacks.ScreenHeight*scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetTPS(opts.Runtime.TickRate)

	opts.Driver.Start(opts.Runtime)
	opts.Driver.Logger().Debug("window opened", "width", w, "height", h)

	g := &game{
		driver: opts.Driver,
		keys:   keys,
		labels: scene.LabelsFor(opts.Config.Keys),
		canvas: NewCanvas(src),
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if !opts.Driver.Quit() {
		opts.Driver.Logger().Info("window closed")
	}
	return nil
}

// game implements ebiten.Game.
type game struct {
	driver *driver.Driver
	keys   keyMap
	labels scene.Labels
	canvas *Canvas
}

// Update advances the game one tick.
func (g *game) Update() error {
	g.driver.Tick(g.keys.state())
	if g.driver.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	scene.Draw(g.canvas, g.driver.Frame(), g.labels)
}

// Layout fixes the logical screen to the world size; Ebitengine scales it
// to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return snacks.ScreenWidth, snacks.ScreenHeight
}
