package scene

import (
	"fmt"

	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
)

// Layout, in world units.
const (
	HUDHeight       = 70
	FinishLineWidth = 7
	hudTextX        = 20
	hudScoreY       = 5
	hudTimeY        = 35
	hintX           = 10
	hintY           = snacks.ScreenHeight - 70
	hintStep        = 35
	centerX         = snacks.ScreenWidth / 2
	helpTitleY      = snacks.ScreenHeight / 3
	helpFirstLineY  = snacks.ScreenHeight/2 - 40
	helpLineStep    = 40
	pausedTitleY    = snacks.ScreenHeight/2 - 30
	pausedPromptY   = snacks.ScreenHeight/2 + 30
	outcomeTitleY   = snacks.ScreenHeight/2 - 60
	outcomeReasonY  = snacks.ScreenHeight / 2
	outcomePromptY  = snacks.ScreenHeight/2 + 70
)

var world = core.NewRectF(0, 0, snacks.ScreenWidth, snacks.ScreenHeight)

// Draw paints one frame onto c.
func Draw(c Canvas, f snacks.Frame, l Labels) {
	c.FillRect(world, ColorBackground)

	switch f.Mode {
	case snacks.ModePlaying:
		drawPlaying(c, f, l)
	case snacks.ModePaused:
		c.FillRect(world, ColorOverlay)
		c.Text(centerX, pausedTitleY, "PAUSED", large(ColorText))
		c.Text(centerX, pausedPromptY, "Press "+l.Pause+" to Resume", normal(ColorText))
	case snacks.ModeHelp:
		c.FillRect(world, ColorOverlay)
		c.Text(centerX, helpTitleY, "Help Menu", large(ColorHelpTitle))
		for i, line := range HelpLines(l) {
			c.Text(centerX, float64(helpFirstLineY+i*helpLineStep), line, normal(ColorText))
		}
	case snacks.ModeGameOver:
		drawGameOver(c, f, l)
	}
}

func drawPlaying(c Canvas, f snacks.Frame, l Labels) {
	c.FillRect(f.Player, ColorPlayer)
	for _, it := range f.Items {
		c.FillEllipse(it, ColorSnack)
	}

	c.FillRect(core.NewRectF(0, 0, snacks.ScreenWidth, HUDHeight), ColorHUD)
	hud := TextOptions{Size: FontNormal, Color: ColorText}
	c.Text(hudTextX, hudScoreY, fmt.Sprintf("Snacks: %d/%d", f.Score, f.Target), hud)
	c.Text(hudTextX, hudTimeY, fmt.Sprintf("Time: %ds", f.SecondsLeft()), hud)

	c.Text(hintX, hintY, "Movement: "+l.Move, hud)
	c.Text(hintX, hintY+hintStep, fmt.Sprintf("Press %s for Help | %s to Pause", l.Help, l.Pause), hud)

	if f.FinishLine.Active {
		y := f.FinishLine.Y
		c.Line(0, y, snacks.ScreenWidth, y, FinishLineWidth, ColorFinishLine)
	}
}

func drawGameOver(c Canvas, f snacks.Frame, l Labels) {
	c.FillRect(world, ColorOverlay)

	clr := ColorLose
	if f.Outcome.Result == snacks.ResultWin {
		clr = ColorWin
	}
	if f.Outcome.Title != "" {
		c.Text(centerX, outcomeTitleY, f.Outcome.Title, large(clr))
	}
	if f.Outcome.Reason != "" {
		c.Text(centerX, outcomeReasonY, f.Outcome.Reason, normal(clr))
	}
	c.Text(centerX, outcomePromptY,
		fmt.Sprintf("Press %s to Restart or %s to Quit", l.Restart, l.Quit), normal(ColorText))
}

// HelpLines returns the body of the help screen.
func HelpLines(l Labels) []string {
	return []string{
		fmt.Sprintf("Collect at least %d snacks to win.", snacks.TargetScore),
		"Reach the finish line after it appears (timer ends).",
		"Movement: " + l.Move + ".",
		"Press " + l.Pause + " to Pause/Resume game.",
		"Press " + l.Help + " to close this help menu.",
		"Press " + l.Quit + " to Quit at any time from Help or Game Over.",
	}
}

func normal(c core.Color) TextOptions {
	return TextOptions{Size: FontNormal, Color: c, Centered: true}
}

func large(c core.Color) TextOptions {
	return TextOptions{Size: FontLarge, Color: c, Centered: true}
}
