package scene

import "github.com/vovakirdan/snackrun/internal/core"

// Palette.
var (
	ColorBackground = core.RGB(30, 30, 40)
	ColorPlayer     = core.RGB(70, 170, 255)
	ColorSnack      = core.RGB(255, 190, 0)
	ColorText       = core.RGB(220, 220, 220)
	ColorHUD        = core.RGBA(50, 50, 70, 200)
	ColorFinishLine = core.RGB(255, 60, 60)
	ColorWin        = core.RGB(100, 255, 100)
	ColorLose       = core.RGB(255, 80, 80)
	ColorHelpTitle  = core.RGB(180, 180, 255)
	ColorOverlay    = core.RGBA(0, 0, 0, 180)
)
