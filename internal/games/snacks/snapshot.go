package snacks

import (
	"time"

	"github.com/vovakirdan/snackrun/internal/core"
)

// Frame is a read-only description of what is on screen, handed to renderers
// after each Step. It shares no memory with the live session.
type Frame struct {
	Tick       uint64
	Mode       Mode
	Player     core.RectF
	Items      []core.RectF
	Score      int
	Target     int
	Remaining  time.Duration
	FinishLine FinishLine
	Outcome    Outcome
}

// SecondsLeft returns the countdown in whole seconds, rounded down.
func (f Frame) SecondsLeft() int {
	return int(f.Remaining / time.Second)
}

// Frame captures the current session.
func (g *Game) Frame() Frame {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	s := g.session

	items := make([]core.RectF, len(s.Items))
	for i, it := range s.Items {
		items[i] = it.Rect()
	}

	return Frame{
		Tick:       s.frames,
		Mode:       s.Mode,
		Player:     s.Player.Rect(),
		Items:      items,
		Score:      s.Score,
		Target:     TargetScore,
		Remaining:  s.Timer.Remaining(g.clock.Now()),
		FinishLine: s.FinishLine,
		Outcome:    s.Outcome,
	}
}
