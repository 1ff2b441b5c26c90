package snacks

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snackrun/internal/core"
)

// Player is the controlled sprite. Only X changes during a session.
type Player struct {
	X, Y float64
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// Item is a falling snack.
type Item struct {
	X, Y float64
}

// Rect returns the item's collision rectangle.
func (it Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, ItemSize, ItemSize)
}

// Timer is the wall-clock countdown of a session.
type Timer struct {
	Start    time.Time
	Duration time.Duration
}

// Remaining returns the time left, never below zero.
func (t Timer) Remaining(now time.Time) time.Duration {
	left := t.Duration - now.Sub(t.Start)
	if left < 0 {
		return 0
	}
	return left
}

// FinishLine scrolls down the screen once the timer has run out.
type FinishLine struct {
	Active bool
	Y      float64
}

// Result tags how a session ended.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLose
)

// String returns the result name used in logs.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "none"
	}
}

// Outcome is the end-of-session verdict.
type Outcome struct {
	Result Result
	Title  string // headline, e.g. "YOU WIN!"
	Reason string // detail line, e.g. "Not enough snacks!"
}

// Decided reports whether the outcome has been set.
func (o Outcome) Decided() bool {
	return o.Result != ResultNone
}

func winOutcome(score int) Outcome {
	return Outcome{
		Result: ResultWin,
		Title:  "YOU WIN!",
		Reason: fmt.Sprintf("You collected %d snacks!", score),
	}
}

var (
	outcomeShort = Outcome{
		Result: ResultLose,
		Title:  "GAME OVER!",
		Reason: "Not enough snacks!",
	}
	outcomeMissed = Outcome{
		Result: ResultLose,
		Title:  "GAME OVER!",
		Reason: "The finish line passed you!",
	}
)

// Session is one play-through from reset to outcome.
// It is replaced as a whole on restart, never partially reset.
type Session struct {
	Mode       Mode
	Player     Player
	Items      []Item
	Timer      Timer
	FinishLine FinishLine
	Score      int
	Outcome    Outcome

	frames uint64 // frames simulated while Playing; drives the spawner
}

// NewSession creates a fresh session whose timer starts at now.
func NewSession(now time.Time) *Session {
	return &Session{
		Mode: ModePlaying,
		Player: Player{
			X: PlayerStartX,
			Y: PlayerStartY,
		},
		Items: make([]Item, 0, 16),
		Timer: Timer{
			Start:    now,
			Duration: SessionDuration,
		},
	}
}

// Frames returns the number of simulated frames.
func (s *Session) Frames() uint64 {
	return s.frames
}
