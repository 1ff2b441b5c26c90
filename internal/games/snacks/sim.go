package snacks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snackrun/internal/core"
)

// advance runs one Playing frame. It returns true when the frame decided the
// outcome; the caller then stops simulating.
func (s *Session) advance(in core.InputFrame, now time.Time, rng *rand.Rand) bool {
	if s.Outcome.Decided() {
		return false
	}

	s.movePlayer(in)
	s.spawn(rng)
	s.fall()

	if s.Timer.Remaining(now) <= 0 && !s.FinishLine.Active {
		s.FinishLine = FinishLine{Active: true, Y: 0}
	}

	if !s.FinishLine.Active {
		return false
	}
	s.FinishLine.Y += FallSpeed
	return s.resolve()
}

// movePlayer applies each held direction independently, then clamps.
func (s *Session) movePlayer(in core.InputFrame) {
	if in.Has(core.ActionMoveLeft) {
		s.Player.X -= PlayerSpeed
	}
	if in.Has(core.ActionMoveRight) {
		s.Player.X += PlayerSpeed
	}
	s.Player.X = core.ClampF(s.Player.X, 0, ScreenWidth-PlayerWidth)
}

// spawn drops one item every SpawnInterval frames, somewhere above the
// visible area.
func (s *Session) spawn(rng *rand.Rand) {
	s.frames++
	if s.frames%SpawnInterval != 0 {
		return
	}
	x := rng.Intn(ScreenWidth - ItemSize + 1)
	y := SpawnMinY + rng.Intn(SpawnMaxY-SpawnMinY+1)
	s.Items = append(s.Items, Item{X: float64(x), Y: float64(y)})
}

// fall moves every item down, collecting the ones that touch the player and
// dropping the ones that left the screen.
func (s *Session) fall() {
	player := s.Player.Rect()

	live := s.Items[:0]
	for _, it := range s.Items {
		it.Y += FallSpeed
		switch {
		case player.Intersects(it.Rect()):
			if s.Score < TargetScore {
				s.Score++
			}
		case it.Y > ScreenHeight:
			// fell past the bottom edge
		default:
			live = append(live, it)
		}
	}
	s.Items = live
}

// resolve checks the active finish line against the player.
func (s *Session) resolve() bool {
	switch {
	case s.Player.Y <= s.FinishLine.Y:
		if s.Score >= TargetScore {
			s.end(winOutcome(s.Score))
		} else {
			s.end(outcomeShort)
		}
	case s.FinishLine.Y > ScreenHeight:
		s.end(outcomeMissed)
	default:
		return false
	}
	return true
}

func (s *Session) end(o Outcome) {
	s.Outcome = o
	s.Mode = ModeGameOver
}
