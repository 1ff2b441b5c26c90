package core

import "testing"

func TestMapIntents(t *testing.T) {
	tests := []struct {
		name     string
		build    func(s *KeyState)
		expected []Action
	}{
		{
			name:     "nothing held",
			build:    func(s *KeyState) {},
			expected: nil,
		},
		{
			name:     "held left moves",
			build:    func(s *KeyState) { s.Hold(KeyLeft) },
			expected: []Action{ActionMoveLeft},
		},
		{
			name: "both directions assert both",
			build: func(s *KeyState) {
				s.Hold(KeyLeft)
				s.Hold(KeyRight)
			},
			expected: []Action{ActionMoveLeft, ActionMoveRight},
		},
		{
			name:     "held pause does not toggle",
			build:    func(s *KeyState) { s.Hold(KeyPause) },
			expected: nil,
		},
		{
			name:     "pressed pause toggles",
			build:    func(s *KeyState) { s.Press(KeyPause) },
			expected: []Action{ActionTogglePause},
		},
		{
			name: "edges map one to one",
			build: func(s *KeyState) {
				s.Press(KeyHelp)
				s.Press(KeyRestart)
				s.Press(KeyQuit)
			},
			expected: []Action{ActionToggleHelp, ActionRestart, ActionQuit},
		},
		{
			name:     "pressed movement key also moves",
			build:    func(s *KeyState) { s.Press(KeyRight) },
			expected: []Action{ActionMoveRight},
		},
		{
			name: "unknown keys are ignored",
			build: func(s *KeyState) {
				s.Press(Key(99))
				s.Hold(Key(-1))
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s KeyState
			tc.build(&s)
			in := MapIntents(s)

			want := make(map[Action]bool)
			for _, a := range tc.expected {
				want[a] = true
				if !in.Has(a) {
					t.Errorf("expected %v to be asserted", a)
				}
			}
			for a, on := range in.Actions {
				if on && !want[a] {
					t.Errorf("unexpected action %v", a)
				}
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionQuit)
	in.Clear()
	if in.Has(ActionQuit) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestKeysOrder(t *testing.T) {
	keys := Keys()
	if len(keys) != 6 {
		t.Fatalf("Keys() returned %d keys, expected 6", len(keys))
	}
	if keys[0] != KeyLeft || keys[5] != KeyQuit {
		t.Errorf("unexpected order: %v", keys)
	}
	for _, k := range keys {
		if k.String() == "unknown" {
			t.Errorf("key %d has no name", k)
		}
	}
}
