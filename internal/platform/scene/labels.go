package scene

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/snackrun/internal/config"
)

// Labels are the key names shown in hints and on the help screen.
type Labels struct {
	Move    string // e.g. "A/D or Q/D or Arrow Keys"
	Pause   string
	Help    string
	Restart string
	Quit    string
}

// DefaultLabels describes the default key bindings.
func DefaultLabels() Labels {
	return LabelsFor(config.DefaultSnacksConfig().Keys)
}

// LabelsFor builds labels from key bindings.
func LabelsFor(k config.KeyBindings) Labels {
	return Labels{
		Move:    moveLabel(k.Left, k.Right),
		Pause:   joinNames(k.Pause),
		Help:    joinNames(k.Help),
		Restart: joinNames(k.Restart),
		Quit:    joinNames(k.Quit),
	}
}

// moveLabel pairs left and right keys ("A/D"); the arrow pair is spelled out.
func moveLabel(left, right []string) string {
	arrows := contains(left, "left") && contains(right, "right")
	if arrows {
		l, r := without(left, "left"), without(right, "right")
		if (len(l) == 0) != (len(r) == 0) {
			arrows = false
		} else {
			left, right = l, r
		}
	}

	var parts []string
	for i, l := range left {
		if len(right) == 0 {
			parts = append(parts, DisplayName(l))
			continue
		}
		r := right[min(i, len(right)-1)]
		parts = append(parts, DisplayName(l)+"/"+DisplayName(r))
	}
	if arrows {
		parts = append(parts, "Arrow Keys")
	}
	return strings.Join(parts, " or ")
}

// DisplayName turns a key name into what a player reads on screen.
func DisplayName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return strings.ToUpper(name)
	}
	parts := strings.Split(name, "+")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, "+")
}

func joinNames(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = DisplayName(n)
	}
	return strings.Join(out, "/")
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return true
		}
	}
	return false
}

func without(names []string, drop string) []string {
	var out []string
	for _, n := range names {
		if !strings.EqualFold(n, drop) {
			out = append(out, n)
		}
	}
	return out
}
