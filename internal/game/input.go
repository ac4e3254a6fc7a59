package game

import "strings"

// Input is a single event delivered to a session by an input collaborator.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputRestart
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Direction maps a move input to its direction.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirUp, true
	case InputDown:
		return DirDown, true
	case InputLeft:
		return DirLeft, true
	case InputRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// ParseInput reads a word or single letter (u/d/l/r/x for restart).
// Unrecognised text yields InputNone.
func ParseInput(s string) Input {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return InputUp
	case "d", "down":
		return InputDown
	case "l", "left":
		return InputLeft
	case "r", "right":
		return InputRight
	case "x", "restart":
		return InputRestart
	default:
		return InputNone
	}
}

// ParseMoves splits a compact move string such as "LLUR" or "left,up"
// into inputs, dropping anything it does not recognise.
func ParseMoves(s string) []Input {
	var out []Input
	if strings.ContainsAny(s, ", ") {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			if in := ParseInput(f); in != InputNone {
				out = append(out, in)
			}
		}
		return out
	}
	for _, r := range s {
		if in := ParseInput(string(r)); in != InputNone {
			out = append(out, in)
		}
	}
	return out
}
