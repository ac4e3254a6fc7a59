package game

import "strings"

// ScoreWidth is the number of decimal digits the score can hold.
const ScoreWidth = 11

// Score is a fixed-width decimal counter stored as ASCII digits,
// most significant first. It saturates at all nines.
type Score struct {
	digits [ScoreWidth]byte
}

// NewScore returns a zeroed score.
func NewScore() Score {
	var s Score
	s.Reset()
	return s
}

// Reset sets every digit to '0'.
func (s *Score) Reset() {
	for i := range s.digits {
		s.digits[i] = '0'
	}
}

// Add adds delta digit by digit from the right, carrying leftward.
// A carry out of the most significant digit saturates the counter.
func (s *Score) Add(delta uint64) {
	carry := byte(0)
	for i := ScoreWidth - 1; i >= 0; i-- {
		if delta == 0 && carry == 0 {
			return
		}
		d := s.digits[i] - '0' + byte(delta%10) + carry
		carry = d / 10
		s.digits[i] = '0' + d%10
		delta /= 10
	}
	if delta != 0 || carry != 0 {
		s.saturate()
	}
}

func (s *Score) saturate() {
	for i := range s.digits {
		s.digits[i] = '9'
	}
}

// Saturated reports whether the counter is pinned at its maximum.
func (s *Score) Saturated() bool {
	return strings.Count(string(s.digits[:]), "9") == ScoreWidth
}

// String returns the zero-padded digits.
func (s *Score) String() string {
	return string(s.digits[:])
}

// Value returns the score as an integer.
func (s *Score) Value() uint64 {
	var v uint64
	for _, d := range s.digits {
		v = v*10 + uint64(d-'0')
	}
	return v
}
