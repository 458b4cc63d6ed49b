// Package harmony models pitches and intervals of Western music theory in
// twelve-tone equal temperament.
//
// Both Pitch and Interval are backed by a StepPair, a pair of independent
// integer coordinates: diatonic steps (staff positions, so C to D is 1) and
// chromatic steps (semitones, so C to D is 2). Keeping the two axes separate
// is what makes accidental spelling exact: a major second is {1, 2}, a minor
// second is {1, 1}, and an augmented unison is {0, 1}. A Pitch is the
// StepPair from middle C (C4 in scientific pitch notation) to the pitch, so
// transposition is plain addition and any number of sharps or flats on any
// letter stays representable without loss.
//
// All types are immutable values; every operation returns a new value and
// nothing in the package holds mutable state.
package harmony

import "encoding/json"

// A StepPair is a signed displacement along the diatonic (staff-position)
// and chromatic (semitone) axes at once. The two fields are independent
// integers; no mod-7 or mod-12 reduction ever happens inside StepPair
// itself. The zero value is the null displacement.
type StepPair struct {
	Diatonic  int `json:"diatonic"`
	Chromatic int `json:"chromatic"`
}

// Add returns the componentwise sum of s and o.
func (s StepPair) Add(o StepPair) StepPair {
	return StepPair{s.Diatonic + o.Diatonic, s.Chromatic + o.Chromatic}
}

// Sub returns the componentwise difference of s and o.
func (s StepPair) Sub(o StepPair) StepPair {
	return StepPair{s.Diatonic - o.Diatonic, s.Chromatic - o.Chromatic}
}

// Neg returns the displacement in the opposite direction.
func (s StepPair) Neg() StepPair {
	return StepPair{-s.Diatonic, -s.Chromatic}
}

// Scale returns the displacement repeated n times. Negative n reverses
// direction.
func (s StepPair) Scale(n int) StepPair {
	return StepPair{s.Diatonic * n, s.Chromatic * n}
}

// IsZero reports whether s is the null displacement.
func (s StepPair) IsZero() bool {
	return s.Diatonic == 0 && s.Chromatic == 0
}

// Cmp orders step pairs by diatonic steps first, then chromatic steps.
// It returns -1, 0 or 1.
func (s StepPair) Cmp(o StepPair) int {
	switch {
	case s.Diatonic < o.Diatonic:
		return -1
	case s.Diatonic > o.Diatonic:
		return 1
	case s.Chromatic < o.Chromatic:
		return -1
	case s.Chromatic > o.Chromatic:
		return 1
	}
	return 0
}

// Pitch and Interval serialize as their raw step pair, not their display
// text; the raw fields are the canonical state and round-trip exactly.

func marshalSteps(s StepPair) ([]byte, error) {
	return json.Marshal(s)
}

func unmarshalSteps(data []byte, s *StepPair) error {
	return json.Unmarshal(data, s)
}

// divFloor returns q, r such that q*y + r = x and 0 <= r < y.
// Only called with positive y (7 or 12).
func divFloor(x, y int) (q, r int) {
	q = x / y
	r = x % y
	if r < 0 {
		q--
		r += y
	}
	return q, r
}
