package harmony

import (
	"strconv"
	"strings"
)

// A Letter is one of the seven diatonic note letters C D E F G A B.
// Construct one with NewLetter or use the package constants; the methods
// assume a valid letter.
type Letter byte

// The seven diatonic letters.
const (
	C Letter = 'C'
	D Letter = 'D'
	E Letter = 'E'
	F Letter = 'F'
	G Letter = 'G'
	A Letter = 'A'
	B Letter = 'B'
)

// naturalOffsets maps a diatonic index (C=0 .. B=6) to the chromatic steps
// from C to the natural letter. The same table gives the chromatic span of
// the perfect or major interval at each size class.
var naturalOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}

// NewLetter returns the Letter for c and whether c is one of A through G.
func NewLetter(c byte) (Letter, bool) {
	if c < 'A' || c > 'G' {
		return 0, false
	}
	return Letter(c), true
}

// letterFromDiatonic returns the letter at the given diatonic step count,
// cyclic with C = 0 + 7n.
func letterFromDiatonic(diatonic int) Letter {
	_, r := divFloor(diatonic, 7)
	return [7]Letter{C, D, E, F, G, A, B}[r]
}

// index returns the diatonic steps from C to the letter, in 0..6.
func (l Letter) index() int {
	if l >= 'C' {
		return int(l - 'C')
	}
	return int(l-'A') + 5
}

// naturalOffset returns the chromatic steps from C to the natural letter.
func (l Letter) naturalOffset() int {
	return naturalOffsets[l.index()]
}

func (l Letter) String() string {
	return string(byte(l))
}

// An Accidental is a signed chromatic shift away from a natural letter:
// positive counts sharps, negative counts flats, zero is natural. Any
// magnitude is valid; a quadruply sharp note is Accidental(4).
type Accidental int

// Common accidentals.
const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// String renders the accidental as repeated marks: "" for natural, "#"
// per sharp, "b" per flat.
func (a Accidental) String() string {
	switch {
	case a > 0:
		return strings.Repeat("#", int(a))
	case a < 0:
		return strings.Repeat("b", int(-a))
	}
	return ""
}

// A Pitch is a note spelled on the staff, stored as the StepPair from
// middle C (C4) to the note. The zero value is C4. Two pitches with the
// same chromatic steps but different diatonic steps are distinct: E#4 and
// F4 sound alike but are not equal.
type Pitch struct {
	steps StepPair
}

// MiddleC is C4, the reference pitch of the representation.
var MiddleC = Pitch{}

// NewPitch creates a pitch from its raw step pair. Never fails; every pair
// of integers names some spelling.
func NewPitch(steps StepPair) Pitch {
	return Pitch{steps}
}

// PitchOf composes a pitch from its scientific-pitch-notation parts.
// PitchOf(C, Natural, 4) is middle C; PitchOf(B, Sharp, 3) is {-1, 0}.
func PitchOf(letter Letter, accidental Accidental, octave int) Pitch {
	return Pitch{StepPair{
		Diatonic:  letter.index() + 7*(octave-4),
		Chromatic: letter.naturalOffset() + int(accidental) + 12*(octave-4),
	}}
}

// Steps returns the raw diatonic/chromatic displacement from middle C.
func (p Pitch) Steps() StepPair {
	return p.steps
}

// Decompose splits the pitch into letter, accidental and octave. The
// letter follows the diatonic steps alone, so the accidental soaks up the
// whole chromatic mismatch; {0, 4} decomposes to C####4, never E4.
func (p Pitch) Decompose() (Letter, Accidental, int) {
	octave, idx := divFloor(p.steps.Diatonic, 7)
	natural := naturalOffsets[idx] + 12*octave
	return letterFromDiatonic(idx), Accidental(p.steps.Chromatic - natural), octave + 4
}

// Letter returns the diatonic letter of the pitch.
func (p Pitch) Letter() Letter {
	l, _, _ := p.Decompose()
	return l
}

// Accidental returns the accidental of the pitch.
func (p Pitch) Accidental() Accidental {
	_, a, _ := p.Decompose()
	return a
}

// Octave returns the scientific-pitch-notation octave number, C4 = octave 4.
func (p Pitch) Octave() int {
	octave, _ := divFloor(p.steps.Diatonic, 7)
	return octave + 4
}

// Transpose returns the pitch shifted by the interval.
func (p Pitch) Transpose(i Interval) Pitch {
	return Pitch{p.steps.Add(i.steps)}
}

// Between returns the interval from one pitch to another. A higher `to`
// yields an ascending interval.
func Between(from, to Pitch) Interval {
	return Interval{to.steps.Sub(from.steps)}
}

// Class reduces the pitch into octave 4, keeping letter and accidental.
func (p Pitch) Class() Pitch {
	octave, idx := divFloor(p.steps.Diatonic, 7)
	return Pitch{StepPair{idx, p.steps.Chromatic - 12*octave}}
}

// Chromatic discards the spelling and keeps semitones from middle C.
func (p Pitch) Chromatic() ChromaticPitch {
	return ChromaticPitch(p.steps.Chromatic)
}

// Frequency returns the frequency in Hz at standard tuning, A4 = 440 Hz.
func (p Pitch) Frequency() float64 {
	return p.Chromatic().Frequency()
}

// Cmp orders pitches by staff position first, then chromatic pitch.
// E#4 sorts below Fb4 even though it sounds higher; use CmpChromatic for
// the sounding order.
func (p Pitch) Cmp(o Pitch) int {
	return p.steps.Cmp(o.steps)
}

// CmpChromatic orders pitches by sounding (chromatic) pitch first, breaking
// ties by staff position.
func (p Pitch) CmpChromatic(o Pitch) int {
	switch {
	case p.steps.Chromatic < o.steps.Chromatic:
		return -1
	case p.steps.Chromatic > o.steps.Chromatic:
		return 1
	}
	return p.Cmp(o)
}

// String renders the pitch in scientific pitch notation, e.g. "Eb4",
// "C####4", "G-1". The output always carries the octave and parses back to
// an equal pitch.
func (p Pitch) String() string {
	l, a, octave := p.Decompose()
	return l.String() + a.String() + strconv.Itoa(octave)
}

// MarshalJSON encodes the raw step pair, the canonical state of a pitch.
func (p Pitch) MarshalJSON() ([]byte, error) {
	return marshalSteps(p.steps)
}

// UnmarshalJSON decodes a pitch from its raw step pair.
func (p *Pitch) UnmarshalJSON(data []byte) error {
	return unmarshalSteps(data, &p.steps)
}
