package harmony

import "math"

// A ChromaticPitch is a pitch counted in semitones from middle C with no
// spelling attached: E#4 and F4 collapse to the same ChromaticPitch. The
// zero value is middle C.
type ChromaticPitch int

// A ChromaticInterval is an interval counted in semitones.
type ChromaticInterval int

// Add returns the pitch shifted by the interval.
func (c ChromaticPitch) Add(i ChromaticInterval) ChromaticPitch {
	return c + ChromaticPitch(i)
}

// ChromaticBetween returns the semitone distance from one chromatic pitch
// to another.
func ChromaticBetween(from, to ChromaticPitch) ChromaticInterval {
	return ChromaticInterval(to - from)
}

// Class reduces the pitch to its pitch class in 0..11, C = 0.
func (c ChromaticPitch) Class() ChromaticPitch {
	_, r := divFloor(int(c), 12)
	return ChromaticPitch(r)
}

// Simple reduces the interval to within one ascending octave, 0..11.
func (i ChromaticInterval) Simple() ChromaticInterval {
	_, r := divFloor(int(i), 12)
	return ChromaticInterval(r)
}

// Frequency returns the frequency in Hz at standard tuning, A4 = 440 Hz.
func (c ChromaticPitch) Frequency() float64 {
	return c.FrequencyTuned(440)
}

// FrequencyTuned returns the frequency in Hz for a given tuning of A4.
func (c ChromaticPitch) FrequencyTuned(a4 float64) float64 {
	return a4 * math.Pow(2, float64(int(c)-9)/12)
}

// midiMiddleC is the MIDI key number of middle C.
const midiMiddleC = 60

// MIDI returns the MIDI key number of the pitch and whether it lies in the
// MIDI range 0..127.
func (c ChromaticPitch) MIDI() (uint8, bool) {
	key := int(c) + midiMiddleC
	if key < 0 || key > 127 {
		return 0, false
	}
	return uint8(key), true
}

// FromMIDI returns the chromatic pitch for a MIDI key number.
func FromMIDI(key uint8) ChromaticPitch {
	return ChromaticPitch(int(key) - midiMiddleC)
}

// Pitch picks a spelling for the chromatic pitch, preferring naturals and
// the customary single accidentals C#, Eb, F#, Ab and Bb.
func (c ChromaticPitch) Pitch() Pitch {
	_, class := divFloor(int(c), 12)
	letter := [12]Letter{C, C, D, E, E, F, F, G, A, A, B, B}[class]
	return c.PitchNamed(letter)
}

// PitchNamed spells the chromatic pitch on the given letter, choosing the
// octave that keeps the accidental smallest: PitchNamed on -1 with letter C
// yields Cb4, with letter B yields B3.
func (c ChromaticPitch) PitchNamed(letter Letter) Pitch {
	octave, class := divFloor(int(c), 12)
	switch diff := class - letter.naturalOffset(); {
	case diff > 6:
		octave++
	case diff < -6:
		octave--
	}
	return Pitch{StepPair{octave*7 + letter.index(), int(c)}}
}

// String renders the pitch under its preferred spelling.
func (c ChromaticPitch) String() string {
	return c.Pitch().String()
}
