package harmony

import (
	"fmt"
	"strconv"
	"strings"
)

type qualityKind uint8

const (
	qualityPerfect qualityKind = iota
	qualityMajor
	qualityMinor
	qualityAugmented
	qualityDiminished
)

// A Quality classifies an interval as perfect, major, minor, augmented or
// diminished. Augmented and diminished carry a degree: AugmentedBy(2) is a
// doubly augmented interval. Quality is a closed set; values are created
// through the package constructors and compared with ==.
//
// Not every quality fits every interval size. Unisons, fourths, fifths and
// their compounds have a perfect quality but no major or minor; seconds,
// thirds, sixths and sevenths have major and minor but no perfect.
// IntervalOf rejects impossible combinations.
type Quality struct {
	kind   qualityKind
	degree int
}

// The qualities without a degree.
var (
	Perfect = Quality{kind: qualityPerfect}
	Major   = Quality{kind: qualityMajor}
	Minor   = Quality{kind: qualityMinor}
)

// Singly augmented and diminished.
var (
	Augmented  = AugmentedBy(1)
	Diminished = DiminishedBy(1)
)

// AugmentedBy returns the n-fold augmented quality. n below 1 is treated
// as 1.
func AugmentedBy(n int) Quality {
	return Quality{kind: qualityAugmented, degree: max(n, 1)}
}

// DiminishedBy returns the n-fold diminished quality. n below 1 is treated
// as 1.
func DiminishedBy(n int) Quality {
	return Quality{kind: qualityDiminished, degree: max(n, 1)}
}

// AugmentedDegree returns how many times the quality is augmented, zero if
// it is not.
func (q Quality) AugmentedDegree() int {
	if q.kind == qualityAugmented {
		return q.degree
	}
	return 0
}

// DiminishedDegree returns how many times the quality is diminished, zero
// if it is not.
func (q Quality) DiminishedDegree() int {
	if q.kind == qualityDiminished {
		return q.degree
	}
	return 0
}

// String returns the quality name. Augmented and diminished degrees beyond
// one stack by repetition: AugmentedBy(2) is "AugmentedAugmented".
func (q Quality) String() string {
	switch q.kind {
	case qualityPerfect:
		return "Perfect"
	case qualityMajor:
		return "Major"
	case qualityMinor:
		return "Minor"
	case qualityAugmented:
		return strings.Repeat("Augmented", q.degree)
	case qualityDiminished:
		return strings.Repeat("Diminished", q.degree)
	}
	return "Unknown"
}

// perfectCapable reports whether the size class (0..6) takes a perfect
// quality rather than major/minor.
func perfectCapable(sizeClass int) bool {
	return sizeClass == 0 || sizeClass == 3 || sizeClass == 4
}

// An Interval is a signed displacement between two pitches, stored as a
// StepPair. The zero value is a unison. Direction is the sign of the
// coordinates, so the negation of a major third is a descending major
// third, not its music-theoretic inversion.
type Interval struct {
	steps StepPair
}

// Common intervals within one octave.
var (
	Unison          = Interval{StepPair{0, 0}}
	MinorSecond     = Interval{StepPair{1, 1}}
	MajorSecond     = Interval{StepPair{1, 2}}
	MinorThird      = Interval{StepPair{2, 3}}
	MajorThird      = Interval{StepPair{2, 4}}
	PerfectFourth   = Interval{StepPair{3, 5}}
	AugmentedFourth = Interval{StepPair{3, 6}}
	DiminishedFifth = Interval{StepPair{4, 6}}
	PerfectFifth    = Interval{StepPair{4, 7}}
	MinorSixth      = Interval{StepPair{5, 8}}
	MajorSixth      = Interval{StepPair{5, 9}}
	MinorSeventh    = Interval{StepPair{6, 10}}
	MajorSeventh    = Interval{StepPair{6, 11}}
	Octave          = Interval{StepPair{7, 12}}
)

// NewInterval creates an interval from its raw step pair. Never fails.
func NewInterval(steps StepPair) Interval {
	return Interval{steps}
}

// IntervalOf composes an interval from a quality and the conventional
// 1-indexed number: IntervalOf(Major, 3) is a major third, IntervalOf(Minor,
// 10) a minor tenth. A negative number gives the descending interval.
// It fails with ErrInvalidSize for number 0 and with ErrInvalidQuality for
// combinations music notation has no name for, such as a major fifth.
func IntervalOf(q Quality, number int) (Interval, error) {
	if number == 0 {
		return Interval{}, fmt.Errorf("interval number 0: %w", ErrInvalidSize)
	}
	if number < 0 {
		i, err := IntervalOf(q, -number)
		return i.Neg(), err
	}
	diatonic := number - 1
	octaves, sizeClass := divFloor(diatonic, 7)
	expected := naturalOffsets[sizeClass] + 12*octaves

	var chromatic int
	switch q.kind {
	case qualityPerfect:
		if !perfectCapable(sizeClass) {
			return Interval{}, fmt.Errorf("no perfect interval of number %d: %w", number, ErrInvalidQuality)
		}
		chromatic = expected
	case qualityMajor:
		if perfectCapable(sizeClass) {
			return Interval{}, fmt.Errorf("no major interval of number %d: %w", number, ErrInvalidQuality)
		}
		chromatic = expected
	case qualityMinor:
		if perfectCapable(sizeClass) {
			return Interval{}, fmt.Errorf("no minor interval of number %d: %w", number, ErrInvalidQuality)
		}
		chromatic = expected - 1
	case qualityAugmented:
		chromatic = expected + q.degree
	case qualityDiminished:
		if perfectCapable(sizeClass) {
			chromatic = expected - q.degree
		} else {
			chromatic = expected - 1 - q.degree
		}
	}
	return Interval{StepPair{diatonic, chromatic}}, nil
}

// Steps returns the raw diatonic/chromatic displacement.
func (i Interval) Steps() StepPair {
	return i.steps
}

// Add returns the sum of the two intervals.
func (i Interval) Add(o Interval) Interval {
	return Interval{i.steps.Add(o.steps)}
}

// Sub returns the difference of the two intervals.
func (i Interval) Sub(o Interval) Interval {
	return Interval{i.steps.Sub(o.steps)}
}

// Neg returns the interval in the opposite direction. This is a sign flip,
// not the octave complement.
func (i Interval) Neg() Interval {
	return Interval{i.steps.Neg()}
}

// Scale returns the interval stacked n times.
func (i Interval) Scale(n int) Interval {
	return Interval{i.steps.Scale(n)}
}

// SizeClass returns the diatonic size reduced to 0..6, where 0 is the
// unison/octave class and 4 the fifth class. Always non-negative.
func (i Interval) SizeClass() int {
	_, r := divFloor(i.steps.Diatonic, 7)
	return r
}

// Number returns the conventional 1-indexed interval number with the sign
// giving direction: 1 for a unison, 5 for a fifth, -3 for a descending
// third, 10 for a tenth.
func (i Interval) Number() int {
	if i.steps.Diatonic < 0 {
		return -(-i.steps.Diatonic + 1)
	}
	return i.steps.Diatonic + 1
}

// Quality resolves the quality of the interval from the deviation of its
// chromatic steps from the perfect or major span at its size. Descending
// intervals resolve to the quality of their ascending counterpart, so both
// directions of a major third are Major.
func (i Interval) Quality() Quality {
	if i.steps.Diatonic < 0 {
		return i.Neg().Quality()
	}
	octaves, sizeClass := divFloor(i.steps.Diatonic, 7)
	deviation := i.steps.Chromatic - naturalOffsets[sizeClass] - 12*octaves
	if perfectCapable(sizeClass) {
		switch {
		case deviation == 0:
			return Perfect
		case deviation > 0:
			return AugmentedBy(deviation)
		}
		return DiminishedBy(-deviation)
	}
	switch {
	case deviation == 0:
		return Major
	case deviation == -1:
		return Minor
	case deviation > 0:
		return AugmentedBy(deviation)
	}
	return DiminishedBy(-deviation - 1)
}

// Simple reduces the interval to within one ascending octave, keeping its
// quality: a minor thirteenth becomes a minor sixth and a descending minor
// third becomes a major sixth.
func (i Interval) Simple() Interval {
	octaves, diatonic := divFloor(i.steps.Diatonic, 7)
	return Interval{StepPair{diatonic, i.steps.Chromatic - 12*octaves}}
}

// Chromatic discards the spelling and keeps the semitone count.
func (i Interval) Chromatic() ChromaticInterval {
	return ChromaticInterval(i.steps.Chromatic)
}

// Cmp orders intervals by chromatic width first, then diatonic width, so an
// augmented fourth sorts equal-width-first against a diminished fifth.
func (i Interval) Cmp(o Interval) int {
	switch {
	case i.steps.Chromatic < o.steps.Chromatic:
		return -1
	case i.steps.Chromatic > o.steps.Chromatic:
		return 1
	case i.steps.Diatonic < o.steps.Diatonic:
		return -1
	case i.steps.Diatonic > o.steps.Diatonic:
		return 1
	}
	return 0
}

// String renders the interval as its quality followed by its number, e.g.
// "Major3", "Perfect5", "AugmentedAugmented4". Descending intervals carry a
// leading "-". The output always parses back to an equal interval.
func (i Interval) String() string {
	if i.steps.Diatonic < 0 {
		return "-" + i.Neg().String()
	}
	return i.Quality().String() + strconv.Itoa(i.Number())
}

// MarshalJSON encodes the raw step pair, the canonical state of an interval.
func (i Interval) MarshalJSON() ([]byte, error) {
	return marshalSteps(i.steps)
}

// UnmarshalJSON decodes an interval from its raw step pair.
func (i *Interval) UnmarshalJSON(data []byte) error {
	return unmarshalSteps(data, &i.steps)
}
