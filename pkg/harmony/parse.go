package harmony

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors. All failures wrap one of these sentinels; match with
// errors.Is. Construction from raw integers never fails, only parsing does.
var (
	ErrInvalidLetter     = errors.New("invalid note letter")
	ErrInvalidAccidental = errors.New("invalid accidental")
	ErrInvalidOctave     = errors.New("invalid octave")
	ErrInvalidQuality    = errors.New("invalid interval quality")
	ErrInvalidSize       = errors.New("invalid interval size")
	ErrIncomplete        = errors.New("incomplete input")
)

// ParsePitch parses scientific pitch notation: an uppercase letter, zero or
// more stacked accidental marks and an optional signed octave number.
//
//	C4  F#3  Bbb5  C####4  G-1  A#
//
// Accidentals are "#" per sharp and "b" per flat (the unicode marks ♯, ♭
// and ♮ are accepted too); sharps and flats do not mix. A missing octave
// defaults to 4, so "F#" is F#4. There is no limit on the accidental count
// or the octave.
func ParsePitch(s string) (Pitch, error) {
	if s == "" {
		return Pitch{}, fmt.Errorf("parse pitch: %w", ErrIncomplete)
	}
	runes := []rune(s)
	if runes[0] < 'A' || runes[0] > 'G' {
		return Pitch{}, fmt.Errorf("parse pitch %q: %q: %w", s, string(runes[0]), ErrInvalidLetter)
	}
	letter := Letter(runes[0])

	accidental := 0
	natural := false
	i := 1
marks:
	for i < len(runes) {
		switch runes[i] {
		case '#', '♯':
			if accidental < 0 || natural {
				return Pitch{}, fmt.Errorf("parse pitch %q: mixed accidental marks: %w", s, ErrInvalidAccidental)
			}
			accidental++
		case 'b', '♭':
			if accidental > 0 || natural {
				return Pitch{}, fmt.Errorf("parse pitch %q: mixed accidental marks: %w", s, ErrInvalidAccidental)
			}
			accidental--
		case '♮':
			if accidental != 0 || natural {
				return Pitch{}, fmt.Errorf("parse pitch %q: mixed accidental marks: %w", s, ErrInvalidAccidental)
			}
			natural = true
		default:
			break marks
		}
		i++
	}

	octave := 4
	if rest := string(runes[i:]); rest != "" {
		if rest[0] != '-' && (rest[0] < '0' || rest[0] > '9') {
			return Pitch{}, fmt.Errorf("parse pitch %q: %q: %w", s, rest, ErrInvalidAccidental)
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Pitch{}, fmt.Errorf("parse pitch %q: %q: %w", s, rest, ErrInvalidOctave)
		}
		octave = n
	}
	return PitchOf(letter, Accidental(accidental), octave), nil
}

// ParseInterval parses an interval name: an optional leading "-" for
// descending, a quality, and the conventional 1-indexed number.
//
//	Major3  Perfect5  minor2  Diminished7  -Augmented1  AugmentedAugmented4
//
// Quality words are case-insensitive; "Augmented" and "Diminished" stack by
// repetition for higher degrees. The single-letter forms "p"/"P" (perfect),
// "M"/"j" (major), "m" (minor), "a"/"A" (augmented, stackable) and "d"
// (diminished, stackable) are accepted as well, and a bare number such as
// "5" denotes the perfect interval where one exists.
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return Interval{}, fmt.Errorf("parse interval: %w", ErrIncomplete)
	}
	if rest, found := strings.CutPrefix(s, "-"); found {
		if rest == "" {
			return Interval{}, fmt.Errorf("parse interval %q: %w", s, ErrIncomplete)
		}
		i, err := ParseInterval(rest)
		return i.Neg(), err
	}

	digits := len(s)
	for digits > 0 && s[digits-1] >= '0' && s[digits-1] <= '9' {
		digits--
	}
	if digits == len(s) {
		return Interval{}, fmt.Errorf("parse interval %q: missing number: %w", s, ErrIncomplete)
	}
	number, err := strconv.Atoi(s[digits:])
	if err != nil {
		return Interval{}, fmt.Errorf("parse interval %q: %q: %w", s, s[digits:], ErrInvalidSize)
	}
	if number < 1 {
		return Interval{}, fmt.Errorf("parse interval %q: number %d: %w", s, number, ErrInvalidSize)
	}

	quality, err := parseQuality(s[:digits], number)
	if err != nil {
		return Interval{}, err
	}
	i, err := IntervalOf(quality, number)
	if err != nil {
		return Interval{}, fmt.Errorf("parse interval %q: %w", s, err)
	}
	return i, nil
}

// parseQuality maps a quality token to its Quality. The number is only
// needed to resolve the empty token, which denotes perfect where the size
// allows it.
func parseQuality(token string, number int) (Quality, error) {
	if token == "" {
		_, sizeClass := divFloor(number-1, 7)
		if !perfectCapable(sizeClass) {
			return Quality{}, fmt.Errorf("bare number %d has no perfect quality: %w", number, ErrInvalidQuality)
		}
		return Perfect, nil
	}

	// Single-letter forms, case-sensitive where the case matters.
	switch token {
	case "p", "P":
		return Perfect, nil
	case "M", "j":
		return Major, nil
	case "m":
		return Minor, nil
	}
	if n := runLength(token, 'a', 'A'); n > 0 {
		return AugmentedBy(n), nil
	}
	if n := runLength(token, 'd', 'd'); n > 0 {
		return DiminishedBy(n), nil
	}

	lower := strings.ToLower(token)
	switch lower {
	case "perfect":
		return Perfect, nil
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	}
	if n := repeatCount(lower, "augmented"); n > 0 {
		return AugmentedBy(n), nil
	}
	if n := repeatCount(lower, "diminished"); n > 0 {
		return DiminishedBy(n), nil
	}
	return Quality{}, fmt.Errorf("quality %q: %w", token, ErrInvalidQuality)
}

// runLength returns len(s) if every byte of s is one of the two given
// characters, zero otherwise.
func runLength(s string, lo, up byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] != lo && s[i] != up {
			return 0
		}
	}
	return len(s)
}

// repeatCount returns n if s is exactly n >= 1 copies of unit, zero
// otherwise.
func repeatCount(s, unit string) int {
	if len(s) == 0 || len(s)%len(unit) != 0 {
		return 0
	}
	n := len(s) / len(unit)
	if strings.Repeat(unit, n) != s {
		return 0
	}
	return n
}
