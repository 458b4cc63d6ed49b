package harmony

import (
	"errors"
	"testing"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input     string
		diatonic  int
		chromatic int
	}{
		{"Perfect1", 0, 0},
		{"Minor2", 1, 1},
		{"Major2", 1, 2},
		{"Minor3", 2, 3},
		{"Major3", 2, 4},
		{"Perfect4", 3, 5},
		{"Augmented4", 3, 6},
		{"Diminished5", 4, 6},
		{"Perfect5", 4, 7},
		{"Minor6", 5, 8},
		{"Major6", 5, 9},
		{"Minor7", 6, 10},
		{"Major7", 6, 11},
		{"Perfect8", 7, 12},
		{"Diminished7", 6, 9},
		{"Augmented1", 0, 1},
		{"Diminished1", 0, -1},

		// case-insensitive long words, stacked degrees
		{"minor2", 1, 1},
		{"AugmentedAugmented4", 3, 7},
		{"DiminishedDiminished3", 2, 1},

		// direction and compound sizes
		{"-Major3", -2, -4},
		{"-Perfect15", -14, -24},
		{"Augmented11", 10, 18},
		{"Minor13", 12, 20},

		// short forms
		{"1", 0, 0},
		{"m3", 2, 3},
		{"M3", 2, 4},
		{"j3", 2, 4},
		{"p5", 4, 7},
		{"5", 4, 7},
		{"a4", 3, 6},
		{"d5", 4, 6},
		{"aa3", 2, 6},
		{"dd3", 2, 1},
		{"-j2", -1, -2},
		{"8", 7, 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			i, err := ParseInterval(tt.input)
			if err != nil {
				t.Fatalf("ParseInterval(%q) failed: %v", tt.input, err)
			}
			want := StepPair{tt.diatonic, tt.chromatic}
			if i.Steps() != want {
				t.Errorf("ParseInterval(%q) = %+v, want %+v", tt.input, i.Steps(), want)
			}
		})
	}
}

func TestParseIntervalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrIncomplete},
		{"-", ErrIncomplete},
		{"Major", ErrIncomplete},
		{"major5", ErrInvalidQuality},
		{"Perfect3", ErrInvalidQuality},
		{"m1", ErrInvalidQuality},
		{"m15", ErrInvalidQuality},
		{"3", ErrInvalidQuality},
		{"x3", ErrInvalidQuality},
		{"Major0", ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseInterval(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseInterval(%q) = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestIntervalOf(t *testing.T) {
	tests := []struct {
		quality Quality
		number  int
		want    StepPair
	}{
		{Perfect, 1, StepPair{0, 0}},
		{Major, 3, StepPair{2, 4}},
		{Minor, 10, StepPair{9, 15}},
		{Augmented, 5, StepPair{4, 8}},
		{Diminished, 4, StepPair{3, 4}},
		{Diminished, 3, StepPair{2, 2}},
		{AugmentedBy(3), 1, StepPair{0, 3}},
		{DiminishedBy(2), 5, StepPair{4, 5}},
		{Major, -3, StepPair{-2, -4}},
	}

	for _, tt := range tests {
		i, err := IntervalOf(tt.quality, tt.number)
		if err != nil {
			t.Fatalf("IntervalOf(%v, %d) failed: %v", tt.quality, tt.number, err)
		}
		if i.Steps() != tt.want {
			t.Errorf("IntervalOf(%v, %d) = %+v, want %+v", tt.quality, tt.number, i.Steps(), tt.want)
		}
	}
}

func TestIntervalOfImpossible(t *testing.T) {
	tests := []struct {
		quality Quality
		number  int
		want    error
	}{
		{Major, 5, ErrInvalidQuality},
		{Minor, 1, ErrInvalidQuality},
		{Perfect, 3, ErrInvalidQuality},
		{Perfect, 0, ErrInvalidSize},
	}

	for _, tt := range tests {
		if _, err := IntervalOf(tt.quality, tt.number); !errors.Is(err, tt.want) {
			t.Errorf("IntervalOf(%v, %d) = %v, want %v", tt.quality, tt.number, err, tt.want)
		}
	}
}

func TestIntervalQuality(t *testing.T) {
	tests := []struct {
		input string
		want  Quality
	}{
		{"Perfect5", Perfect},
		{"Major3", Major},
		{"Minor6", Minor},
		{"Augmented4", Augmented},
		{"Diminished5", Diminished},
		{"Diminished7", Diminished},
		{"AugmentedAugmented2", AugmentedBy(2)},
		{"-Major3", Major},
		{"-Diminished5", Diminished},
		{"Minor13", Minor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			i := mustInterval(t, tt.input)
			if got := i.Quality(); got != tt.want {
				t.Errorf("Quality() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Perfect-capable size classes must never resolve to major or minor and the
// others must never resolve to perfect, for any chromatic value at all.
func TestQualityAsymmetry(t *testing.T) {
	for diatonic := -16; diatonic <= 16; diatonic++ {
		for chromatic := -30; chromatic <= 30; chromatic++ {
			i := NewInterval(StepPair{diatonic, chromatic})
			q := i.Quality()
			if perfectCapable(i.SizeClass()) {
				if q == Major || q == Minor {
					t.Fatalf("interval %+v resolved to %v on a perfect-capable size", i.Steps(), q)
				}
			} else if q == Perfect {
				t.Fatalf("interval %+v resolved to Perfect on a major/minor size", i.Steps())
			}
			if d := q.AugmentedDegree() + q.DiminishedDegree(); d < 0 || (q != Perfect && q != Major && q != Minor && d < 1) {
				t.Fatalf("interval %+v resolved to degree %d", i.Steps(), d)
			}
		}
	}
}

func TestIntervalAdd(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1", "j3", "j3"},
		{"1", "5", "5"},
		{"j3", "m3", "5"},
		{"m3", "m3", "d5"},
		{"j3", "j3", "a5"},
		{"j2", "j3", "a4"},
		{"8", "j2", "j9"},
		{"5", "5", "j9"},
		{"5", "-5", "1"},
		{"5", "-m3", "j3"},
		{"j9", "-m3", "j7"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			got := mustInterval(t, tt.a).Add(mustInterval(t, tt.b))
			if want := mustInterval(t, tt.want); got != want {
				t.Errorf("%s + %s = %+v, want %s", tt.a, tt.b, got.Steps(), tt.want)
			}
		})
	}
}

func TestIntervalRoundTrip(t *testing.T) {
	inputs := []string{
		"Major3", "Perfect5", "Diminished7", "Augmented1", "Minor2",
		"-Major3", "AugmentedAugmented4", "DiminishedDiminished3",
		"Perfect15", "Minor13", "Diminished1",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			i := mustInterval(t, in)
			if got := i.String(); got != in {
				t.Errorf("String() = %q, want %q", got, in)
			}
			back, err := ParseInterval(i.String())
			if err != nil {
				t.Fatalf("reparse failed: %v", err)
			}
			if back != i {
				t.Errorf("reparse = %+v, want %+v", back.Steps(), i.Steps())
			}
		})
	}
}

func TestIntervalNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"Perfect5", 5},
		{"Minor13", 13},
		{"-Major3", -3},
	}

	for _, tt := range tests {
		if got := mustInterval(t, tt.input).Number(); got != tt.want {
			t.Errorf("Number(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIntervalSimple(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Minor13", "Minor6"},
		{"-Minor3", "Major6"},
		{"Perfect5", "Perfect5"},
		{"Perfect15", "Perfect1"},
	}

	for _, tt := range tests {
		got := mustInterval(t, tt.input).Simple()
		if want := mustInterval(t, tt.want); got != want {
			t.Errorf("Simple(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		pitch, interval, want string
	}{
		{"C4", "Major3", "E4"},
		{"C4", "Minor3", "Eb4"},
		{"C4", "Major13", "A5"},
		{"C4", "Minor13", "Ab5"},
		{"Bb4", "Minor3", "Db5"},
		{"Bb4", "Major3", "D5"},
		{"Bb4", "-Major3", "Gb4"},
	}

	for _, tt := range tests {
		t.Run(tt.pitch+"+"+tt.interval, func(t *testing.T) {
			got := mustPitch(t, tt.pitch).Transpose(mustInterval(t, tt.interval))
			if want := mustPitch(t, tt.want); got != want {
				t.Errorf("%s + %s = %s, want %s", tt.pitch, tt.interval, got, tt.want)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"C4", "E4", "Major3"},
		{"C4", "G4", "Perfect5"},
		{"G4", "C4", "-Perfect5"},
		{"C4", "C5", "Perfect8"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got := Between(mustPitch(t, tt.from), mustPitch(t, tt.to))
			if want := mustInterval(t, tt.want); got != want {
				t.Errorf("Between(%s, %s) = %s, want %s", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// Between(p, p.Transpose(i)) must recover i exactly for every pitch and
// interval pair.
func TestTransposeBetweenIdentity(t *testing.T) {
	pitches := []string{"C4", "F#3", "Bbb5", "G-1", "E#7"}
	intervals := []string{"Perfect1", "Minor2", "Major3", "Perfect5", "Diminished7", "-Minor13", "AugmentedAugmented4"}

	for _, ps := range pitches {
		for _, is := range intervals {
			p := mustPitch(t, ps)
			i := mustInterval(t, is)
			if got := Between(p, p.Transpose(i)); got != i {
				t.Errorf("Between(%s, %s + %s) = %s, want %s", ps, ps, is, got, is)
			}
		}
	}
}

func mustInterval(t *testing.T, s string) Interval {
	t.Helper()
	i, err := ParseInterval(s)
	if err != nil {
		t.Fatalf("ParseInterval(%q) failed: %v", s, err)
	}
	return i
}
