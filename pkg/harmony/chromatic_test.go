package harmony

import (
	"math"
	"testing"
)

func TestChromaticMIDI(t *testing.T) {
	tests := []struct {
		pitch ChromaticPitch
		key   uint8
		ok    bool
	}{
		{0, 60, true},   // middle C
		{9, 69, true},   // A4
		{-60, 0, true},  // bottom of range
		{67, 127, true}, // top of range
		{-61, 0, false},
		{68, 0, false},
	}

	for _, tt := range tests {
		key, ok := tt.pitch.MIDI()
		if key != tt.key || ok != tt.ok {
			t.Errorf("MIDI(%d) = %d, %v, want %d, %v", tt.pitch, key, ok, tt.key, tt.ok)
		}
	}

	if got := FromMIDI(69); got != 9 {
		t.Errorf("FromMIDI(69) = %d, want 9", got)
	}
	if got := FromMIDI(60); got != 0 {
		t.Errorf("FromMIDI(60) = %d, want 0", got)
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		pitch string
		want  float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"A3", 220},
		{"C4", 261.6256},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			got := mustPitch(t, tt.pitch).Frequency()
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("Frequency(%s) = %f, want %f", tt.pitch, got, tt.want)
			}
		})
	}

	if got := mustPitch(t, "A4").Chromatic().FrequencyTuned(442); got != 442 {
		t.Errorf("FrequencyTuned(442) = %f, want 442", got)
	}
}

func TestChromaticSpelling(t *testing.T) {
	tests := []struct {
		pitch ChromaticPitch
		want  string
	}{
		{0, "C4"},
		{1, "C#4"},
		{2, "D4"},
		{3, "Eb4"},
		{4, "E4"},
		{6, "F#4"},
		{8, "Ab4"},
		{10, "Bb4"},
		{-1, "B3"},
		{12, "C5"},
		{-13, "B2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pitch.Pitch().String(); got != tt.want {
				t.Errorf("Pitch(%d) = %s, want %s", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestChromaticPitchNamed(t *testing.T) {
	tests := []struct {
		pitch  ChromaticPitch
		letter Letter
		want   string
	}{
		{0, C, "C4"},
		{0, D, "Dbb4"},
		{1, D, "Db4"},
		{-1, C, "Cb4"},
		{-1, B, "B3"},
		{11, C, "Cb5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pitch.PitchNamed(tt.letter).String(); got != tt.want {
				t.Errorf("PitchNamed(%d, %v) = %s, want %s", tt.pitch, tt.letter, got, tt.want)
			}
		})
	}
}

func TestChromaticReduction(t *testing.T) {
	if got := ChromaticPitch(-13).Class(); got != 11 {
		t.Errorf("Class(-13) = %d, want 11", got)
	}
	if got := ChromaticInterval(25).Simple(); got != 1 {
		t.Errorf("Simple(25) = %d, want 1", got)
	}
	if got := ChromaticBetween(0, 7); got != 7 {
		t.Errorf("ChromaticBetween(0, 7) = %d, want 7", got)
	}
	if got := ChromaticPitch(0).Add(-5); got != -5 {
		t.Errorf("Add(-5) = %d, want -5", got)
	}
}
