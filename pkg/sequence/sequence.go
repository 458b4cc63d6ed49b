// Package sequence renders short note sequences built from harmony pitches
// to standard MIDI files.
package sequence

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/max-kay/music-types/pkg/harmony"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 480
	defaultTempo    = 120.0
	defaultVelocity = 100
)

// A Note is one step of a sequence: a pitch held for a number of
// quarter-note beats, or a rest.
type Note struct {
	Pitch harmony.Pitch
	Beats float64
	Rest  bool
}

// A Sequence is an ordered melody line with a tempo in BPM.
type Sequence struct {
	Tempo float64
	Notes []Note
}

// New creates an empty sequence at the default tempo of 120 BPM.
func New() *Sequence {
	return &Sequence{Tempo: defaultTempo}
}

// Parse reads a sequence from whitespace-separated note tokens. Each token
// is a pitch name with an optional ":beats" duration suffix, defaulting to
// one beat; "r" is a rest.
//
//	C4 E4 G4:2 r C5:0.5
func Parse(text string) (*Sequence, error) {
	s := New()
	for _, token := range strings.Fields(text) {
		name, beatsStr, hasBeats := strings.Cut(token, ":")

		beats := 1.0
		if hasBeats {
			b, err := strconv.ParseFloat(beatsStr, 64)
			if err != nil || b <= 0 {
				return nil, fmt.Errorf("note %q: bad duration %q", token, beatsStr)
			}
			beats = b
		}

		if name == "r" || name == "R" {
			s.Notes = append(s.Notes, Note{Beats: beats, Rest: true})
			continue
		}
		p, err := harmony.ParsePitch(name)
		if err != nil {
			return nil, fmt.Errorf("note %q: %w", token, err)
		}
		s.Notes = append(s.Notes, Note{Pitch: p, Beats: beats})
	}
	if len(s.Notes) == 0 {
		return nil, errors.New("empty sequence")
	}
	return s, nil
}

// Transpose returns a copy of the sequence shifted by the interval. Rests
// are unaffected.
func (s *Sequence) Transpose(i harmony.Interval) *Sequence {
	out := &Sequence{Tempo: s.Tempo, Notes: make([]Note, len(s.Notes))}
	for n, note := range s.Notes {
		out.Notes[n] = note
		if !note.Rest {
			out.Notes[n].Pitch = note.Pitch.Transpose(i)
		}
	}
	return out
}

// String renders the sequence back to its token form.
func (s *Sequence) String() string {
	tokens := make([]string, len(s.Notes))
	for n, note := range s.Notes {
		name := "r"
		if !note.Rest {
			name = note.Pitch.String()
		}
		if note.Beats != 1 {
			name += ":" + strconv.FormatFloat(note.Beats, 'g', -1, 64)
		}
		tokens[n] = name
	}
	return strings.Join(tokens, " ")
}

// SMF renders the sequence as a single-track standard MIDI file. It fails
// if any pitch falls outside the MIDI key range.
func (s *Sequence) SMF() ([]byte, error) {
	if len(s.Notes) == 0 {
		return nil, errors.New("empty sequence")
	}
	tempo := s.Tempo
	if tempo <= 0 {
		tempo = defaultTempo
	}

	out := smf.New()
	out.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track

	// Tempo meta event (FF 51 03, microseconds per beat).
	microsPerBeat := uint32(60000000.0 / tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsPerBeat >> 16),
		byte(microsPerBeat >> 8),
		byte(microsPerBeat),
	}))

	channel := uint8(0)
	var pendingRest uint32
	for _, note := range s.Notes {
		ticks := uint32(note.Beats * ticksPerQuarter)
		if note.Rest {
			pendingRest += ticks
			continue
		}
		key, ok := note.Pitch.Chromatic().MIDI()
		if !ok {
			return nil, fmt.Errorf("pitch %s is outside the MIDI range", note.Pitch)
		}
		track.Add(pendingRest, midi.NoteOn(channel, key, defaultVelocity))
		track.Add(ticks, midi.NoteOff(channel, key))
		pendingRest = 0
	}

	track.Close(0)
	if err := out.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the sequence and writes it to a .mid file.
func (s *Sequence) WriteFile(path string) error {
	data, err := s.SMF()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
