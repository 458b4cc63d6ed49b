// Package main is the entry point for the musictypes CLI
package main

import (
	"fmt"
	"os"

	"github.com/max-kay/music-types/pkg/api"
	"github.com/max-kay/music-types/pkg/harmony"
	"github.com/max-kay/music-types/pkg/sequence"
	"github.com/max-kay/music-types/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile  string
	tempo       float64
	transposeBy string
	tuning      float64
	serverPort  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musictypes",
	Short: "Pitch and interval arithmetic from Western music theory",
	Long: `musictypes works with exactly spelled pitches and intervals:
a pitch is a letter, any number of sharps or flats, and an octave; an
interval is a quality (perfect, major, minor, augmented, diminished)
and a number.

Examples:
  musictypes parse C4 F#3 Bbb5
  musictypes transpose C4 Major3
  musictypes distance C4 G4
  musictypes freq A4 --tuning 442
  musictypes midi "C4 E4 G4:2" -o arpeggio.mid
  musictypes tui
  musictypes serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var parseCmd = &cobra.Command{
	Use:   "parse <name>...",
	Short: "Parse pitch or interval names and show their representation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <interval>...",
	Short: "Apply one or more intervals to a pitch",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTranspose,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <from> <to>",
	Short: "Show the interval between two pitches",
	Args:  cobra.ExactArgs(2),
	RunE:  runDistance,
}

var freqCmd = &cobra.Command{
	Use:   "freq <pitch>...",
	Short: "Show the frequency of pitches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFreq,
}

var midiCmd = &cobra.Command{
	Use:   "midi <notes>",
	Short: "Render a note sequence to a standard MIDI file",
	Long: `Renders whitespace-separated notes to a .mid file. Each note is a
pitch name with an optional ":beats" duration, "r" is a rest:

  musictypes midi "C4 E4 G4:2 r C5" -o line.mid --transpose Minor3`,
	Args: cobra.ExactArgs(1),
	RunE: runMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Starting API server on port %d...\n", serverPort)
		return api.StartServer(serverPort)
	},
}

func init() {
	freqCmd.Flags().Float64Var(&tuning, "tuning", 440, "Frequency of A4 in Hz")

	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path (required)")
	midiCmd.Flags().Float64Var(&tempo, "tempo", 120, "Tempo in BPM")
	midiCmd.Flags().StringVar(&transposeBy, "transpose", "", "Interval to transpose the sequence by")
	_ = midiCmd.MarkFlagRequired("output")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if p, err := harmony.ParsePitch(arg); err == nil {
			printPitch(p)
			continue
		}
		i, err := harmony.ParseInterval(arg)
		if err != nil {
			return fmt.Errorf("%q is neither a pitch nor an interval: %w", arg, err)
		}
		printInterval(i)
	}
	return nil
}

func runTranspose(cmd *cobra.Command, args []string) error {
	p, err := harmony.ParsePitch(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		i, err := harmony.ParseInterval(arg)
		if err != nil {
			return err
		}
		p = p.Transpose(i)
	}
	fmt.Println(p)
	return nil
}

func runDistance(cmd *cobra.Command, args []string) error {
	from, err := harmony.ParsePitch(args[0])
	if err != nil {
		return err
	}
	to, err := harmony.ParsePitch(args[1])
	if err != nil {
		return err
	}
	printInterval(harmony.Between(from, to))
	return nil
}

func runFreq(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		p, err := harmony.ParsePitch(arg)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %10.4f Hz\n", p, p.Chromatic().FrequencyTuned(tuning))
	}
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	s, err := sequence.Parse(args[0])
	if err != nil {
		return err
	}
	s.Tempo = tempo
	if transposeBy != "" {
		i, err := harmony.ParseInterval(transposeBy)
		if err != nil {
			return err
		}
		s = s.Transpose(i)
	}
	if err := s.WriteFile(outputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d notes to %s\n", len(s.Notes), outputFile)
	return nil
}

func printPitch(p harmony.Pitch) {
	steps := p.Steps()
	fmt.Printf("%-8s pitch    diatonic %d, chromatic %d, %.2f Hz", p, steps.Diatonic, steps.Chromatic, p.Frequency())
	if key, ok := p.Chromatic().MIDI(); ok {
		fmt.Printf(", midi %d", key)
	}
	fmt.Println()
}

func printInterval(i harmony.Interval) {
	steps := i.Steps()
	fmt.Printf("%-8s interval diatonic %d, chromatic %d, quality %s, number %d\n",
		i, steps.Diatonic, steps.Chromatic, i.Quality(), i.Number())
}
