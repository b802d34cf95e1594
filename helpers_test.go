package amati_test

import (
	"fmt"
	"strings"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/mock"
)

func ptr(s string) *string { return &s }

var (
	toneC = amati.Tone{Letter: amati.LetterC}
	toneG = amati.Tone{Letter: amati.LetterG}
)

func cMajor() amati.Scale {
	return amati.Scale{
		Name: "Major",
		Tones: []amati.Tone{
			{Letter: amati.LetterC}, {Letter: amati.LetterD}, {Letter: amati.LetterE},
			{Letter: amati.LetterF}, {Letter: amati.LetterG}, {Letter: amati.LetterA},
			{Letter: amati.LetterB},
		},
		Steps:    []int{2, 2, 1, 2, 2, 2, 1},
		Diatonic: true,
	}
}

func cBlues() amati.Scale {
	return amati.Scale{
		Name: "Blues",
		Tones: []amati.Tone{
			{Letter: amati.LetterC}, {Letter: amati.LetterE, Accidental: -1}, {Letter: amati.LetterF},
			{Letter: amati.LetterG, Accidental: -1}, {Letter: amati.LetterG}, {Letter: amati.LetterB, Accidental: -1},
		},
		Steps: []int{3, 2, 1, 1, 3, 2},
	}
}

func cMaj7() amati.Chord {
	return amati.Chord{
		Name:      "Major Seventh",
		Symbol:    "maj7",
		Tones:     []amati.Tone{{Letter: amati.LetterC}, {Letter: amati.LetterE}, {Letter: amati.LetterG}, {Letter: amati.LetterB}},
		Intervals: []int{0, 4, 7, 11},
	}
}

// fakeResolver resolves C and G, the scales "major" and "blues" and the
// chord "maj7" on any key; all else fails with ErrLookup.
func fakeResolver() *mock.Resolver {
	return &mock.Resolver{
		ResolveToneFn: func(name string) (amati.Tone, error) {
			switch strings.ToUpper(name) {
			case "C":
				return toneC, nil
			case "G":
				return toneG, nil
			}
			return amati.Tone{}, fmt.Errorf("unknown tone %q: %w", name, amati.ErrLookup)
		},
		ResolveScaleFn: func(key amati.Tone, name string) (amati.Scale, error) {
			switch strings.ToLower(name) {
			case "major":
				return cMajor(), nil
			case "blues":
				return cBlues(), nil
			}
			return amati.Scale{}, fmt.Errorf("unknown scale %q: %w", name, amati.ErrLookup)
		},
		ResolveChordFn: func(key amati.Tone, name string) (amati.Chord, error) {
			if strings.ToLower(name) == "maj7" {
				return cMaj7(), nil
			}
			return amati.Chord{}, fmt.Errorf("unknown chord %q: %w", name, amati.ErrLookup)
		},
	}
}
