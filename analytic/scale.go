package analytic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/amati"
)

// RomanNumeral labels the triad and seventh chord built on each degree of a
// diatonic scale.
type RomanNumeral struct{}

// Name returns NameRomanNumeral.
func (RomanNumeral) Name() string { return NameRomanNumeral }

// Capability returns amati.CapabilityDiatonic.
func (RomanNumeral) Capability() amati.Capability { return amati.CapabilityDiatonic }

// CreateView renders one row per scale degree.
func (RomanNumeral) CreateView(q amati.Query) (amati.TabularModel, error) {
	s, err := scaleCriterion(q)
	if err != nil {
		return amati.TabularModel{}, err
	}
	chords := harmonize(s)
	rows := make([][]string, len(chords))
	for i, c := range chords {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			c.root.String(),
			joinTones([]amati.Tone{c.root, c.third, c.fifth}),
			c.quality.String(),
			c.numeral,
			c.seventhNumeral,
		}
	}
	return amati.NewTabularModel(
		"Roman Numeral Analysis: "+s.Label(),
		[]string{"Degree", "Root", "Triad", "Quality", "Numeral", "Seventh"},
		rows,
	)
}

// Interval names the distance from the root to each degree of a diatonic
// scale.
type Interval struct{}

// Name returns NameInterval.
func (Interval) Name() string { return NameInterval }

// Capability returns amati.CapabilityDiatonic.
func (Interval) Capability() amati.Capability { return amati.CapabilityDiatonic }

// CreateView renders one row per scale degree.
func (Interval) CreateView(q amati.Query) (amati.TabularModel, error) {
	s, err := scaleCriterion(q)
	if err != nil {
		return amati.TabularModel{}, err
	}
	root := s.Root()
	rows := make([][]string, len(s.Tones))
	for i, t := range s.Tones {
		iv := intervalBetween(root, t)
		rows[i] = []string{
			strconv.Itoa(i + 1),
			t.String(),
			strconv.Itoa(iv.semitones),
			iv.String(),
			iv.Short(),
		}
	}
	return amati.NewTabularModel(
		"Interval Analysis: "+s.Label(),
		[]string{"Degree", "Tone", "Semitones", "Interval", "Short"},
		rows,
	)
}

// StepPattern lists the steps between consecutive degrees of any scale,
// ending with the step back to the octave.
type StepPattern struct{}

// Name returns NameStepPattern.
func (StepPattern) Name() string { return NameStepPattern }

// Capability returns amati.CapabilityNone.
func (StepPattern) Capability() amati.Capability { return amati.CapabilityNone }

// CreateView renders one row per step.
func (StepPattern) CreateView(q amati.Query) (amati.TabularModel, error) {
	s, err := scaleCriterion(q)
	if err != nil {
		return amati.TabularModel{}, err
	}
	n := len(s.Tones)
	if len(s.Steps) != n {
		return amati.TabularModel{}, fmt.Errorf("scale %s has %d tones but %d steps: %w",
			s.Label(), n, len(s.Steps), amati.ErrValidation)
	}
	rows := make([][]string, n)
	for i, step := range s.Steps {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.Tones[i].String(),
			s.Tones[(i+1)%n].String(),
			strconv.Itoa(step),
			stepSize(step),
		}
	}
	return amati.NewTabularModel(
		"Step Pattern Analysis: "+s.Label(),
		[]string{"Step", "From", "To", "Semitones", "Size"},
		rows,
	)
}

// Reharmonization lists, for each degree of a diatonic scale, the diatonic
// chords that contain it as root, third, fifth or seventh.
type Reharmonization struct{}

// Name returns NameReharmonization.
func (Reharmonization) Name() string { return NameReharmonization }

// Capability returns amati.CapabilityDiatonic.
func (Reharmonization) Capability() amati.Capability { return amati.CapabilityDiatonic }

// CreateView renders one row per scale degree.
func (Reharmonization) CreateView(q amati.Query) (amati.TabularModel, error) {
	s, err := scaleCriterion(q)
	if err != nil {
		return amati.TabularModel{}, err
	}
	chords := harmonize(s)
	n := len(chords)
	rows := make([][]string, n)
	for i := range chords {
		// The chord with degree i as its third is rooted two degrees below,
		// as its fifth four below, as its seventh six below.
		rows[i] = []string{
			strconv.Itoa(i + 1),
			chords[i].root.String(),
			chords[i].numeral,
			chords[(i+n-2)%n].numeral,
			chords[(i+n-4)%n].numeral,
			chords[(i+n-6)%n].seventhNumeral,
		}
	}
	return amati.NewTabularModel(
		"Reharmonization Options: "+s.Label(),
		[]string{"Degree", "Tone", "Root Of", "Third Of", "Fifth Of", "Seventh Of"},
		rows,
	)
}

type quality int

const (
	qualityOther quality = iota
	qualityMajor
	qualityMinor
	qualityDiminished
	qualityAugmented
)

func (q quality) String() string {
	switch q {
	case qualityMajor:
		return "Major"
	case qualityMinor:
		return "Minor"
	case qualityDiminished:
		return "Diminished"
	case qualityAugmented:
		return "Augmented"
	default:
		return "Other"
	}
}

// stackedChord is the tertian chord built on one scale degree.
type stackedChord struct {
	root, third, fifth, seventh amati.Tone
	quality                     quality
	numeral                     string
	seventhNumeral              string
}

var numerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// harmonize stacks thirds on each degree of a seven-tone scale.
func harmonize(s amati.Scale) []stackedChord {
	n := len(s.Tones)
	out := make([]stackedChord, n)
	for i := range s.Tones {
		c := stackedChord{
			root:    s.Tones[i],
			third:   s.Tones[(i+2)%n],
			fifth:   s.Tones[(i+4)%n],
			seventh: s.Tones[(i+6)%n],
		}
		c.quality = triadQuality(amati.Semitones(c.root, c.third), amati.Semitones(c.root, c.fifth))
		c.numeral, c.seventhNumeral = romanNumerals(i, c.quality, amati.Semitones(c.root, c.seventh))
		out[i] = c
	}
	return out
}

func triadQuality(third, fifth int) quality {
	switch {
	case third == 4 && fifth == 7:
		return qualityMajor
	case third == 3 && fifth == 7:
		return qualityMinor
	case third == 3 && fifth == 6:
		return qualityDiminished
	case third == 4 && fifth == 8:
		return qualityAugmented
	default:
		return qualityOther
	}
}

func romanNumerals(degree int, q quality, seventh int) (triad, sev string) {
	base := numerals[degree%len(numerals)]
	switch q {
	case qualityMinor:
		base = strings.ToLower(base)
		triad = base
	case qualityDiminished:
		base = strings.ToLower(base)
		triad = base + "°"
	case qualityAugmented:
		triad = base + "+"
	default:
		triad = base
	}
	switch {
	case q == qualityDiminished && seventh == 10:
		sev = base + "ø7"
	case q == qualityDiminished && seventh == 9:
		sev = base + "°7"
	case q == qualityAugmented && seventh == 11:
		sev = base + "+M7"
	case seventh == 11:
		sev = base + "M7"
	default:
		sev = base + "7"
	}
	return triad, sev
}
