package theory

import (
	"fmt"

	"github.com/fwojciec/amati"
)

type scaleDef struct {
	name     string
	aliases  []string
	steps    []int
	diatonic bool
}

// Modes of the major scale in degree order; Mode indexes into this list.
var modes = []scaleDef{
	{name: "Major", aliases: []string{"ionian"}, diatonic: true},
	{name: "Dorian", diatonic: true},
	{name: "Phrygian", diatonic: true},
	{name: "Lydian", diatonic: true},
	{name: "Mixolydian", diatonic: true},
	{name: "Natural Minor", aliases: []string{"aeolian", "minor"}, diatonic: true},
	{name: "Locrian", diatonic: true},
}

var majorSteps = []int{2, 2, 1, 2, 2, 2, 1}

var scales = append(modeDefs(), []scaleDef{
	{name: "Harmonic Minor", steps: []int{2, 1, 2, 2, 1, 3, 1}},
	{name: "Melodic Minor", steps: []int{2, 1, 2, 2, 2, 2, 1}},
	{name: "Major Pentatonic", aliases: []string{"pentatonic"}, steps: []int{2, 2, 3, 2, 3}},
	{name: "Minor Pentatonic", steps: []int{3, 2, 2, 3, 2}},
	{name: "Blues", steps: []int{3, 2, 1, 1, 3, 2}},
	{name: "Whole Tone", steps: []int{2, 2, 2, 2, 2, 2}},
	{name: "Chromatic", steps: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
}...)

var scaleIndex = index(scales, func(d scaleDef) (string, []string) { return d.name, d.aliases })

func modeDefs() []scaleDef {
	out := make([]scaleDef, len(modes))
	for i, m := range modes {
		m.steps = rotate(majorSteps, i)
		out[i] = m
	}
	return out
}

func rotate(steps []int, n int) []int {
	out := make([]int, len(steps))
	for i := range steps {
		out[i] = steps[(i+n)%len(steps)]
	}
	return out
}

// build spells the scale on key. Seven-tone scales take one letter per
// degree and fail with ErrLookup when a degree would need more than two
// accidentals; other sizes are spelled by pitch class.
func (d scaleDef) build(key amati.Tone) (amati.Scale, error) {
	tones := make([]amati.Tone, len(d.steps))
	byLetter := len(d.steps) == 7
	pc := key.PitchClass()
	for i := range d.steps {
		switch {
		case i == 0:
			tones[i] = key
		case byLetter:
			t, ok := spellLetter(key, i, pc)
			if !ok {
				return amati.Scale{}, unspellable(key, d.name, i)
			}
			tones[i] = t
		default:
			tones[i] = spellByPitch(key, pc)
		}
		pc = (pc + d.steps[i]) % 12
	}
	return amati.Scale{
		Name:     d.name,
		Tones:    tones,
		Steps:    append([]int(nil), d.steps...),
		Diatonic: d.diatonic,
	}, nil
}

// ModeCount is the number of modes of the major scale.
const ModeCount = 7

// Mode builds the n-th mode (0-based) of the major scale on key. It fails
// with ErrLookup when the mode cannot be spelled one letter per degree.
func Mode(key amati.Tone, n int) (amati.Scale, error) {
	return scales[n%ModeCount].build(key)
}

// MajorOffset returns the semitone distance from the major-scale root to
// its n-th degree (0-based).
func MajorOffset(n int) int {
	off := 0
	for i := 0; i < n%ModeCount; i++ {
		off += majorSteps[i]
	}
	return off
}

// Spell names pitchClass on the letter offset letters above key, falling
// back to a pitch-class spelling when that letter would need more than two
// accidentals.
func Spell(key amati.Tone, offset, pitchClass int) amati.Tone {
	if t, ok := spellLetter(key, offset, pitchClass); ok {
		return t
	}
	return spellByPitch(key, mod12(pitchClass))
}

type chordDef struct {
	name      string
	symbol    string
	aliases   []string
	intervals []int
	degrees   []int // letter offset of each member from the root
}

var chords = []chordDef{
	{name: "Major", symbol: "", aliases: []string{"maj"}, intervals: []int{0, 4, 7}, degrees: []int{0, 2, 4}},
	{name: "Minor", symbol: "m", aliases: []string{"min", "m"}, intervals: []int{0, 3, 7}, degrees: []int{0, 2, 4}},
	{name: "Diminished", symbol: "dim", aliases: []string{"dim"}, intervals: []int{0, 3, 6}, degrees: []int{0, 2, 4}},
	{name: "Augmented", symbol: "aug", aliases: []string{"aug"}, intervals: []int{0, 4, 8}, degrees: []int{0, 2, 4}},
	{name: "Suspended Second", symbol: "sus2", aliases: []string{"sus2"}, intervals: []int{0, 2, 7}, degrees: []int{0, 1, 4}},
	{name: "Suspended Fourth", symbol: "sus4", aliases: []string{"sus4", "sus"}, intervals: []int{0, 5, 7}, degrees: []int{0, 3, 4}},
	{name: "Major Sixth", symbol: "6", aliases: []string{"6", "maj6"}, intervals: []int{0, 4, 7, 9}, degrees: []int{0, 2, 4, 5}},
	{name: "Minor Sixth", symbol: "m6", aliases: []string{"m6", "min6"}, intervals: []int{0, 3, 7, 9}, degrees: []int{0, 2, 4, 5}},
	{name: "Major Seventh", symbol: "maj7", aliases: []string{"maj7"}, intervals: []int{0, 4, 7, 11}, degrees: []int{0, 2, 4, 6}},
	{name: "Dominant Seventh", symbol: "7", aliases: []string{"7", "dom7"}, intervals: []int{0, 4, 7, 10}, degrees: []int{0, 2, 4, 6}},
	{name: "Minor Seventh", symbol: "m7", aliases: []string{"m7", "min7"}, intervals: []int{0, 3, 7, 10}, degrees: []int{0, 2, 4, 6}},
	{name: "Half Diminished Seventh", symbol: "m7b5", aliases: []string{"m7b5", "half diminished"}, intervals: []int{0, 3, 6, 10}, degrees: []int{0, 2, 4, 6}},
	{name: "Diminished Seventh", symbol: "dim7", aliases: []string{"dim7"}, intervals: []int{0, 3, 6, 9}, degrees: []int{0, 2, 4, 6}},
}

var chordIndex = index(chords, func(d chordDef) (string, []string) { return d.name, d.aliases })

// build spells every chord member on the letter its degree calls for.
func (d chordDef) build(key amati.Tone) (amati.Chord, error) {
	tones := make([]amati.Tone, len(d.intervals))
	for i, iv := range d.intervals {
		if i == 0 {
			tones[i] = key
			continue
		}
		t, ok := spellLetter(key, d.degrees[i], key.PitchClass()+iv)
		if !ok {
			return amati.Chord{}, unspellable(key, d.name, d.degrees[i])
		}
		tones[i] = t
	}
	return amati.Chord{
		Name:      d.name,
		Symbol:    d.symbol,
		Tones:     tones,
		Intervals: append([]int(nil), d.intervals...),
	}, nil
}

// spellLetter names pitchClass on the letter offset letters above key. It
// reports false when that letter needs more than two accidentals.
func spellLetter(key amati.Tone, offset, pitchClass int) (amati.Tone, bool) {
	return amati.ToneFor(key.Letter.Add(offset), mod12(pitchClass))
}

func unspellable(key amati.Tone, name string, offset int) error {
	return fmt.Errorf("%s %s: degree %d needs more than %d accidentals on %s: %w",
		key, name, offset+1, amati.MaxAccidental, key.Letter.Add(offset), amati.ErrLookup)
}

func mod12(n int) int { return ((n % 12) + 12) % 12 }

func index[D any](defs []D, names func(D) (string, []string)) map[string]D {
	idx := make(map[string]D)
	for _, d := range defs {
		name, aliases := names(d)
		idx[normalizeName(name)] = d
		for _, a := range aliases {
			idx[normalizeName(a)] = d
		}
	}
	return idx
}
