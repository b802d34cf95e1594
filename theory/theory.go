// Package theory resolves tone, scale and chord names into amati theory
// objects, spelling each tone on the letter its degree calls for.
package theory

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/amati"
)

// Interface compliance check.
var _ amati.Resolver = (*Resolver)(nil)

// Resolver implements amati.Resolver over the built-in scale and chord
// catalogs. The zero value is ready to use.
type Resolver struct{}

// New returns a Resolver.
func New() *Resolver { return &Resolver{} }

// ResolveTone delegates to ParseTone.
func (*Resolver) ResolveTone(text string) (amati.Tone, error) { return ParseTone(text) }

// ResolveScale builds the named scale on key.
func (*Resolver) ResolveScale(key amati.Tone, name string) (amati.Scale, error) {
	def, ok := scaleIndex[normalizeName(name)]
	if !ok {
		return amati.Scale{}, fmt.Errorf("unknown scale %q: %w", name, amati.ErrLookup)
	}
	return def.build(key)
}

// ResolveChord builds the named chord on key.
func (*Resolver) ResolveChord(key amati.Tone, name string) (amati.Chord, error) {
	def, ok := chordIndex[normalizeName(name)]
	if !ok {
		return amati.Chord{}, fmt.Errorf("unknown chord %q: %w", name, amati.ErrLookup)
	}
	return def.build(key)
}

// ParseTone parses a tone name: a letter A-G in either case followed by any
// number of accidentals (#, ♯, x for sharps; lowercase b or ♭ for flats),
// netting at most two sharps or flats.
func ParseTone(text string) (amati.Tone, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return amati.Tone{}, fmt.Errorf("empty tone: %w", amati.ErrLookup)
	}
	letter, ok := letterIndex[strings.ToUpper(s[:1])]
	if !ok {
		return amati.Tone{}, fmt.Errorf("unknown tone %q: %w", text, amati.ErrLookup)
	}
	acc := 0
	for rest := s[1:]; rest != ""; {
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '#', '♯':
			acc++
		case 'x', 'X':
			acc += 2
		case 'b', '♭':
			acc--
		default:
			return amati.Tone{}, fmt.Errorf("unknown tone %q: %w", text, amati.ErrLookup)
		}
		rest = rest[size:]
	}
	if acc > amati.MaxAccidental || acc < -amati.MaxAccidental {
		return amati.Tone{}, fmt.Errorf("tone %q has too many accidentals: %w", text, amati.ErrLookup)
	}
	return amati.Tone{Letter: letter, Accidental: acc}, nil
}

// MustTone is like ParseTone but panics on error. Intended for constants and
// tests.
func MustTone(text string) amati.Tone {
	t, err := ParseTone(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ScaleNames returns the canonical scale names in catalog order.
func ScaleNames() []string {
	names := make([]string, len(scales))
	for i, s := range scales {
		names[i] = s.name
	}
	return names
}

// ChordNames returns the canonical chord names in catalog order.
func ChordNames() []string {
	names := make([]string, len(chords))
	for i, c := range chords {
		names[i] = c.name
	}
	return names
}

// ScaleAliases returns every accepted scale lookup name, sorted. Used for
// shell completion.
func ScaleAliases() []string { return sortedKeys(scaleIndex) }

// ChordAliases returns every accepted chord lookup name, sorted. Used for
// shell completion.
func ChordAliases() []string { return sortedKeys(chordIndex) }

func sortedKeys[D any](idx map[string]D) []string {
	return slices.Sorted(maps.Keys(idx))
}

var letterIndex = map[string]amati.Letter{
	"C": amati.LetterC,
	"D": amati.LetterD,
	"E": amati.LetterE,
	"F": amati.LetterF,
	"G": amati.LetterG,
	"A": amati.LetterA,
	"B": amati.LetterB,
}

// normalizeName lower-cases a catalog name and collapses runs of spaces,
// hyphens and underscores into single spaces.
func normalizeName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return strings.Join(fields, " ")
}

// spellByPitch spells a pitch class without letter context, preferring flats
// when the key is flat or F.
func spellByPitch(key amati.Tone, pitchClass int) amati.Tone {
	flats := key.Accidental < 0 || key == (amati.Tone{Letter: amati.LetterF})
	for l := amati.LetterC; l <= amati.LetterB; l++ {
		if l.PitchClass() == pitchClass {
			return amati.Tone{Letter: l}
		}
	}
	for l := amati.LetterC; l <= amati.LetterB; l++ {
		if flats && l.PitchClass() == (pitchClass+1)%12 {
			return amati.Tone{Letter: l, Accidental: -1}
		}
		if !flats && l.PitchClass() == (pitchClass+11)%12 {
			return amati.Tone{Letter: l, Accidental: 1}
		}
	}
	// Unreachable: every pitch class is a natural or one step from one.
	return amati.Tone{}
}
