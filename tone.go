package amati

import "strings"

// Letter is a natural note name. The zero value is C.
type Letter int

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

// MaxAccidental is the largest number of sharps or flats a Tone may carry.
const MaxAccidental = 2

var (
	letterNames  = [...]string{"C", "D", "E", "F", "G", "A", "B"}
	naturalPitch = [...]int{0, 2, 4, 5, 7, 9, 11}
)

// String returns the letter name.
func (l Letter) String() string { return letterNames[l.normalize()] }

// Add returns the letter n steps above l, wrapping after B.
func (l Letter) Add(n int) Letter { return Letter(mod(int(l)+n, 7)) }

// PitchClass returns the pitch class (0-11) of the natural letter.
func (l Letter) PitchClass() int { return naturalPitch[l.normalize()] }

func (l Letter) normalize() int { return mod(int(l), 7) }

// Tone is a spelled pitch class: a letter plus a signed accidental, where
// positive values are sharps and negative values are flats.
type Tone struct {
	Letter     Letter
	Accidental int
}

// PitchClass returns the tone's pitch class in [0, 12).
func (t Tone) PitchClass() int { return mod(t.Letter.PitchClass()+t.Accidental, 12) }

// String returns the tone name using # for sharps and b for flats.
func (t Tone) String() string {
	switch {
	case t.Accidental > 0:
		return t.Letter.String() + strings.Repeat("#", t.Accidental)
	case t.Accidental < 0:
		return t.Letter.String() + strings.Repeat("b", -t.Accidental)
	default:
		return t.Letter.String()
	}
}

// ToneFor spells pitchClass on letter. It reports false when the spelling
// would need more than two sharps or flats.
func ToneFor(letter Letter, pitchClass int) (Tone, bool) {
	acc := mod(pitchClass-letter.PitchClass(), 12)
	if acc > 6 {
		acc -= 12
	}
	if acc > MaxAccidental || acc < -MaxAccidental {
		return Tone{}, false
	}
	return Tone{Letter: letter, Accidental: acc}, true
}

// Semitones returns the ascending distance in semitones from one tone to
// another, in [0, 12).
func Semitones(from, to Tone) int { return mod(to.PitchClass()-from.PitchClass(), 12) }

// ToneGroup is a sealed interface over the theory objects that are a set of
// tones built on a root: Scale and Chord.
// The unexported marker method prevents external implementations.
type ToneGroup interface {
	toneGroup()
	Root() Tone
	Members() []Tone
	Label() string
}

// Scale is an ordered set of tones following a step pattern from its root.
// Steps holds the semitone size of each step, including the step from the
// last degree back to the octave, so len(Steps) == len(Tones).
type Scale struct {
	Name     string
	Tones    []Tone
	Steps    []int
	Diatonic bool // a mode of the major scale: seven degrees, fixed pattern
}

func (Scale) toneGroup() {}

// Root returns the first degree, or the zero Tone for an empty scale.
func (s Scale) Root() Tone {
	if len(s.Tones) == 0 {
		return Tone{}
	}
	return s.Tones[0]
}

// Members returns a copy of the scale's tones.
func (s Scale) Members() []Tone { return append([]Tone(nil), s.Tones...) }

// Label returns the root and name, e.g. "C Major".
func (s Scale) Label() string { return s.Root().String() + " " + s.Name }

// Chord is a named set of tones built on a root. Intervals holds the
// semitone distance of each member from the root.
type Chord struct {
	Name      string
	Symbol    string
	Tones     []Tone
	Intervals []int
}

func (Chord) toneGroup() {}

// Root returns the chord root, or the zero Tone for an empty chord.
func (c Chord) Root() Tone {
	if len(c.Tones) == 0 {
		return Tone{}
	}
	return c.Tones[0]
}

// Members returns a copy of the chord's tones.
func (c Chord) Members() []Tone { return append([]Tone(nil), c.Tones...) }

// Label returns the chord symbol on its root, e.g. "Cm7".
func (c Chord) Label() string { return c.Root().String() + c.Symbol }

// Resolver looks up theory objects by name. Implementations must be
// deterministic; every failure wraps ErrLookup.
type Resolver interface {
	ResolveTone(text string) (Tone, error)
	ResolveScale(key Tone, name string) (Scale, error)
	ResolveChord(key Tone, name string) (Chord, error)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Interface compliance checks.
var (
	_ ToneGroup = Scale{}
	_ ToneGroup = Chord{}
)
