package amati_test

import (
	"testing"

	"github.com/fwojciec/amati"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "C", amati.LetterC.String())
	assert.Equal(t, amati.LetterC, amati.LetterB.Add(1))
	assert.Equal(t, amati.LetterA, amati.LetterC.Add(-2))
	assert.Equal(t, 11, amati.LetterB.PitchClass())
}

func TestTone_PitchClassAndString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		tone  amati.Tone
		name  string
		pitch int
	}{
		{amati.Tone{Letter: amati.LetterC}, "C", 0},
		{amati.Tone{Letter: amati.LetterF, Accidental: 1}, "F#", 6},
		{amati.Tone{Letter: amati.LetterB, Accidental: -1}, "Bb", 10},
		{amati.Tone{Letter: amati.LetterC, Accidental: -1}, "Cb", 11},
		{amati.Tone{Letter: amati.LetterB, Accidental: 1}, "B#", 0},
		{amati.Tone{Letter: amati.LetterF, Accidental: 2}, "F##", 7},
		{amati.Tone{Letter: amati.LetterD, Accidental: -2}, "Dbb", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.tone.String())
		assert.Equal(t, tc.pitch, tc.tone.PitchClass(), tc.name)
	}
}

func TestToneFor(t *testing.T) {
	t.Parallel()

	got, ok := amati.ToneFor(amati.LetterE, 3)
	require.True(t, ok)
	assert.Equal(t, "Eb", got.String())

	got, ok = amati.ToneFor(amati.LetterB, 0)
	require.True(t, ok)
	assert.Equal(t, "B#", got.String())

	_, ok = amati.ToneFor(amati.LetterC, 6)
	assert.False(t, ok, "C cannot carry F# within two accidentals")
}

func TestSemitones(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, amati.Semitones(toneC, toneG))
	assert.Equal(t, 5, amati.Semitones(toneG, toneC))
	assert.Equal(t, 0, amati.Semitones(toneC, toneC))
}

func TestToneGroup(t *testing.T) {
	t.Parallel()

	t.Run("scale", func(t *testing.T) {
		t.Parallel()
		s := cMajor()
		assert.Equal(t, "C Major", s.Label())
		assert.Equal(t, toneC, s.Root())
		members := s.Members()
		members[0] = toneG
		assert.Equal(t, toneC, s.Tones[0], "members is a copy")
	})

	t.Run("chord", func(t *testing.T) {
		t.Parallel()
		c := cMaj7()
		assert.Equal(t, "Cmaj7", c.Label())
		assert.Len(t, c.Members(), 4)
	})

	t.Run("empty groups have zero root", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, amati.Tone{}, amati.Scale{}.Root())
		assert.Equal(t, amati.Tone{}, amati.Chord{}.Root())
	})
}
