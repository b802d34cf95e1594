package analytic

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/amati"
)

// Guitar maps the tones of a scale or chord onto a fretboard.
type Guitar struct {
	tuning []amati.Tone
	frets  int
}

// NewGuitar creates a Guitar analytic for tuning (highest string first)
// showing frets 0 through frets. A nil tuning means standard tuning and a
// non-positive frets means DefaultFrets.
func NewGuitar(tuning []amati.Tone, frets int) *Guitar {
	if len(tuning) == 0 {
		tuning = StandardTuning()
	}
	if frets <= 0 {
		frets = DefaultFrets
	}
	return &Guitar{tuning: append([]amati.Tone(nil), tuning...), frets: frets}
}

// Name returns NameGuitar.
func (*Guitar) Name() string { return NameGuitar }

// Capability returns amati.CapabilityNone.
func (*Guitar) Capability() amati.Capability { return amati.CapabilityNone }

// CreateView renders one row per string; each fret cell holds the group tone
// sounding there, or is empty.
func (g *Guitar) CreateView(q amati.Query) (amati.TabularModel, error) {
	group, ok := q.ToneGroup()
	if !ok {
		return amati.TabularModel{}, fmt.Errorf("missing %s criterion: %w", amati.CriterionToneGroup, amati.ErrUnsupportedAnalytic)
	}
	byPitch := make(map[int]amati.Tone)
	for _, t := range group.Members() {
		if _, seen := byPitch[t.PitchClass()]; !seen {
			byPitch[t.PitchClass()] = t
		}
	}

	columns := make([]string, 0, g.frets+2)
	columns = append(columns, "String")
	for fret := 0; fret <= g.frets; fret++ {
		columns = append(columns, strconv.Itoa(fret))
	}

	rows := make([][]string, len(g.tuning))
	for i, open := range g.tuning {
		row := make([]string, 0, len(columns))
		row = append(row, fmt.Sprintf("%d (%s)", i+1, open))
		for fret := 0; fret <= g.frets; fret++ {
			cell := ""
			if t, ok := byPitch[(open.PitchClass()+fret)%12]; ok {
				cell = t.String()
			}
			row = append(row, cell)
		}
		rows[i] = row
	}
	return amati.NewTabularModel("Guitar Fretboard: "+group.Label(), columns, rows)
}
