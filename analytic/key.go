package analytic

import (
	"fmt"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/theory"
)

// ParallelMode lists every mode of the major scale built on the query's key,
// with the major key each mode is borrowed from.
type ParallelMode struct{}

// Name returns NameParallelMode.
func (ParallelMode) Name() string { return NameParallelMode }

// Capability returns amati.CapabilityNone.
func (ParallelMode) Capability() amati.Capability { return amati.CapabilityNone }

// CreateView renders one row per mode.
func (ParallelMode) CreateView(q amati.Query) (amati.TabularModel, error) {
	key, ok := q.Key()
	if !ok {
		return amati.TabularModel{}, fmt.Errorf("missing %s criterion: %w", amati.CriterionKey, amati.ErrUnsupportedAnalytic)
	}
	rows := make([][]string, theory.ModeCount)
	for n := 0; n < theory.ModeCount; n++ {
		mode, err := theory.Mode(key, n)
		if err != nil {
			return amati.TabularModel{}, err
		}
		parent := theory.Spell(key, -n, key.PitchClass()-theory.MajorOffset(n))
		rows[n] = []string{
			mode.Name,
			joinTones(mode.Tones),
			stepPattern(mode.Steps),
			parent.String(),
		}
	}
	return amati.NewTabularModel(
		"Parallel Modes: "+key.String(),
		[]string{"Mode", "Tones", "Step Pattern", "Parent Major"},
		rows,
	)
}
