// Package analytic implements the music-theory analytics that turn an
// amati.Query into an amati.TabularModel, and the dispatch table that binds
// them to request kinds.
package analytic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/theory"
)

// Analytic names, as reported in results and logs.
const (
	NameParallelMode    = "ParallelModeAnalytic"
	NameRomanNumeral    = "RomanNumeralAnalytic"
	NameInterval        = "IntervalAnalytic"
	NameStepPattern     = "StepPatternAnalytic"
	NameReharmonization = "ReharmonizationOptionsAnalytic"
	NameGuitar          = "GuitarAnalytic"
)

// View names select SCALE analytics through Config.Views.
const (
	ViewRoman           = "roman"
	ViewInterval        = "interval"
	ViewScalar          = "scalar"
	ViewReharmonization = "reharmonization"
)

// Config selects optional analytics and their parameters.
type Config struct {
	Reharmonization bool         // add ReharmonizationOptionsAnalytic to SCALE requests
	Views           []string     // SCALE analytics to run, by view name; nil = defaults
	Tuning          []amati.Tone // guitar strings, highest first; nil = standard tuning
	Frets           int          // highest fret shown; 0 = DefaultFrets
}

// Views returns the SCALE view names in table order.
func Views() []string {
	return []string{ViewRoman, ViewInterval, ViewScalar, ViewReharmonization}
}

// ParseViews splits a comma-separated list of view names, ignoring case and
// surrounding space. Unknown or empty names fail with ErrValidation.
func ParseViews(list string) ([]string, error) {
	parts := strings.Split(list, ",")
	views := make([]string, len(parts))
	for i, p := range parts {
		v := strings.ToLower(strings.TrimSpace(p))
		if !slices.Contains(Views(), v) {
			return nil, fmt.Errorf("unknown view %q, want one of %s: %w",
				p, strings.Join(Views(), ", "), amati.ErrValidation)
		}
		views[i] = v
	}
	return views, nil
}

// DefaultFrets is the number of frets the guitar analytic shows by default.
const DefaultFrets = 12

// StandardTuning returns standard guitar tuning, highest string first.
func StandardTuning() []amati.Tone {
	return []amati.Tone{
		theory.MustTone("E"),
		theory.MustTone("B"),
		theory.MustTone("G"),
		theory.MustTone("D"),
		theory.MustTone("A"),
		theory.MustTone("E"),
	}
}

// Table returns the dispatch table for cfg.
func Table(cfg Config) map[amati.Kind][]amati.AnalyticFactory {
	guitar := NewGuitar(cfg.Tuning, cfg.Frets)
	return map[amati.Kind][]amati.AnalyticFactory{
		amati.KindKey:    {ParallelMode{}},
		amati.KindScale:  scaleFactories(cfg),
		amati.KindChord:  {guitar},
		amati.KindGuitar: {guitar},
	}
}

// scaleFactories returns the SCALE analytics in table order. When cfg.Views
// is set it alone decides membership and the Reharmonization flag is
// ignored.
func scaleFactories(cfg Config) []amati.AnalyticFactory {
	candidates := []struct {
		view    string
		factory amati.AnalyticFactory
	}{
		{ViewRoman, RomanNumeral{}},
		{ViewInterval, Interval{}},
		{ViewScalar, StepPattern{}},
		{ViewReharmonization, Reharmonization{}},
	}
	var out []amati.AnalyticFactory
	for _, c := range candidates {
		var keep bool
		if len(cfg.Views) == 0 {
			keep = c.view != ViewReharmonization || cfg.Reharmonization
		} else {
			keep = slices.ContainsFunc(cfg.Views, func(v string) bool {
				return strings.EqualFold(strings.TrimSpace(v), c.view)
			})
		}
		if keep {
			out = append(out, c.factory)
		}
	}
	return out
}

// NewRegistry is shorthand for amati.NewRegistry(Table(cfg)).
func NewRegistry(cfg Config) *amati.Registry {
	return amati.NewRegistry(Table(cfg))
}

func scaleCriterion(q amati.Query) (amati.Scale, error) {
	s, ok := q.Scale()
	if !ok {
		return amati.Scale{}, fmt.Errorf("missing %s criterion: %w", amati.CriterionScale, amati.ErrUnsupportedAnalytic)
	}
	return s, nil
}

func joinTones(tones []amati.Tone) string {
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

// stepSize names a step by its size in semitones.
func stepSize(semitones int) string {
	switch semitones {
	case 1:
		return "H"
	case 2:
		return "W"
	case 3:
		return "W+H"
	case 4:
		return "2W"
	default:
		return fmt.Sprintf("%d", semitones)
	}
}

func stepPattern(steps []int) string {
	sizes := make([]string, len(steps))
	for i, s := range steps {
		sizes[i] = stepSize(s)
	}
	return strings.Join(sizes, " ")
}

// Interface compliance checks.
var (
	_ amati.AnalyticFactory = ParallelMode{}
	_ amati.AnalyticFactory = RomanNumeral{}
	_ amati.AnalyticFactory = Interval{}
	_ amati.AnalyticFactory = StepPattern{}
	_ amati.AnalyticFactory = Reharmonization{}
	_ amati.AnalyticFactory = (*Guitar)(nil)
)
