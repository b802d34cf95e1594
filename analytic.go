package amati

import "fmt"

// Capability is a refinement an analytic requires of the query's theory
// object before it can run.
type Capability int

const (
	CapabilityNone     Capability = iota // any structurally valid query
	CapabilityDiatonic                   // a Scale criterion tagged Diatonic
)

// AnalyticFactory turns a Query into a TabularModel. CreateView must be pure
// with respect to the query.
type AnalyticFactory interface {
	Name() string
	Capability() Capability
	CreateView(q Query) (TabularModel, error)
}

// AnalyticResult is the outcome of one analytic invocation: a model on
// success, the reason on failure.
type AnalyticResult struct {
	Analytic string
	Model    TabularModel
	Err      error
}

// OK reports whether the analytic produced a model.
func (r AnalyticResult) OK() bool { return r.Err == nil }

// Registry maps request kinds to the ordered analytic factories they run.
type Registry struct {
	table map[Kind][]AnalyticFactory
}

// NewRegistry creates a Registry from a dispatch table. The table is copied.
func NewRegistry(table map[Kind][]AnalyticFactory) *Registry {
	t := make(map[Kind][]AnalyticFactory, len(table))
	for k, fs := range table {
		t[k] = append([]AnalyticFactory(nil), fs...)
	}
	return &Registry{table: t}
}

// Factories returns the factories registered for kind, in dispatch order.
func (r *Registry) Factories(kind Kind) []AnalyticFactory {
	return append([]AnalyticFactory(nil), r.table[kind]...)
}

// Dispatch builds the request's query and attempts every factory registered
// for its kind, in order. Each invocation succeeds or fails on its own; a
// failure never prevents the remaining factories from running.
func (r *Registry) Dispatch(req ValidatedRequest) []AnalyticResult {
	q := req.Query()
	factories := r.table[req.Kind]
	results := make([]AnalyticResult, 0, len(factories))
	for _, f := range factories {
		results = append(results, invoke(f, q))
	}
	return results
}

func invoke(f AnalyticFactory, q Query) AnalyticResult {
	res := AnalyticResult{Analytic: f.Name()}
	if err := checkCapability(f, q); err != nil {
		res.Err = err
		return res
	}
	m, err := f.CreateView(q)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", f.Name(), err)
		return res
	}
	if err := m.Validate(); err != nil {
		res.Err = fmt.Errorf("%s: %w", f.Name(), err)
		return res
	}
	res.Model = m
	return res
}

func checkCapability(f AnalyticFactory, q Query) error {
	switch f.Capability() {
	case CapabilityNone:
		return nil
	case CapabilityDiatonic:
		s, ok := q.Scale()
		if !ok {
			return &UnsupportedAnalyticError{Analytic: f.Name(), Reason: "requires a scale"}
		}
		if !s.Diatonic {
			return &UnsupportedAnalyticError{
				Analytic: f.Name(),
				Reason:   fmt.Sprintf("cannot be rendered for non-diatonic scale %s", s.Label()),
			}
		}
		return nil
	default:
		return &UnsupportedAnalyticError{
			Analytic: f.Name(),
			Reason:   fmt.Sprintf("unknown capability %d", f.Capability()),
		}
	}
}
