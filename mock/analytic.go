package mock

import "github.com/fwojciec/amati"

// Interface compliance checks.
var (
	_ amati.AnalyticFactory   = (*AnalyticFactory)(nil)
	_ amati.OutputFormFactory = (*OutputFormFactory)(nil)
	_ amati.Sink              = (*Sink)(nil)
)

// AnalyticFactory is a test double for amati.AnalyticFactory.
// NameValue and CapabilityValue are returned as-is; set CreateViewFn before
// calling CreateView.
type AnalyticFactory struct {
	NameValue       string
	CapabilityValue amati.Capability
	CreateViewFn    func(q amati.Query) (amati.TabularModel, error)
}

// Name returns NameValue.
func (f *AnalyticFactory) Name() string { return f.NameValue }

// Capability returns CapabilityValue.
func (f *AnalyticFactory) Capability() amati.Capability { return f.CapabilityValue }

// CreateView delegates to CreateViewFn.
func (f *AnalyticFactory) CreateView(q amati.Query) (amati.TabularModel, error) {
	return f.CreateViewFn(q)
}

// OutputFormFactory is a test double for amati.OutputFormFactory.
type OutputFormFactory struct {
	RenderViewFn func(m amati.TabularModel) (amati.OutputForm, error)
}

// RenderView delegates to RenderViewFn.
func (f *OutputFormFactory) RenderView(m amati.TabularModel) (amati.OutputForm, error) {
	return f.RenderViewFn(m)
}

// Sink is a test double for amati.Sink.
type Sink struct {
	DeliverFn func(forms []amati.OutputForm, destination string) error
}

// Deliver delegates to DeliverFn.
func (s *Sink) Deliver(forms []amati.OutputForm, destination string) error {
	return s.DeliverFn(forms, destination)
}
