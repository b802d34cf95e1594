package amati

import "fmt"

// Report runs the full pipeline for one request: validation, dispatch,
// rendering and delivery.
type Report struct {
	resolver Resolver
	registry *Registry
	forms    *Forms
	sink     Sink
}

// NewReport creates a Report from its collaborators.
func NewReport(resolver Resolver, registry *Registry, forms *Forms, sink Sink) *Report {
	return &Report{resolver: resolver, registry: registry, forms: forms, sink: sink}
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	onFailure  func(AnalyticResult)
	onRendered func(AnalyticResult)
}

// WithFailureHandler sets a callback that receives every analytic that
// failed. If nil or not set, failures are only reflected in the output.
func WithFailureHandler(h func(AnalyticResult)) RunOption {
	return func(c *runConfig) {
		c.onFailure = h
	}
}

// WithRenderedHandler sets a callback that receives every analytic that was
// rendered, in delivery order.
func WithRenderedHandler(h func(AnalyticResult)) RunOption {
	return func(c *runConfig) {
		c.onRendered = h
	}
}

// Run validates params and writes the report. Validation, render and
// delivery errors abort the run before anything is written. Analytics that
// fail are reported to the failure handler and left out of the output; if
// none succeed, Run returns an error wrapping ErrUnsupportedAnalytic.
func (r *Report) Run(params RequestParameters, opts ...RunOption) error {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	req, err := params.Validate(r.resolver)
	if err != nil {
		return err
	}

	results := r.registry.Dispatch(req)
	var succeeded []AnalyticResult
	for _, res := range results {
		if !res.OK() {
			if cfg.onFailure != nil {
				cfg.onFailure(res)
			}
			continue
		}
		succeeded = append(succeeded, res)
	}
	if len(succeeded) == 0 {
		return fmt.Errorf("no analytic could be rendered for %s request: %w", req.Kind, ErrUnsupportedAnalytic)
	}

	factory := r.forms.Select(req.Format)
	forms := make([]OutputForm, 0, len(succeeded))
	for _, res := range succeeded {
		form, err := factory.RenderView(res.Model)
		if err != nil {
			return fmt.Errorf("render %s: %w", res.Analytic, err)
		}
		forms = append(forms, form)
	}

	if err := r.sink.Deliver(forms, req.Output); err != nil {
		return err
	}
	if cfg.onRendered != nil {
		for _, res := range succeeded {
			cfg.onRendered(res)
		}
	}
	return nil
}
