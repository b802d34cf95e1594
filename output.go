package amati

// OutputForm is the finalized rendering of exactly one TabularModel.
type OutputForm struct {
	format  OutputFormat
	content []byte
}

// NewOutputForm creates an OutputForm holding a copy of content.
func NewOutputForm(format OutputFormat, content []byte) OutputForm {
	return OutputForm{format: format, content: append([]byte(nil), content...)}
}

// Format returns the format the form was rendered in.
func (f OutputForm) Format() OutputFormat { return f.format }

// String returns the printable representation.
func (f OutputForm) String() string { return string(f.content) }

// Bytes returns a copy of the raw representation.
func (f OutputForm) Bytes() []byte { return append([]byte(nil), f.content...) }

// OutputFormFactory is a strategy that renders a TabularModel in one format.
type OutputFormFactory interface {
	RenderView(m TabularModel) (OutputForm, error)
}

// Forms selects an OutputFormFactory by format, falling back to the text
// strategy for any format without a registered strategy.
type Forms struct {
	text     OutputFormFactory
	byFormat map[OutputFormat]OutputFormFactory
}

// NewForms creates a Forms with text as the fallback and TXT strategy.
func NewForms(text OutputFormFactory, others map[OutputFormat]OutputFormFactory) *Forms {
	byFormat := make(map[OutputFormat]OutputFormFactory, len(others)+1)
	for f, ff := range others {
		byFormat[f] = ff
	}
	byFormat[FormatTXT] = text
	return &Forms{text: text, byFormat: byFormat}
}

// Select returns the strategy for format, or the text strategy.
func (f *Forms) Select(format OutputFormat) OutputFormFactory {
	if ff, ok := f.byFormat[format]; ok && ff != nil {
		return ff
	}
	return f.text
}

// SelectName resolves name with ParseOutputFormat and returns its strategy.
// Unrecognized names select the text strategy.
func (f *Forms) SelectName(name string) OutputFormFactory {
	format, err := ParseOutputFormat(name)
	if err != nil {
		return f.text
	}
	return f.Select(format)
}

// Sink delivers rendered forms. An empty destination means standard output;
// anything else is a file path.
type Sink interface {
	Deliver(forms []OutputForm, destination string) error
}
