package amati

// Kind selects which family of analytics a request runs.
type Kind string

const (
	KindKey    Kind = "KEY"
	KindScale  Kind = "SCALE"
	KindChord  Kind = "CHORD"
	KindGuitar Kind = "GUITAR"
)

// Kinds returns the supported request kinds in dispatch-table order.
func Kinds() []Kind {
	return []Kind{KindKey, KindScale, KindChord, KindGuitar}
}

// RequestParameters holds raw request values as supplied by the command line.
// A nil field means the value was not supplied.
type RequestParameters struct {
	Kind   *string
	Key    *string
	Scale  *string
	Chord  *string
	Format *string
	Output *string
}

// ValidatedRequest is the strongly typed form of RequestParameters, built by
// RequestParameters.Validate. Scale is non-nil for SCALE requests and Chord
// for CHORD requests; a GUITAR request carries exactly one of them.
type ValidatedRequest struct {
	Kind   Kind
	Key    Tone
	Scale  *Scale
	Chord  *Chord
	Format OutputFormat
	Output string // empty = standard output
}

// Stdout reports whether the request writes to standard output.
func (r ValidatedRequest) Stdout() bool { return r.Output == "" }

// Query builds the criteria the request's analytics consume: the key always,
// the scale or chord when present, and for CHORD and GUITAR requests the same
// object again as the tone group.
func (r ValidatedRequest) Query() Query {
	b := NewQueryBuilder().InsertKey(r.Key)
	if r.Scale != nil {
		b.InsertScale(*r.Scale)
	}
	if r.Chord != nil {
		b.InsertChord(*r.Chord)
	}
	switch r.Kind {
	case KindChord, KindGuitar:
		if r.Chord != nil {
			b.InsertToneGroup(*r.Chord)
		} else if r.Scale != nil {
			b.InsertToneGroup(*r.Scale)
		}
	}
	return b.Compile()
}
