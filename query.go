package amati

// Criterion names one kind of value a Query can carry.
type Criterion string

const (
	CriterionKey       Criterion = "Key"
	CriterionScale     Criterion = "Scale"
	CriterionChord     Criterion = "Chord"
	CriterionToneGroup Criterion = "ToneGroup"
)

// QueryBuilder accumulates criteria for a Query. Inserting a criterion that
// is already present replaces the earlier value.
type QueryBuilder struct {
	criteria map[Criterion]any
}

// NewQueryBuilder returns an empty builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{criteria: make(map[Criterion]any)}
}

// InsertKey sets the Key criterion.
func (b *QueryBuilder) InsertKey(t Tone) *QueryBuilder { return b.insert(CriterionKey, t) }

// InsertScale sets the Scale criterion.
func (b *QueryBuilder) InsertScale(s Scale) *QueryBuilder { return b.insert(CriterionScale, s) }

// InsertChord sets the Chord criterion.
func (b *QueryBuilder) InsertChord(c Chord) *QueryBuilder { return b.insert(CriterionChord, c) }

// InsertToneGroup sets the ToneGroup criterion.
func (b *QueryBuilder) InsertToneGroup(g ToneGroup) *QueryBuilder {
	return b.insert(CriterionToneGroup, g)
}

func (b *QueryBuilder) insert(c Criterion, v any) *QueryBuilder {
	if b.criteria == nil {
		b.criteria = make(map[Criterion]any)
	}
	b.criteria[c] = v
	return b
}

// Compile returns a snapshot of the accumulated criteria. Later inserts on
// the builder do not affect a compiled Query.
func (b *QueryBuilder) Compile() Query {
	criteria := make(map[Criterion]any, len(b.criteria))
	for c, v := range b.criteria {
		criteria[c] = v
	}
	return Query{criteria: criteria}
}

// Query is an immutable set of named criteria consumed by analytic factories.
type Query struct {
	criteria map[Criterion]any
}

// Len returns the number of criteria.
func (q Query) Len() int { return len(q.criteria) }

// Criteria returns the raw value stored under c.
func (q Query) Criteria(c Criterion) (any, bool) {
	v, ok := q.criteria[c]
	return v, ok
}

// Key returns the Key criterion.
func (q Query) Key() (Tone, bool) { return criterion[Tone](q, CriterionKey) }

// Scale returns the Scale criterion.
func (q Query) Scale() (Scale, bool) { return criterion[Scale](q, CriterionScale) }

// Chord returns the Chord criterion.
func (q Query) Chord() (Chord, bool) { return criterion[Chord](q, CriterionChord) }

// ToneGroup returns the ToneGroup criterion.
func (q Query) ToneGroup() (ToneGroup, bool) {
	return criterion[ToneGroup](q, CriterionToneGroup)
}

func criterion[T any](q Query, c Criterion) (T, bool) {
	v, ok := q.criteria[c].(T)
	return v, ok
}
