package amati

import (
	"errors"
	"fmt"
	"strings"
)

// Validate resolves raw parameters into a ValidatedRequest, using r for
// tone, scale and chord lookups. Every error wraps ErrValidation; lookup
// failures also wrap ErrLookup.
func (p RequestParameters) Validate(r Resolver) (ValidatedRequest, error) {
	kind, err := p.kind()
	if err != nil {
		return ValidatedRequest{}, err
	}

	key, err := p.key(r)
	if err != nil {
		return ValidatedRequest{}, err
	}

	req := ValidatedRequest{Kind: kind, Key: key}
	switch kind {
	case KindScale:
		s, err := p.scale(r, key)
		if err != nil {
			return ValidatedRequest{}, err
		}
		req.Scale = &s
	case KindChord:
		c, err := p.chord(r, key)
		if err != nil {
			return ValidatedRequest{}, err
		}
		req.Chord = &c
	case KindGuitar:
		hasScale, hasChord := present(p.Scale), present(p.Chord)
		switch {
		case hasScale && hasChord:
			return ValidatedRequest{}, fmt.Errorf("ambiguous: both scale and chord specified: %w", ErrValidation)
		case hasScale:
			s, err := p.scale(r, key)
			if err != nil {
				return ValidatedRequest{}, err
			}
			req.Scale = &s
		case hasChord:
			c, err := p.chord(r, key)
			if err != nil {
				return ValidatedRequest{}, err
			}
			req.Chord = &c
		default:
			return ValidatedRequest{}, fmt.Errorf("underspecified: scale or chord required: %w", ErrValidation)
		}
	}

	if req.Format, err = p.format(); err != nil {
		return ValidatedRequest{}, err
	}
	if req.Output, err = p.output(req.Format); err != nil {
		return ValidatedRequest{}, err
	}
	return req, nil
}

func (p RequestParameters) kind() (Kind, error) {
	if !present(p.Kind) {
		return "", fmt.Errorf("request kind not specified: %w", ErrValidation)
	}
	k := Kind(strings.ToUpper(strings.TrimSpace(*p.Kind)))
	for _, supported := range Kinds() {
		if k == supported {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown request kind %q: %w", *p.Kind, ErrValidation)
}

func (p RequestParameters) key(r Resolver) (Tone, error) {
	if !present(p.Key) {
		return Tone{}, fmt.Errorf("key not specified: %w", ErrValidation)
	}
	t, err := r.ResolveTone(strings.TrimSpace(*p.Key))
	if err != nil {
		return Tone{}, lookupFailed("key", err)
	}
	return t, nil
}

func (p RequestParameters) scale(r Resolver, key Tone) (Scale, error) {
	if !present(p.Scale) {
		return Scale{}, fmt.Errorf("scale not specified: %w", ErrValidation)
	}
	s, err := r.ResolveScale(key, strings.TrimSpace(*p.Scale))
	if err != nil {
		return Scale{}, lookupFailed("scale", err)
	}
	return s, nil
}

func (p RequestParameters) chord(r Resolver, key Tone) (Chord, error) {
	if !present(p.Chord) {
		return Chord{}, fmt.Errorf("chord not specified: %w", ErrValidation)
	}
	c, err := r.ResolveChord(key, strings.TrimSpace(*p.Chord))
	if err != nil {
		return Chord{}, lookupFailed("chord", err)
	}
	return c, nil
}

func (p RequestParameters) format() (OutputFormat, error) {
	if !present(p.Format) {
		return "", fmt.Errorf("format not specified: %w", ErrValidation)
	}
	return ParseOutputFormat(*p.Format)
}

func (p RequestParameters) output(f OutputFormat) (string, error) {
	if !present(p.Output) {
		if f.Binary() {
			return "", fmt.Errorf("output file required for format %s: %w", f, ErrValidation)
		}
		return "", nil
	}
	return strings.TrimSpace(*p.Output), nil
}

// lookupFailed tags a resolver error as a validation failure while keeping
// ErrLookup reachable through errors.Is.
func lookupFailed(what string, err error) error {
	if !errors.Is(err, ErrLookup) {
		err = fmt.Errorf("%w: %w", ErrLookup, err)
	}
	return fmt.Errorf("%s: %w: %w", what, err, ErrValidation)
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
