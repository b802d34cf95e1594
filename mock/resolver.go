// Package mock provides function-field test doubles for the amati
// interfaces.
package mock

import "github.com/fwojciec/amati"

// Interface compliance check.
var _ amati.Resolver = (*Resolver)(nil)

// Resolver is a test double for amati.Resolver.
// Set the Fn field for each method the test exercises.
type Resolver struct {
	ResolveToneFn  func(name string) (amati.Tone, error)
	ResolveScaleFn func(key amati.Tone, name string) (amati.Scale, error)
	ResolveChordFn func(key amati.Tone, name string) (amati.Chord, error)
}

// ResolveTone delegates to ResolveToneFn.
func (r *Resolver) ResolveTone(name string) (amati.Tone, error) {
	return r.ResolveToneFn(name)
}

// ResolveScale delegates to ResolveScaleFn.
func (r *Resolver) ResolveScale(key amati.Tone, name string) (amati.Scale, error) {
	return r.ResolveScaleFn(key, name)
}

// ResolveChord delegates to ResolveChordFn.
func (r *Resolver) ResolveChord(key amati.Tone, name string) (amati.Chord, error) {
	return r.ResolveChordFn(key, name)
}
