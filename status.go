package fuse

import "errors"

// ErrBrokenFuse is reported when the goroutine holding an armed fuse exited
// without releasing it. Reads through a FusedReader return it in place of
// io.EOF once the underlying stream drains, and Arm fails with it (wrapped)
// for as long as the fuse stays poisoned.
var ErrBrokenFuse = errors.New("fuse: writer exited while the fuse was armed")

// Status is the reader-side observation of a fuse at a single instant.
// It is the result of a non-blocking probe and is not persisted - two
// consecutive probes may differ (in particular, Blown drains to Unarmed).
type Status int

const (
	// Unarmed means no guard is held and no error is recorded. Either the
	// fuse was never armed, or the last guard was released normally.
	Unarmed Status = iota

	// Armed means a guard is currently held: the producer has declared
	// itself at risk and has not yet settled the outcome.
	Armed

	// Blown means the last guard recorded a terminal error via Blow. The
	// probe that observes Blown drains the error; later probes report
	// Unarmed until the fuse is blown again.
	Blown

	// Poisoned means a guard holder exited without Release or Blow. Unlike
	// Blown, poisoning is sticky: every later probe reports Poisoned and
	// every later Arm fails.
	Poisoned
)

func (s Status) String() string {
	switch s {
	case Unarmed:
		return "Unarmed"
	case Armed:
		return "Armed"
	case Blown:
		return "Blown"
	case Poisoned:
		return "Poisoned"
	}
	return "Unknown"
}
