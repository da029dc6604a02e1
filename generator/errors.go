package generator

import "errors"

// ErrInvalidMode is returned by New when given a Mode other than the
// two defined values.
var ErrInvalidMode = errors.New("generator: invalid mode")

// ErrFatalStateCorruption signals that the generator's phase reached
// a value outside its mode's schedule. This can only happen from a
// programming error (e.g. mutating phase/cycle outside Next); callers
// should treat it as fatal rather than attempt recovery, per the
// fatal-state-corruption entry in the error taxonomy.
var ErrFatalStateCorruption = errors.New("generator: unknown phase, state corrupted")
