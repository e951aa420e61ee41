package repet

import "errors"

// ErrInvalidInput is returned when the signal or sample rate fails the
// boundary checks described for every operation: empty signal, fs <= 0,
// or a signal shorter than one analysis window.
var ErrInvalidInput = errors.New("repet: invalid input")

// ErrDegenerateStructure is returned when the repetition-structure
// search (beat spectrogram argmax, similarity-index search) finds no
// candidate period or index within the configured range. Callers may
// choose to fall back to returning the mixture unchanged as the
// background.
var ErrDegenerateStructure = errors.New("repet: degenerate repetition structure")

// ErrNumericOverflow names the non-finite-result case of the error
// taxonomy. No pipeline checks its result for non-finite values, so
// none of them returns this error; the ratio-with-epsilon construction
// of every mask keeps the masks finite.
var ErrNumericOverflow = errors.New("repet: non-finite value in result")
