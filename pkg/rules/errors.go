package rules

import "errors"

// ErrNotDoubleCut is returned by DoubleCut when the addressed child is
// not a cut enclosing exactly one cut and nothing else.
var ErrNotDoubleCut = errors.New("not a double cut")
