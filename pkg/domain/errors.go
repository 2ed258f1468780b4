package domain

import "errors"

// ErrPathOutOfRange is returned when a path or flat index addresses an
// element outside the current tree shape. Callers can test for it with
// errors.Is.
var ErrPathOutOfRange = errors.New("path out of range")
