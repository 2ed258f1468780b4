package schema

import (
	"errors"
	"fmt"
)

// ErrParse indicates malformed input text: unbalanced brackets, an
// unrecognized outer bracket pair, or an empty element token.
var ErrParse = errors.New("parse error")

// ParseError reports where and why an expression failed to parse.
// It wraps ErrParse for errors.Is compatibility.
type ParseError struct {
	Pos    int    // byte offset into the original input
	Reason string // deterministic human-readable reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrParse.Error(), e.Pos, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }
