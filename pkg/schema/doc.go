/*
Package schema implements the textual codec for existential graphs.

The wire format is a single bracketed expression: "(...)" encloses the
sheet of assertion, "[...]" encloses a cut, and sibling elements are
separated by commas with arbitrary surrounding whitespace. Children
serialize before atoms, both in canonical order, with no trailing
separator.

Parse errors carry a byte offset and a reason, and every one of them
wraps ErrParse so callers can categorize failures with errors.Is.
*/
package schema
