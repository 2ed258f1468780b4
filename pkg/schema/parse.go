package schema

import (
	"fmt"
	"strings"

	"github.com/aretw0/egraph/pkg/domain"
)

// Reserved characters of the textual representation.
const (
	SheetOpen  = '('
	SheetClose = ')'
	CutOpen    = '['
	CutClose   = ']'
	Separator  = ','
)

// Parse decodes one complete bracketed expression into a graph and
// normalizes it, so the result is always in canonical form. The outer
// bracket pair selects the sheet of assertion or a cut; nested elements
// are split at top level on the separator, respecting bracket depth.
func Parse(text string) (*domain.Graph, error) {
	base := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
	s := strings.TrimSpace(text)

	if s == "" {
		return nil, &ParseError{Pos: 0, Reason: "empty expression"}
	}
	if len(s) < 2 {
		return nil, &ParseError{Pos: base, Reason: "expression is too short to be bracketed"}
	}

	var isSheet bool
	switch {
	case s[0] == SheetOpen && s[len(s)-1] == SheetClose:
		isSheet = true
	case s[0] == CutOpen && s[len(s)-1] == CutClose:
		isSheet = false
	case s[0] != SheetOpen && s[0] != CutOpen:
		return nil, &ParseError{Pos: base, Reason: fmt.Sprintf("unrecognized opening bracket %q", rune(s[0]))}
	default:
		return nil, &ParseError{Pos: base + len(s) - 1, Reason: "mismatched outer brackets"}
	}

	g, err := parseBody(s[1:len(s)-1], isSheet, base+1)
	if err != nil {
		return nil, err
	}
	return g.Normalize(), nil
}

// Serialize is the inverse of Parse. It emits the canonical form when g
// has been normalized; Parse output always has.
func Serialize(g *domain.Graph) string {
	return g.String()
}

type piece struct {
	text string
	pos  int
}

func parseBody(body string, isSheet bool, base int) (*domain.Graph, error) {
	g := &domain.Graph{IsSheet: isSheet}

	pieces, err := splitTop(body, base)
	if err != nil {
		return nil, err
	}

	// An empty bracket pair is the blank assertion: no elements at all.
	if len(pieces) == 1 && strings.TrimSpace(pieces[0].text) == "" {
		return g, nil
	}

	for _, pc := range pieces {
		t := strings.TrimSpace(pc.text)
		pos := pc.pos + (len(pc.text) - len(strings.TrimLeft(pc.text, " \t\r\n")))
		if t == "" {
			return nil, &ParseError{Pos: pos, Reason: "empty element"}
		}
		if t[0] == CutOpen {
			if t[len(t)-1] != CutClose {
				return nil, &ParseError{Pos: pos, Reason: "cut is not closed before the next separator"}
			}
			sub, err := parseBody(t[1:len(t)-1], false, pos+1)
			if err != nil {
				return nil, err
			}
			g.Subgraphs = append(g.Subgraphs, sub)
			continue
		}
		g.Atoms = append(g.Atoms, t)
	}
	return g, nil
}

// splitTop splits body at separators that sit outside every cut. The
// depth counter tracks only the cut bracket kind; the sheet pair may
// only enclose the whole expression.
func splitTop(body string, base int) ([]piece, error) {
	var pieces []piece
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case CutOpen:
			depth++
		case CutClose:
			depth--
			if depth < 0 {
				return nil, &ParseError{Pos: base + i, Reason: "unbalanced brackets: unexpected closing bracket"}
			}
		case Separator:
			if depth == 0 {
				pieces = append(pieces, piece{text: body[start:i], pos: base + start})
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, &ParseError{Pos: base + len(body), Reason: fmt.Sprintf("unbalanced brackets: %d cut(s) left open", depth)}
	}
	pieces = append(pieces, piece{text: body[start:], pos: base + start})
	return pieces, nil
}
