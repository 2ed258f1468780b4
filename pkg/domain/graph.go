package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is a single node of an existential graph: either the outer sheet
// of assertion or a nested cut. A node directly holds atomic proposition
// names and child cuts; ownership is a strict tree (no sharing, no
// cycles).
type Graph struct {
	// IsSheet is true only for the root node, the unenclosed sheet of
	// assertion. Every nested cut has IsSheet == false.
	IsSheet bool `json:"is_sheet" yaml:"is_sheet"`

	// Atoms are the proposition names directly enclosed by this node,
	// not counting anything inside child cuts.
	Atoms []string `json:"atoms,omitempty" yaml:"atoms,omitempty"`

	// Subgraphs are the child cuts, each owned exclusively by this node.
	Subgraphs []*Graph `json:"subgraphs,omitempty" yaml:"subgraphs,omitempty"`
}

// NewSheet returns an empty sheet of assertion.
func NewSheet() *Graph {
	return &Graph{IsSheet: true}
}

// NewCut returns an empty cut.
func NewCut() *Graph {
	return &Graph{}
}

// NumAtoms returns the number of atoms directly enclosed by g.
func (g *Graph) NumAtoms() int {
	return len(g.Atoms)
}

// NumSubgraphs returns the number of child cuts of g.
func (g *Graph) NumSubgraphs() int {
	return len(g.Subgraphs)
}

// Size returns the total element count of g (child cuts plus atoms).
func (g *Graph) Size() int {
	return len(g.Subgraphs) + len(g.Atoms)
}

// Clone returns a deep copy of g. Mutating the copy never affects the
// original.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{IsSheet: g.IsSheet}
	if len(g.Atoms) > 0 {
		out.Atoms = append([]string(nil), g.Atoms...)
	}
	for _, sub := range g.Subgraphs {
		out.Subgraphs = append(out.Subgraphs, sub.Clone())
	}
	return out
}

// String returns the textual serialization of g: child cuts first, then
// atoms, both in stored order, separated by ", " and wrapped in "()" for
// the sheet or "[]" for a cut. The output is the canonical form when g
// has been normalized.
func (g *Graph) String() string {
	open, clos := "[", "]"
	if g.IsSheet {
		open, clos = "(", ")"
	}

	var sb strings.Builder
	sb.WriteString(open)
	for i, sub := range g.Subgraphs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sub.String())
	}
	for i, atom := range g.Atoms {
		if i > 0 || len(g.Subgraphs) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(atom)
	}
	sb.WriteString(clos)
	return sb.String()
}

// Normalize sorts g into canonical form: atoms lexicographically and
// child cuts by their own canonical serialization, bottom-up (children
// are normalized before the parent orders them). Normalize is
// idempotent. It modifies g in place and returns it for chaining.
func (g *Graph) Normalize() *Graph {
	sort.Strings(g.Atoms)
	for _, sub := range g.Subgraphs {
		sub.Normalize()
	}
	sort.Slice(g.Subgraphs, func(i, j int) bool {
		return g.Subgraphs[i].Less(g.Subgraphs[j])
	})
	return g
}

// Equal reports structural equality: both serializations match. Both
// graphs must be in canonical form for element order not to matter.
func (g *Graph) Equal(other *Graph) bool {
	return g.String() == other.String()
}

// Less orders graphs by their serialized form. The ordering exists to
// support Normalize and carries no logical meaning.
func (g *Graph) Less(other *Graph) bool {
	return g.String() < other.String()
}

// Descend walks the child-cut indices in where and returns the addressed
// node. It returns ErrPathOutOfRange when any index does not name a
// child cut of the node reached so far.
func (g *Graph) Descend(where Path) (*Graph, error) {
	node := g
	for depth, idx := range where {
		if idx < 0 || idx >= len(node.Subgraphs) {
			return nil, fmt.Errorf("%w: subgraph index %d at depth %d", ErrPathOutOfRange, idx, depth)
		}
		node = node.Subgraphs[idx]
	}
	return node, nil
}

// At returns the element of g at flat index i under the children-first
// convention: the child cut when i falls in the children range, else the
// atom at the adjusted offset.
func (g *Graph) At(i int) (*Graph, string, error) {
	switch {
	case i >= 0 && i < len(g.Subgraphs):
		return g.Subgraphs[i], "", nil
	case i >= len(g.Subgraphs) && i-len(g.Subgraphs) < len(g.Atoms):
		return nil, g.Atoms[i-len(g.Subgraphs)], nil
	default:
		return nil, "", fmt.Errorf("%w: index %d in node of size %d", ErrPathOutOfRange, i, g.Size())
	}
}

// RemoveAt deletes the element of g at flat index i, using the same
// children-first convention as At. It mutates g and is intended for use
// on a clone by the rule engines.
func (g *Graph) RemoveAt(i int) error {
	switch {
	case i >= 0 && i < len(g.Subgraphs):
		g.Subgraphs = append(g.Subgraphs[:i], g.Subgraphs[i+1:]...)
	case i >= len(g.Subgraphs) && i-len(g.Subgraphs) < len(g.Atoms):
		j := i - len(g.Subgraphs)
		g.Atoms = append(g.Atoms[:j], g.Atoms[j+1:]...)
	default:
		return fmt.Errorf("%w: index %d in node of size %d", ErrPathOutOfRange, i, g.Size())
	}
	return nil
}
