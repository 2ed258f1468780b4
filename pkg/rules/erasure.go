package rules

import (
	"fmt"

	"github.com/aretw0/egraph/pkg/domain"
)

// SheetLevel is the level seed for the root call of PossibleErasures:
// the traversal has not yet entered a cut. The sheet's own elements sit
// at this level, so they count as positively enclosed (odd level).
const SheetLevel = -1

// PossibleErasures returns the paths of every element that may be
// erased, relative to g at the given level. Erasure is legal only in a
// positively enclosed context, which under the SheetLevel seed means an
// odd running level. A node holding a single element (one atom and no
// cuts, or one cut and no atoms) keeps its sole occupant unaddressable,
// except at the literal SheetLevel seed where the guard is lifted.
func PossibleErasures(g *domain.Graph, level int) []domain.Path {
	var paths []domain.Path

	soleAtom := g.NumSubgraphs() == 0 && g.NumAtoms() == 1 && level != SheetLevel
	soleCut := g.NumSubgraphs() == 1 && g.NumAtoms() == 0 && level != SheetLevel
	if level%2 != 0 && !soleAtom && !soleCut {
		for i := 0; i < g.Size(); i++ {
			paths = append(paths, domain.Path{i})
		}
	}

	for i, sub := range g.Subgraphs {
		for _, p := range PossibleErasures(sub, level+1) {
			paths = append(paths, prefixed(i, p))
		}
	}
	return paths
}

// Erase removes the element addressed by where from a copy of g: the
// child cut when the final index falls in the children range, else the
// atom at the adjusted offset relative to the addressed parent.
func Erase(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	return removeAtPath(g, where)
}

func removeAtPath(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	if len(where) == 0 {
		return nil, fmt.Errorf("%w: empty path", domain.ErrPathOutOfRange)
	}

	out := g.Clone()
	parent, err := out.Descend(where[:len(where)-1])
	if err != nil {
		return nil, err
	}
	if err := parent.RemoveAt(where[len(where)-1]); err != nil {
		return nil, err
	}
	return out, nil
}
