package rules

import (
	"fmt"

	"github.com/aretw0/egraph/pkg/domain"
)

// PossibleDoubleCuts returns the paths of every double cut in g: a child
// cut that directly and solely encloses another cut (exactly one
// subgraph, zero atoms). Removing one is double negation elimination and
// never changes meaning.
func PossibleDoubleCuts(g *domain.Graph) []domain.Path {
	var paths []domain.Path
	for i, sub := range g.Subgraphs {
		if sub.NumSubgraphs() == 1 && sub.NumAtoms() == 0 {
			paths = append(paths, domain.Path{i})
		}
	}
	for i, sub := range g.Subgraphs {
		for _, p := range PossibleDoubleCuts(sub) {
			paths = append(paths, prefixed(i, p))
		}
	}
	return paths
}

// DoubleCut removes the double cut addressed by where and splices the
// inner cut's atoms and subgraphs directly into the enclosing node. The
// original graph is left untouched.
func DoubleCut(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	if len(where) == 0 {
		return nil, fmt.Errorf("%w: empty path", domain.ErrPathOutOfRange)
	}

	out := g.Clone()
	parent, err := out.Descend(where[:len(where)-1])
	if err != nil {
		return nil, err
	}

	last := where[len(where)-1]
	if last < 0 || last >= parent.NumSubgraphs() {
		return nil, fmt.Errorf("%w: subgraph index %d", domain.ErrPathOutOfRange, last)
	}
	wrapper := parent.Subgraphs[last]
	if wrapper.NumSubgraphs() != 1 || wrapper.NumAtoms() != 0 {
		return nil, fmt.Errorf("%w at path %s", ErrNotDoubleCut, where)
	}

	inner := wrapper.Subgraphs[0]
	parent.Subgraphs = append(parent.Subgraphs[:last], parent.Subgraphs[last+1:]...)
	parent.Atoms = append(parent.Atoms, inner.Atoms...)
	parent.Subgraphs = append(parent.Subgraphs, inner.Subgraphs...)
	return out, nil
}

func prefixed(i int, p domain.Path) domain.Path {
	return append(domain.Path{i}, p...)
}
