package rules

import "github.com/aretw0/egraph/pkg/domain"

// PossibleDeiterations returns the paths of every atom or subgraph copy
// made redundant by an identical assertion in an enclosing or sibling
// context. For each atom of a node, occurrences inside sibling cuts are
// candidates; for each child cut, structurally equal copies inside the
// other children are candidates; the search then recurses into every
// child. The result is the set of distinct paths, sorted.
func PossibleDeiterations(g *domain.Graph) []domain.Path {
	var paths []domain.Path

	for _, atom := range g.Atoms {
		for j, sub := range g.Subgraphs {
			for _, p := range sub.AtomOccurrences(atom) {
				paths = append(paths, prefixed(j, p))
			}
		}
	}

	for i, sub := range g.Subgraphs {
		for j, other := range g.Subgraphs {
			if i == j {
				continue
			}
			for _, p := range other.SubgraphOccurrences(sub) {
				paths = append(paths, prefixed(j, p))
			}
		}
		for _, p := range PossibleDeiterations(sub) {
			paths = append(paths, prefixed(i, p))
		}
	}

	return domain.DedupePaths(paths)
}

// Deiterate removes the duplicated element addressed by where from a
// copy of g, using the same children-first removal convention as Erase.
func Deiterate(g *domain.Graph, where domain.Path) (*domain.Graph, error) {
	return removeAtPath(g, where)
}
