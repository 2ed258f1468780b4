package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Path locates one element of a graph as a sequence of flat indices, one
// per nesting level. Every entry except the last descends into a child
// cut; the last entry may address either a child cut or an atom.
type Path []int

// String renders the path as comma-separated indices, e.g. "0,2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// Equal reports whether p and q are the same index sequence.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Less orders paths lexicographically, shorter prefixes first.
func (p Path) Less(q Path) bool {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return len(p) < len(q)
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// ParsePath parses the comma-separated form produced by Path.String.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ",")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid path index %q", part)
		}
		p[i] = idx
	}
	return p, nil
}

// SortPaths orders a path list lexicographically in place.
func SortPaths(paths []Path) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Less(paths[j])
	})
}

// DedupePaths sorts the list and drops structurally identical sequences.
// The semantics is a set of distinct paths, not insertion order.
func DedupePaths(paths []Path) []Path {
	SortPaths(paths)
	var out []Path
	for _, p := range paths {
		if len(out) == 0 || !out[len(out)-1].Equal(p) {
			out = append(out, p)
		}
	}
	return out
}

// ContainsAtom reports whether the named atom appears in g or in any
// descendant cut.
func (g *Graph) ContainsAtom(name string) bool {
	for _, atom := range g.Atoms {
		if atom == name {
			return true
		}
	}
	for _, sub := range g.Subgraphs {
		if sub.ContainsAtom(name) {
			return true
		}
	}
	return false
}

// ContainsSubgraph reports whether other structurally equals a child cut
// of g or of any descendant.
func (g *Graph) ContainsSubgraph(other *Graph) bool {
	for _, sub := range g.Subgraphs {
		if sub.Equal(other) || sub.ContainsSubgraph(other) {
			return true
		}
	}
	return false
}

// PathsToAtom returns the paths of every addressable occurrence of the
// named atom. An occurrence whose enclosing node holds no other element
// is skipped: a sole occupant is addressed as the whole node, not by
// path.
func (g *Graph) PathsToAtom(name string) []Path {
	return g.atomPaths(name, true)
}

// AtomOccurrences returns the paths of every occurrence of the named
// atom, including sole occupants. The deiteration engine matches
// duplicates with this unrestricted enumeration.
func (g *Graph) AtomOccurrences(name string) []Path {
	return g.atomPaths(name, false)
}

func (g *Graph) atomPaths(name string, skipSole bool) []Path {
	var paths []Path
	ns := len(g.Subgraphs)
	for i, atom := range g.Atoms {
		if atom == name && (!skipSole || g.Size() > 1) {
			paths = append(paths, Path{ns + i})
		}
	}
	for i, sub := range g.Subgraphs {
		if !sub.ContainsAtom(name) {
			continue
		}
		for _, p := range sub.atomPaths(name, skipSole) {
			paths = append(paths, append(Path{i}, p...))
		}
	}
	return paths
}

// PathsToSubgraph returns the paths of every addressable child cut that
// structurally equals other, applying the same sole-occupant exclusion
// as PathsToAtom. A child that matches is not searched further.
func (g *Graph) PathsToSubgraph(other *Graph) []Path {
	return g.subgraphPaths(other, true)
}

// SubgraphOccurrences returns the paths of every child cut equal to
// other, including sole occupants.
func (g *Graph) SubgraphOccurrences(other *Graph) []Path {
	return g.subgraphPaths(other, false)
}

func (g *Graph) subgraphPaths(other *Graph, skipSole bool) []Path {
	var paths []Path
	for i, sub := range g.Subgraphs {
		if sub.Equal(other) && (!skipSole || g.Size() > 1) {
			paths = append(paths, Path{i})
			continue
		}
		for _, p := range sub.subgraphPaths(other, skipSole) {
			paths = append(paths, append(Path{i}, p...))
		}
	}
	return paths
}
