/*
Package domain contains the core model for Peirce-style existential graphs.

It defines the Graph node (sheet of assertion or cut), its canonical form,
and the structural queries the inference rules are built on: containment
checks and integer-path addressing of elements. This package is kept pure
and free of I/O or external dependencies; parsing lives in pkg/schema and
the inference rules in pkg/rules.

# Addressing convention

Every element of a node is addressed by a flat index: child cuts occupy
indices 0..NumSubgraphs()-1, followed by atoms at
NumSubgraphs()..Size()-1. A Path is a sequence of such indices, one per
nesting level, where every entry except the last descends into a child
cut.
*/
package domain
