/*
Package rules implements the canonical inference rules over existential
graphs: double-cut removal, erasure, and deiteration.

Each rule comes as a pair: a Possible* query enumerating the paths where
the rule may legally fire, and an apply function that removes the
addressed content. Applies are pure — they clone the input graph, edit
the clone, and return it — so callers may keep references to every prior
version. An apply handed a path outside the current tree shape fails
with domain.ErrPathOutOfRange instead of silently no-opping.
*/
package rules
