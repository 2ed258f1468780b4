/*
Package egraph manipulates Peirce-style existential graphs: nested
sheet/cut trees of atomic propositions, together with the canonical
inference rules used to transform them (double-cut removal, erasure,
deiteration).

A graph is parsed once from its textual representation, held in memory
as an ownership tree, and only ever copied-and-modified: every rule
application returns a new graph and leaves the input untouched, so
callers may keep references to prior versions.

# Representation

"(...)" encloses the sheet of assertion, "[...]" a cut (negation
boundary), and commas separate sibling elements. Parsing normalizes the
tree into canonical form — atoms sorted lexicographically, cuts sorted
by their own canonical serialization — so structural equality is plain
string comparison of the serialized forms.

# Usage

	eng := egraph.New()

	g, err := eng.Parse("([[a]], b)")
	if err != nil {
		log.Fatal(err)
	}

	// Enumerate legal moves, then apply one by path.
	for _, p := range eng.PossibleDoubleCuts(g) {
		next, err := eng.DoubleCut(g, p)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(eng.Serialize(next)) // (a, b)
	}

The heavy lifting lives in pkg/domain (the tree model and path
queries), pkg/schema (the textual codec), and pkg/rules (the inference
engines); this package is a thin facade that bundles them behind one
entry point with optional structured logging.
*/
package egraph
