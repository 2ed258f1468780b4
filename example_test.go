package egraph_test

import (
	"fmt"

	"github.com/aretw0/egraph"
)

// Parsing normalizes the expression into canonical form: cuts before
// atoms, everything sorted.
func ExampleEngine_Parse() {
	eng := egraph.New()

	g, err := eng.Parse("(b, [c], a)")
	if err != nil {
		panic(err)
	}
	fmt.Println(eng.Serialize(g))
	// Output: ([c], a, b)
}

// A double cut — a cut directly and solely enclosing another cut — is
// removable without changing meaning.
func ExampleEngine_DoubleCut() {
	eng := egraph.New()

	g, err := eng.Parse("(b, [[a]])")
	if err != nil {
		panic(err)
	}

	for _, path := range eng.PossibleDoubleCuts(g) {
		next, err := eng.DoubleCut(g, path)
		if err != nil {
			panic(err)
		}
		fmt.Println(eng.Serialize(next.Normalize()))
	}
	// Output: (a, b)
}

// Erasure removes content from positively enclosed contexts; on
// "(a, [b])" the sheet's two elements qualify, nothing inside the cut
// does.
func ExampleEngine_Erase() {
	eng := egraph.New()

	g, err := eng.Parse("(a, [b])")
	if err != nil {
		panic(err)
	}

	paths := eng.PossibleErasures(g)
	for _, path := range paths {
		fmt.Println(path)
	}

	next, err := eng.Erase(g, paths[0])
	if err != nil {
		panic(err)
	}
	fmt.Println(eng.Serialize(next))
	// Output:
	// 0
	// 1
	// (a)
}

// Deiteration removes a copy already asserted in an enclosing scope.
func ExampleEngine_Deiterate() {
	eng := egraph.New()

	g, err := eng.Parse("(a, [a])")
	if err != nil {
		panic(err)
	}

	paths := eng.PossibleDeiterations(g)
	next, err := eng.Deiterate(g, paths[0])
	if err != nil {
		panic(err)
	}
	fmt.Println(eng.Serialize(next))
	// Output: ([], a)
}
