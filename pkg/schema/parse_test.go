package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/egraph/pkg/schema"
)

func TestParse_SheetWithAtomAndCut(t *testing.T) {
	g, err := schema.Parse("(a, [b])")
	require.NoError(t, err)

	assert.True(t, g.IsSheet)
	assert.Equal(t, []string{"a"}, g.Atoms)
	require.Len(t, g.Subgraphs, 1)
	assert.False(t, g.Subgraphs[0].IsSheet)
	assert.Equal(t, []string{"b"}, g.Subgraphs[0].Atoms)

	// Children serialize before atoms; reparsing the canonical form
	// yields a structurally equal graph.
	out := schema.Serialize(g)
	assert.Equal(t, "([b], a)", out)

	back, err := schema.Parse(out)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestParse_CutRoot(t *testing.T) {
	g, err := schema.Parse("[a, b]")
	require.NoError(t, err)
	assert.False(t, g.IsSheet)
	assert.Equal(t, "[a, b]", g.String())
}

func TestParse_EmptyBracketPair(t *testing.T) {
	g, err := schema.Parse("(  )")
	require.NoError(t, err)
	assert.True(t, g.IsSheet)
	assert.Zero(t, g.Size(), "the blank assertion has no elements")
	assert.Equal(t, "()", g.String())
}

func TestParse_WhitespaceInsensitive(t *testing.T) {
	a, err := schema.Parse("  ( b ,[ c,d ],  a )\n")
	require.NoError(t, err)
	b, err := schema.Parse("(b,[c,d],a)")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "([c, d], a, b)", a.String())
}

func TestParse_NormalizesElementOrder(t *testing.T) {
	a, err := schema.Parse("([b], [a], z, y)")
	require.NoError(t, err)
	assert.Equal(t, "([a], [b], y, z)", a.String())
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty Input", input: ""},
		{name: "Whitespace Only", input: "   "},
		{name: "Single Character", input: "("},
		{name: "No Brackets", input: "a, b"},
		{name: "Unknown Opening Bracket", input: "{a}"},
		{name: "Mismatched Outer Pair", input: "(a]"},
		{name: "Mismatched Outer Pair Reversed", input: "[a)"},
		{name: "Unclosed Cut", input: "(a, [b)"},
		{name: "Stray Closing Bracket", input: "(a]b])"},
		{name: "Empty Element", input: "(a,,b)"},
		{name: "Trailing Separator", input: "(a,)"},
		{name: "Cut Followed By Junk", input: "([a] b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrParse)
		})
	}
}

func TestParse_ErrorReportsPosition(t *testing.T) {
	_, err := schema.Parse("(a,,b)")
	require.Error(t, err)

	var perr *schema.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Pos)
	assert.Equal(t, "empty element", perr.Reason)
}

func TestParse_UnbalancedReportsPosition(t *testing.T) {
	_, err := schema.Parse("([a)")
	require.Error(t, err)

	var perr *schema.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Pos)
	assert.Contains(t, perr.Reason, "unbalanced")
}
