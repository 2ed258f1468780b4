package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/egraph/internal/presentation/graph"
	"github.com/aretw0/egraph/pkg/schema"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:  "Sheet With Atom And Nested Cuts",
			input: "(a, [b, [c]])",
			contains: []string{
				"graph TD",
				"subgraph g[\"sheet of assertion\"]",
				"g_a0([\"a\"])",
				"subgraph g_c0[\"cut\"]",
				"g_c0_a0([\"b\"])",
				"subgraph g_c0_c0[\"cut\"]",
				"g_c0_c0_a0([\"c\"])",
				"classDef cut",
				"class g_c0,g_c0_c0 cut;",
			},
		},
		{
			name:  "Blank Sheet Keeps A Placeholder",
			input: "()",
			contains: []string{
				"g_blank(( ))",
			},
		},
		{
			name:  "Empty Cut",
			input: "(a, [])",
			contains: []string{
				"g_c0_blank(( ))",
				"class g_c0 cut;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := schema.Parse(tt.input)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			out := graph.GenerateMermaid(g)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGenerateMermaid_NoCutStylingOnBlankSheet(t *testing.T) {
	g, err := schema.Parse("(a)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out := graph.GenerateMermaid(g)
	if strings.Contains(out, "classDef cut") {
		t.Errorf("sheet without cuts should not emit cut styling:\n%s", out)
	}
}
