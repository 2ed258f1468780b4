package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/egraph/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for an existential graph.
// Each cut becomes a nested subgraph box, atoms become stadium nodes,
// and cuts are styled with a dashed border to read as negation
// boundaries.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	var cutIDs []string

	sb.WriteString("graph TD\n")
	writeNode(&sb, g, "g", 1, &cutIDs)

	if len(cutIDs) > 0 {
		sb.WriteString("\n    classDef cut fill:#fafafa,stroke:#555,stroke-dasharray: 3 3;\n")
		sb.WriteString(fmt.Sprintf("    class %s cut;\n", strings.Join(cutIDs, ",")))
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, g *domain.Graph, id string, indent int, cutIDs *[]string) {
	pad := strings.Repeat("    ", indent)

	title := "cut"
	if g.IsSheet {
		title = "sheet of assertion"
	} else {
		*cutIDs = append(*cutIDs, id)
	}
	sb.WriteString(fmt.Sprintf("%ssubgraph %s[\"%s\"]\n", pad, id, title))

	if g.Size() == 0 {
		// Mermaid collapses empty subgraphs; keep the blank assertion visible.
		sb.WriteString(fmt.Sprintf("%s    %s_blank(( ))\n", pad, id))
	}
	for i, atom := range g.Atoms {
		label := strings.ReplaceAll(atom, "\"", "'")
		sb.WriteString(fmt.Sprintf("%s    %s_a%d([\"%s\"])\n", pad, id, i, label))
	}
	for i, sub := range g.Subgraphs {
		writeNode(sb, sub, fmt.Sprintf("%s_c%d", id, i), indent+1, cutIDs)
	}
	sb.WriteString(pad + "end\n")
}
