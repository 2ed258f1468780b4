package main

import (
	"fmt"
	"os"

	"github.com/aretw0/egraph/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [expression]",
	Short: "Export a Mermaid visualization of an expression",
	Long:  `Parses the expression and outputs a Mermaid diagram (graph TD) with cuts drawn as nested dashed boxes.`,
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := readExpression(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		eng := newEngine(cmd)
		g, err := eng.Parse(expr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(g))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
