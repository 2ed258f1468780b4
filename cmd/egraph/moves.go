package main

import (
	"fmt"
	"os"

	"github.com/aretw0/egraph/pkg/domain"
	"github.com/spf13/cobra"
)

// movesCmd represents the moves command
var movesCmd = &cobra.Command{
	Use:   "moves [expression]",
	Short: "List the legal rule applications for an expression",
	Long: `Enumerates every path where an inference rule may fire. Each line
shows the rule, the comma-separated path, and the element the path
addresses.`,
	Run: func(cmd *cobra.Command, args []string) {
		rule, _ := cmd.Flags().GetString("rule")
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

		printMoves := func(name string, paths []domain.Path) {
			for _, p := range paths {
				fmt.Printf("%s\t%s\t%s\n", name, p, describe(g, p))
			}
		}

		switch rule {
		case "doublecut":
			printMoves("doublecut", eng.PossibleDoubleCuts(g))
		case "erasure":
			printMoves("erasure", eng.PossibleErasures(g))
		case "deiteration":
			printMoves("deiteration", eng.PossibleDeiterations(g))
		case "all":
			printMoves("doublecut", eng.PossibleDoubleCuts(g))
			printMoves("erasure", eng.PossibleErasures(g))
			printMoves("deiteration", eng.PossibleDeiterations(g))
		default:
			fmt.Printf("Error: unknown rule %q (want doublecut, erasure, deiteration or all)\n", rule)
			os.Exit(1)
		}
	},
}

// describe renders the element a path addresses, for human inspection.
func describe(g *domain.Graph, p domain.Path) string {
	parent, err := g.Descend(p[:len(p)-1])
	if err != nil {
		return "?"
	}
	sub, atom, err := parent.At(p[len(p)-1])
	if err != nil {
		return "?"
	}
	if sub != nil {
		return sub.String()
	}
	return atom
}

func init() {
	rootCmd.AddCommand(movesCmd)

	movesCmd.Flags().String("rule", "all", "Rule to enumerate: doublecut, erasure, deiteration or all")
}
