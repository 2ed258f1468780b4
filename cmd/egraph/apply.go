package main

import (
	"fmt"
	"os"

	"github.com/aretw0/egraph/pkg/domain"
	"github.com/spf13/cobra"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply [expression]",
	Short: "Apply an inference rule at a path",
	Long: `Applies one rule at the element addressed by --path and prints the
resulting expression. Paths come from the moves command, e.g.:

  egraph apply "([[a]])" --rule doublecut --path 0`,
	Run: func(cmd *cobra.Command, args []string) {
		rule, _ := cmd.Flags().GetString("rule")
		pathSpec, _ := cmd.Flags().GetString("path")

		expr, err := readExpression(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		where, err := domain.ParsePath(pathSpec)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		eng := newEngine(cmd)
		g, err := eng.Parse(expr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var out *domain.Graph
		switch rule {
		case "doublecut":
			out, err = eng.DoubleCut(g, where)
		case "erasure":
			out, err = eng.Erase(g, where)
		case "deiteration":
			out, err = eng.Deiterate(g, where)
		default:
			fmt.Printf("Error: unknown rule %q (want doublecut, erasure or deiteration)\n", rule)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(eng.Serialize(out))
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("rule", "", "Rule to apply: doublecut, erasure or deiteration")
	applyCmd.Flags().String("path", "", "Comma-separated element path, e.g. 0,1")
	_ = applyCmd.MarkFlagRequired("rule")
	_ = applyCmd.MarkFlagRequired("path")
}
