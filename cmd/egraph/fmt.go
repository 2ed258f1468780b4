package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt [expression]",
	Short: "Print the canonical form of an expression",
	Long:  `Parses the expression and prints its canonical serialization (atoms sorted lexicographically, cuts sorted by their serialized form).`,
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
		fmt.Println(eng.Serialize(g))
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
