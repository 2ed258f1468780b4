package main

import (
	"fmt"

	"github.com/aretw0/egraph"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of egraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("egraph version %s\n", egraph.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
