package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/egraph"
	"github.com/aretw0/egraph/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "egraph",
	Short: "egraph manipulates Peirce existential graphs",
	Long: `egraph parses, normalizes and transforms existential graphs.

Expressions use "(...)" for the sheet of assertion, "[...]" for cuts and
commas between sibling elements, e.g. "([[a]], b)". Commands read the
expression from the first argument or from stdin.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log rule applications to stderr")
}

// newEngine builds the library facade honoring the --verbose flag.
func newEngine(cmd *cobra.Command) *egraph.Engine {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return egraph.New(egraph.WithLogger(logging.New(slog.LevelDebug)))
	}
	return egraph.New()
}
