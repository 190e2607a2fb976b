// Command bigcalc is a small arbitrary-precision calculator exercising the
// gobig and gobig/modular packages from the command line. Grounded on
// oisee-z80-optimizer's cmd/z80opt/main.go: a cobra root command with one
// leaf subcommand per operation, each a RunE that wraps its own errors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
	}
	rootCmd.AddCommand(
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newDivCmd(),
		newPowCmd(),
		newModCmd(),
		newParseCmd(),
		newHumanizeCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}
}
