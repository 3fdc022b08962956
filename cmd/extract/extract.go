// Package extract holds the "extract statement" and "extract batch"
// commands that expose the extraction pipeline as a CLI.
package extract

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command grouping the statement and batch subcommands.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a normalized ledger from bank statement PDFs",
}

func init() {
	Cmd.AddCommand(statementCmd)
	Cmd.AddCommand(batchCmd)
}
