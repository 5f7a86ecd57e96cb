// Command portalctl runs maintenance tasks against the portal database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portalctl",
		Short: "BizEase portal maintenance",
		Long: `portalctl manages the BizEase portal database.

It reads the same configuration as the portal server and can:
  - apply or revert schema migrations
  - load demo data for local environments
  - run the compliance reminder sweep once`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(remindersCmd())

	return rootCmd
}
