package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csstree",
	Short: "Parse, transform and re-emit CSS",
	Long: `csstree parses stylesheets into a token-preserving parse tree
and writes them back out. Unmodified input round-trips byte for byte.

Commands:
  fmt      - re-emit a stylesheet from its parse tree
  inline   - normalize a declaration list to inline style form`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
