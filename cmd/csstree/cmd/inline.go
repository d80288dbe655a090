package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/csstree"
)

var inlineCmd = &cobra.Command{
	Use:   "inline [declarations]",
	Short: "Normalize a declaration list to inline style form",
	Long: `Parse a bare declaration list, such as the contents of a style
attribute, and print it in normalized inline form: whitespace collapsed,
no space before colons and semicolons, malformed declarations dropped.
Reads from stdin when no argument is given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = strings.Join(args, " ")
		} else {
			data, err := readInput(nil)
			if err != nil {
				return err
			}
			input = string(data)
		}
		nodes := csstree.ParseDeclarationList(input)
		fmt.Fprintln(cmd.OutOrStdout(), csstree.StringifyInline(nodes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inlineCmd)
}
