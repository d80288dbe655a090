package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/csstree"
)

var stripComments bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Re-emit a stylesheet from its parse tree",
	Long: `Parse a stylesheet and write it back out. Without flags the
output is identical to the input; --strip-comments removes comments.
Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		nodes := csstree.Parse(string(data))
		out := csstree.Stringify(nodes, &csstree.StringifyOptions{ExcludeComments: stripComments})
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func init() {
	fmtCmd.Flags().BoolVar(&stripComments, "strip-comments", false, "remove comments from the output")
	rootCmd.AddCommand(fmtCmd)
}
