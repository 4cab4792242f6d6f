package cmd

import (
	"fmt"

	"github.com/azula-lang/azula/driver"
	"github.com/spf13/cobra"
)

var checkIllegal bool

var TokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := driver.NewRunner()
		if checkIllegal {
			runner.AddPass(driver.CheckIllegal{})
		}

		tokens, err := runner.RunFile(args[0])
		for _, tok := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}

		return err
	},
}

func init() {
	TokensCmd.Flags().BoolVar(&checkIllegal, "check", false, "fail if the stream contains illegal tokens")
}
