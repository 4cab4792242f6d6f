package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "azula",
	Short: "Azula compiler front-end",
	Long: `Tools for working with Azula (.azl) source files.

Commands:
  tokens  Print the token stream of a source file
  repl    Interactively tokenize lines of input
`,
	SilenceUsage: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(TokensCmd, ReplCmd)
}
