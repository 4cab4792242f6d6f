package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/azula-lang/azula/lexer"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var history = filepath.Join(xdg.DataHome, "azula", "history")

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively tokenize lines of input",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrompt()
	},
}

func runPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		for _, tok := range lexer.Lex("repl", input) {
			fmt.Println(tok)
		}
	}
}
