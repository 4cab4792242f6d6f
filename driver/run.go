package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/azula-lang/azula/lexer"
	"github.com/azula-lang/azula/token"
	"github.com/azula-lang/azula/utils"
)

// Pass transforms or inspects a token stream.
type Pass interface {
	Run([]token.Token) ([]token.Token, error)
}

type Runner struct {
	passes []Pass
}

func NewRunner() *Runner {
	return &Runner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *Runner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If a pass fails, it stops and returns the stream as it stands.
func (r *Runner) Run(tokens []token.Token) ([]token.Token, error) {
	for _, pass := range r.passes {
		var err error
		tokens, err = pass.Run(tokens)
		if err != nil {
			return tokens, fmt.Errorf("run: %w", err)
		}
	}

	return tokens, nil
}

// RunSource tokenizes the source and executes passes in order.
func (r *Runner) RunSource(file, source string) ([]token.Token, error) {
	return r.Run(lexer.Lex(file, source))
}

// RunFile reads the file in one up-front operation, then tokenizes it.
func (r *Runner) RunFile(path string) ([]token.Token, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return r.RunSource(path, string(bytes))
}

// CheckIllegal reports every Illegal token in the stream as one joined
// error while passing the stream through unchanged. Scanning itself
// never fails on bad input; this pass is where a caller opts into
// treating it as fatal.
type CheckIllegal struct{}

func (CheckIllegal) Run(tokens []token.Token) ([]token.Token, error) {
	var err error
	for _, tok := range tokens {
		if tok.Kind == token.Illegal {
			err = errors.Join(err, utils.ErrorAt{Where: tok, Err: errors.New("illegal token")})
		}
	}

	return tokens, err
}
