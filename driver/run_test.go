package driver_test

import (
	"strings"
	"testing"

	"github.com/azula-lang/azula/driver"
	"github.com/azula-lang/azula/token"
	"github.com/google/go-cmp/cmp"
)

func TestRunSourceWithoutPasses(t *testing.T) {
	t.Parallel()
	runner := driver.NewRunner()
	tokens, err := runner.RunSource("t.az", "return 1;")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}

	want := []token.Token{
		{Kind: token.Return, Literal: "return", File: "t.az", Line: 1, Column: 1},
		{Kind: token.Number, Literal: "1", File: "t.az", Line: 1, Column: 8},
		{Kind: token.Semicolon, Literal: ";", File: "t.az", Line: 1, Column: 9},
		{Kind: token.EndOfFile, Literal: "", File: "t.az", Line: 1, Column: 10},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("RunSource mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckIllegal(t *testing.T) {
	t.Parallel()
	runner := driver.NewRunner()
	runner.AddPass(driver.CheckIllegal{})

	tokens, err := runner.RunSource("bad.azl", "@ $")
	if err == nil {
		t.Fatal("expected error for illegal tokens, got nil")
	}

	// The stream still comes back intact; only the error reports the
	// illegal tokens.
	kinds := make([]token.TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	wantKinds := []token.TokenKind{token.Illegal, token.Illegal, token.EndOfFile}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	msg := err.Error()
	for _, fragment := range []string{
		"Token Illegal (@) in bad.azl line 1, character 1: illegal token",
		"Token Illegal ($) in bad.azl line 1, character 3: illegal token",
	} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("error %q does not contain %q", msg, fragment)
		}
	}
}

func TestCheckIllegalCleanStream(t *testing.T) {
	t.Parallel()
	runner := driver.NewRunner()
	runner.AddPass(driver.CheckIllegal{})

	if _, err := runner.RunSource("ok.azl", "x = 1;"); err != nil {
		t.Errorf("expected no error for a clean stream, got %v", err)
	}
}

func TestRunFileMissing(t *testing.T) {
	t.Parallel()
	runner := driver.NewRunner()
	if _, err := runner.RunFile("testdata/does-not-exist.azl"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
