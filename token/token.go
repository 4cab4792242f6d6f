package token

import "fmt"

// TokenKind is the closed set of lexical categories. Every consumer that
// switches over a TokenKind must handle all variants or reject the rest.
type TokenKind int

const (
	Illegal TokenKind = iota
	EndOfFile

	// Literals and names.
	Type
	Identifier
	String
	Number

	// Declarative keywords.
	Function
	Return
	As
	Struct
	True
	False

	// Punctuation.
	Assign
	Colon
	Semicolon
	Comma

	// Operators.
	Plus
	Minus
	Asterisk
	Slash
	Modulo
	Eq
	NotEq
	Lt
	Gt
	LtEq
	GtEq
	Or
	And
	Not

	// Control flow keywords.
	If
	ElseIf
	Else
	Switch
	Default
	For

	// Delimiters.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
)

var kindNames = [...]string{
	Illegal:    "Illegal",
	EndOfFile:  "EndOfFile",
	Type:       "Type",
	Identifier: "Identifier",
	String:     "String",
	Number:     "Number",
	Function:   "Function",
	Return:     "Return",
	As:         "As",
	Struct:     "Struct",
	True:       "True",
	False:      "False",
	Assign:     "Assign",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Plus:       "Plus",
	Minus:      "Minus",
	Asterisk:   "Asterisk",
	Slash:      "Slash",
	Modulo:     "Modulo",
	Eq:         "Eq",
	NotEq:      "NotEq",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	Or:         "Or",
	And:        "And",
	Not:        "Not",
	If:         "If",
	ElseIf:     "ElseIf",
	Else:       "Else",
	Switch:     "Switch",
	Default:    "Default",
	For:        "For",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexical unit: its kind, the exact source substring it was
// scanned from, and where that substring starts. Literal is a copy, not a
// view into the source buffer, so tokens outlive the scanning pass.
type Token struct {
	Kind    TokenKind
	Literal string
	File    string
	Line    int // 1-based, line of the token's first character
	Column  int // 1-based, column of the token's first character
}

// String renders the diagnostic form. The shape is a compatibility
// surface; do not change field order or punctuation.
func (t Token) String() string {
	return fmt.Sprintf("Token %s (%s) in %s line %d, character %d", t.Kind, t.Literal, t.File, t.Line, t.Column)
}

var keywords = map[string]TokenKind{
	"func":    Function,
	"return":  Return,
	"as":      As,
	"struct":  Struct,
	"true":    True,
	"false":   False,
	"if":      If,
	"elseif":  ElseIf,
	"else":    Else,
	"switch":  Switch,
	"default": Default,
	"for":     For,

	"int":    Type,
	"float":  Type,
	"string": Type,
	"bool":   Type,
	"void":   Type,
}

// LookupIdent resolves an identifier-shaped run against the keyword
// table. Matches are exact and case-sensitive; anything else is an
// ordinary Identifier. The table is never mutated after init, so
// concurrent lookups need no locking.
func LookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}
