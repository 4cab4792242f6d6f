package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/azula-lang/azula/token"
)

// Lexer walks an in-memory source string and emits one token per lexical
// unit. It never fails: input it cannot classify comes back as Illegal
// tokens and the caller decides what to do with them.
type Lexer struct {
	file   string
	source string

	start   int // start of current lexeme
	current int // current position in source
	line    int // line of the next character to be consumed
	column  int // column of the next character to be consumed

	startLine   int // position of the current lexeme's first character
	startColumn int
}

func New(file, source string) *Lexer {
	return &Lexer{
		file:   file,
		source: source,
		line:   1,
		column: 1,
	}
}

// Lex scans the whole source and returns the finite token sequence,
// terminated by exactly one EndOfFile token.
func Lex(file, source string) []token.Token {
	lexer := New(file, source)
	var tokens []token.Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			return tokens
		}
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *Lexer) peekNext() rune {
	_, width := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+width >= len(l.source) {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current+width:])

	return runeValue
}

// advance consumes one character and keeps the line/column bookkeeping in
// one place so every scanning branch records positions the same way.
func (l *Lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	if runeValue == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	return runeValue
}

// emit builds a token for the current lexeme. Literal is the exact source
// substring; positions are those of the lexeme's first character.
func (l *Lexer) emit(kind token.TokenKind) token.Token {
	return token.Token{
		Kind:    kind,
		Literal: l.source[l.start:l.current],
		File:    l.file,
		Line:    l.startLine,
		Column:  l.startColumn,
	}
}

// NextToken scans and returns the next token. Once the end of the source
// is reached it returns the EndOfFile sentinel on every call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	if l.isAtEnd() {
		return l.emit(token.EndOfFile)
	}

	char := l.advance()
	switch char {
	case '(':
		return l.emit(token.LParen)
	case ')':
		return l.emit(token.RParen)
	case '{':
		return l.emit(token.LBrace)
	case '}':
		return l.emit(token.RBrace)
	case '[':
		return l.emit(token.LBracket)
	case ']':
		return l.emit(token.RBracket)
	case ':':
		return l.emit(token.Colon)
	case ';':
		return l.emit(token.Semicolon)
	case ',':
		return l.emit(token.Comma)
	case '+':
		return l.emit(token.Plus)
	case '-':
		return l.emit(token.Minus)
	case '*':
		return l.emit(token.Asterisk)
	case '%':
		return l.emit(token.Modulo)
	case '/':
		if l.peek() == '/' {
			l.skipComment()

			return l.NextToken()
		}

		return l.emit(token.Slash)
	case '=':
		if l.peek() == '=' {
			l.advance()

			return l.emit(token.Eq)
		}

		return l.emit(token.Assign)
	case '!':
		if l.peek() == '=' {
			l.advance()

			return l.emit(token.NotEq)
		}

		return l.emit(token.Not)
	case '<':
		if l.peek() == '=' {
			l.advance()

			return l.emit(token.LtEq)
		}

		return l.emit(token.Lt)
	case '>':
		if l.peek() == '=' {
			l.advance()

			return l.emit(token.GtEq)
		}

		return l.emit(token.Gt)
	case '|':
		if l.peek() == '|' {
			l.advance()

			return l.emit(token.Or)
		}

		return l.emit(token.Illegal)
	case '&':
		if l.peek() == '&' {
			l.advance()

			return l.emit(token.And)
		}

		return l.emit(token.Illegal)
	case '"':
		return l.scanString()
	}

	if isDigit(char) {
		return l.scanNumber()
	}
	if isAlpha(char) {
		return l.scanIdentifier()
	}

	return l.emit(token.Illegal)
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

// scanString consumes up to and including the closing quote. The literal
// keeps both quotes so it matches the source substring exactly. A string
// still open at end of input becomes one Illegal token covering the
// whole partial run.
func (l *Lexer) scanString() token.Token {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\\' {
			l.advance()
			if l.isAtEnd() {
				return l.emit(token.Illegal)
			}
		}
		l.advance()
	}

	if l.isAtEnd() {
		return l.emit(token.Illegal)
	}

	l.advance()

	return l.emit(token.String)
}

// scanNumber consumes a digit run, with at most one interior '.' that
// must itself be followed by a digit.
func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.emit(token.Number)
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	return l.emit(token.LookupIdent(l.source[l.start:l.current]))
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
