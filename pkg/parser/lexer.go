package parser

import (
	"fmt"
	"strconv"

	"github.com/numulang/numu/pkg/types"
)

// Lexer converts a numu expression into a sequence of tokens.
//
// The cursor (byte position, line, column) advances monotonically and
// never rewinds. Once the input is exhausted, Next returns TokenEOF for
// every subsequent call. A lexical error is fatal: Next returns a
// TokenError token, the structured error is latched and available via
// Error, and all further calls return the same error token.
type Lexer struct {
	input string
	pos   int // current byte position
	line  int // 1-based current line
	col   int // 1-based current column
	err   *types.Error
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Next returns the next token from the input.
func (l *Lexer) Next() Token {
	if l.err != nil {
		return Token{Type: TokenError, Line: l.err.Line, Column: l.err.Column}
	}

	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Line: l.line, Column: l.col}
	}

	startLine, startCol := l.line, l.col
	c := l.input[l.pos]

	// Numbers, including ones that start with a bare decimal point.
	if isDigit(c) || (c == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1])) {
		return l.scanNumber(startLine, startCol)
	}

	if isIdentStart(c) {
		return l.scanIdentifier(startLine, startCol)
	}

	if c == '"' {
		return l.scanString(startLine, startCol)
	}

	// Two-character operators match greedily before single-character ones.
	if l.pos+1 < len(l.input) {
		for _, cand := range lookupSymbol2(c) {
			if l.input[l.pos+1] == cand.b {
				value := l.input[l.pos : l.pos+2]
				l.advance()
				l.advance()
				return Token{Type: cand.tt, Value: value, Line: startLine, Column: startCol}
			}
		}
	}

	if tt := lookupSymbol1(c); tt > 0 {
		l.advance()
		return Token{Type: tt, Value: string(c), Line: startLine, Column: startCol}
	}

	return l.error(types.ErrUnexpectedChar, fmt.Sprintf("Unexpected character: %q", string(c)), startLine, startCol)
}

// Error returns the first lexical error encountered, if any.
func (l *Lexer) Error() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Input returns the source text being tokenized.
func (l *Lexer) Input() string {
	return l.input
}

// scanNumber reads a maximal number literal: a digit sequence with at
// most one decimal point and at most one exponent marker followed by an
// optional sign. The consumed text is then parsed as a float64; text the
// grammar admits but strconv rejects (e.g. a dangling exponent) is a
// lexical error.
func (l *Lexer) scanNumber(startLine, startCol int) Token {
	start := l.pos
	hasDecimal := false
	hasExponent := false

	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isDigit(c):
			l.advance()
		case c == '.' && !hasDecimal && !hasExponent:
			hasDecimal = true
			l.advance()
		case (c == 'e' || c == 'E') && !hasExponent:
			hasExponent = true
			l.advance()
			if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
				l.advance()
			}
		default:
			goto done
		}
	}
done:

	text := l.input[start:l.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.error(types.ErrInvalidNumber, fmt.Sprintf("Invalid number format: %q", text), startLine, startCol)
	}

	return Token{Type: TokenNumber, Value: text, NumValue: value, Line: startLine, Column: startCol}
}

// scanIdentifier reads an identifier and classifies it against the
// keyword table.
func (l *Lexer) scanIdentifier(startLine, startCol int) Token {
	start := l.pos
	for l.pos < len(l.input) && isIdentContinue(l.input[l.pos]) {
		l.advance()
	}

	text := l.input[start:l.pos]
	tt := lookupKeyword(text)
	if tt == 0 {
		tt = TokenIdentifier
	}

	return Token{Type: tt, Value: text, Line: startLine, Column: startCol}
}

// scanString reads a double-quoted string literal. A backslash escapes
// the following character; escapes are not interpreted at lex time, the
// raw text between the quotes is stored. An embedded newline is legal
// and advances the line bookkeeping. EOF before the closing quote is a
// lexical error.
func (l *Lexer) scanString(startLine, startCol int) Token {
	l.advance() // opening quote
	start := l.pos

	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		if l.input[l.pos] == '\\' {
			l.advance()
			if l.pos >= len(l.input) {
				break
			}
		}
		l.advance()
	}

	if l.pos >= len(l.input) {
		return l.error(types.ErrStringNotClosed, "Unterminated string literal", l.line, l.col)
	}

	text := l.input[start:l.pos]
	l.advance() // closing quote

	return Token{Type: TokenString, Value: text, Line: startLine, Column: startCol}
}

// skipWhitespace consumes whitespace and line comments. A newline
// increments the line counter and resets the column to 1; \r\n counts as
// a single newline. A # comment runs to end of line and produces no
// token.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t':
			l.pos++
			l.col++
		case '\n':
			l.pos++
			l.line++
			l.col = 1
		case '\r':
			l.pos++
			if l.pos < len(l.input) && l.input[l.pos] == '\n' {
				l.pos++
			}
			l.line++
			l.col = 1
		case '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
				l.col++
			}
		default:
			return
		}
	}
}

// advance consumes one byte, maintaining line and column bookkeeping.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) error(code types.ErrorCode, message string, line, col int) Token {
	l.err = types.NewLexError(code, message, line, col)
	return Token{Type: TokenError, Line: line, Column: col}
}

// Character classification functions

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
