package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numulang/numu/pkg/types"
)

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()

	l := NewLexer(input)
	var out []Token
	for {
		tok := l.Next()
		if tok.Type == TokenError {
			t.Fatalf("unexpected lexical error for %q: %v", input, l.Error())
		}
		if tok.Type == TokenEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexerTokenTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "arithmetic",
			input:    "1 + 2 * 3 - 4 / 5 % 6 ^ 7",
			expected: []TokenType{TokenNumber, TokenPlus, TokenNumber, TokenStar, TokenNumber, TokenMinus, TokenNumber, TokenSlash, TokenNumber, TokenPercent, TokenNumber, TokenCaret, TokenNumber},
		},
		{
			name:     "grouping and separators",
			input:    "( ) [ ] { } , . : ;",
			expected: []TokenType{TokenParenOpen, TokenParenClose, TokenBracketOpen, TokenBracketClose, TokenBraceOpen, TokenBraceClose, TokenComma, TokenDot, TokenColon, TokenSemicolon},
		},
		{
			name:     "two character operators",
			input:    "== != <= >= -> **",
			expected: []TokenType{TokenEqEq, TokenNotEqual, TokenLessEqual, TokenGreaterEqual, TokenArrow, TokenPower},
		},
		{
			name:     "greedy two char over single",
			input:    "<=<",
			expected: []TokenType{TokenLessEqual, TokenLess},
		},
		{
			name:     "keywords",
			input:    "let fn if else for while return true false inf nan pi e",
			expected: []TokenType{TokenLet, TokenFn, TokenIf, TokenElse, TokenFor, TokenWhile, TokenReturn, TokenTrue, TokenFalse, TokenInf, TokenNaN, TokenPi, TokenE},
		},
		{
			name:     "identifiers",
			input:    "x _y foo2 piX",
			expected: []TokenType{TokenIdentifier, TokenIdentifier, TokenIdentifier, TokenIdentifier},
		},
		{
			name:     "bang and comparisons",
			input:    "!x < y > z = w",
			expected: []TokenType{TokenBang, TokenIdentifier, TokenLess, TokenIdentifier, TokenGreater, TokenIdentifier, TokenEqual, TokenIdentifier},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := collectTokens(t, tc.input)
			got := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				got[i] = tok.Type
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value float64
		text  string
	}{
		{name: "integer", input: "42", value: 42, text: "42"},
		{name: "decimal", input: "3.14", value: 3.14, text: "3.14"},
		{name: "leading dot", input: ".5", value: 0.5, text: ".5"},
		{name: "exponent", input: "1e3", value: 1000, text: "1e3"},
		{name: "exponent with sign", input: "2.5e-2", value: 0.025, text: "2.5e-2"},
		{name: "uppercase exponent", input: "1E2", value: 100, text: "1E2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := collectTokens(t, tc.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenNumber, tokens[0].Type)
			assert.Equal(t, tc.value, tokens[0].NumValue)
			assert.Equal(t, tc.text, tokens[0].Value)
		})
	}
}

func TestLexerInvalidNumber(t *testing.T) {
	// The grammar consumes the dangling exponent; parsing the value fails.
	l := NewLexer("1e+")
	tok := l.Next()
	assert.Equal(t, TokenError, tok.Type)

	err := l.Error()
	require.Error(t, err)
	var numuErr *types.Error
	require.ErrorAs(t, err, &numuErr)
	assert.Equal(t, types.ErrInvalidNumber, numuErr.Code)
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		body  string
	}{
		{name: "simple", input: `"hello"`, body: "hello"},
		{name: "empty", input: `""`, body: ""},
		// Escapes are not interpreted at lex time; the raw text between
		// the quotes is stored.
		{name: "escaped quote", input: `"a\"b"`, body: `a\"b`},
		{name: "escaped backslash", input: `"a\\b"`, body: `a\\b`},
		{name: "embedded newline", input: "\"a\nb\"", body: "a\nb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := collectTokens(t, tc.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenString, tokens[0].Type)
			assert.Equal(t, tc.body, tokens[0].Value)
		})
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"abc`)
	tok := l.Next()
	assert.Equal(t, TokenError, tok.Type)

	var numuErr *types.Error
	require.ErrorAs(t, l.Error(), &numuErr)
	assert.Equal(t, types.ErrStringNotClosed, numuErr.Code)
	assert.True(t, numuErr.IsLexError())
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	l := NewLexer("1 + @")
	l.Next() // 1
	l.Next() // +
	tok := l.Next()
	assert.Equal(t, TokenError, tok.Type)

	var numuErr *types.Error
	require.ErrorAs(t, l.Error(), &numuErr)
	assert.Equal(t, types.ErrUnexpectedChar, numuErr.Code)
	assert.Equal(t, 1, numuErr.Line)
	assert.Equal(t, 5, numuErr.Column)
}

func TestLexerComments(t *testing.T) {
	tokens := collectTokens(t, "1 # one\n+ 2 # two")
	got := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Type
	}
	assert.Equal(t, []TokenType{TokenNumber, TokenPlus, TokenNumber}, got)
}

func TestLexerPositions(t *testing.T) {
	tokens := collectTokens(t, "ab + c\r\n  de\n\"x\" f")
	type pos struct{ line, col int }
	want := []pos{
		{1, 1},  // ab
		{1, 4},  // +
		{1, 6},  // c
		{2, 3},  // de
		{3, 1},  // "x"
		{3, 5},  // f
	}
	require.Len(t, tokens, len(want))
	for i, tok := range tokens {
		assert.Equal(t, want[i].line, tok.Line, "token %d line", i)
		assert.Equal(t, want[i].col, tok.Column, "token %d column", i)
	}
}

func TestLexerEOFIsIdempotent(t *testing.T) {
	l := NewLexer("x")
	assert.Equal(t, TokenIdentifier, l.Next().Type)
	for i := 0; i < 5; i++ {
		assert.Equal(t, TokenEOF, l.Next().Type)
	}
}

func TestLexerRoundTrip(t *testing.T) {
	// Concatenating token texts with single separators reconstructs the
	// token boundaries of the source.
	inputs := []string{
		"1 + 2 * 3",
		"x = sin ( pi / 4 )",
		"[ [ 1 , 2 ] , [ 3 , 4 ] ]",
		"a == b != c <= d",
	}
	for _, input := range inputs {
		tokens := collectTokens(t, input)
		rebuilt := ""
		for i, tok := range tokens {
			if i > 0 {
				rebuilt += " "
			}
			rebuilt += tok.Value
		}
		assert.Equal(t, input, rebuilt)
	}
}
