package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenNumber     // 123, 3.14, 1e-10
	TokenString     // "hello"
	TokenIdentifier // name

	// Keywords
	TokenLet    // let
	TokenFn     // fn
	TokenIf     // if
	TokenElse   // else
	TokenFor    // for
	TokenWhile  // while
	TokenReturn // return
	TokenTrue   // true
	TokenFalse  // false
	TokenInf    // inf
	TokenNaN    // nan
	TokenPi     // pi
	TokenE      // e

	// Single-character symbols
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenPercent      // %
	TokenCaret        // ^
	TokenEqual        // =
	TokenLess         // <
	TokenGreater      // >
	TokenBang         // !
	TokenParenOpen    // (
	TokenParenClose   // )
	TokenBracketOpen  // [
	TokenBracketClose // ]
	TokenBraceOpen    // {
	TokenBraceClose   // }
	TokenComma        // ,
	TokenDot          // .
	TokenColon        // :
	TokenSemicolon    // ;

	// Two-character symbols
	TokenEqEq         // ==
	TokenNotEqual     // !=
	TokenLessEqual    // <=
	TokenGreaterEqual // >=
	TokenArrow        // ->
	TokenPower        // **
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenString:
		return "(string)"
	case TokenIdentifier:
		return "(identifier)"
	case TokenLet:
		return "let"
	case TokenFn:
		return "fn"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenFor:
		return "for"
	case TokenWhile:
		return "while"
	case TokenReturn:
		return "return"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenInf:
		return "inf"
	case TokenNaN:
		return "nan"
	case TokenPi:
		return "pi"
	case TokenE:
		return "e"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenCaret:
		return "^"
	case TokenEqual:
		return "="
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenBang:
		return "!"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenBracketOpen:
		return "["
	case TokenBracketClose:
		return "]"
	case TokenBraceOpen:
		return "{"
	case TokenBraceClose:
		return "}"
	case TokenComma:
		return ","
	case TokenDot:
		return "."
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenEqEq:
		return "=="
	case TokenNotEqual:
		return "!="
	case TokenLessEqual:
		return "<="
	case TokenGreaterEqual:
		return ">="
	case TokenArrow:
		return "->"
	case TokenPower:
		return "**"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in a numu expression.
// Tokens are ephemeral value types owned by whoever requests them; the
// lexer keeps no token history.
type Token struct {
	Type     TokenType // Type of the token
	Value    string    // Literal text of the token (raw body for strings)
	NumValue float64   // Parsed value, set only for TokenNumber
	Line     int       // 1-based source line of the token start
	Column   int       // 1-based source column of the token start
}

// symbols1 maps single-character symbols to token types.
var symbols1 = [...]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'^': TokenCaret,
	'=': TokenEqual,
	'<': TokenLess,
	'>': TokenGreater,
	'!': TokenBang,
	'(': TokenParenOpen,
	')': TokenParenClose,
	'[': TokenBracketOpen,
	']': TokenBracketClose,
	'{': TokenBraceOpen,
	'}': TokenBraceClose,
	',': TokenComma,
	'.': TokenDot,
	':': TokenColon,
	';': TokenSemicolon,
}

// byteTokenType pairs a trailing byte with its corresponding token type.
type byteTokenType struct {
	b  byte
	tt TokenType
}

// symbols2 maps two-character symbol sequences to token types, keyed by
// the first character. Two-character operators are matched greedily
// before falling back to single-character tokens.
var symbols2 = [...][]byteTokenType{
	'=': {{'=', TokenEqEq}},
	'!': {{'=', TokenNotEqual}},
	'<': {{'=', TokenLessEqual}},
	'>': {{'=', TokenGreaterEqual}},
	'-': {{'>', TokenArrow}},
	'*': {{'*', TokenPower}},
}

const (
	symbol1Count = len(symbols1)
	symbol2Count = len(symbols2)
)

// lookupSymbol1 returns the token type for a single-character symbol.
// Returns 0 if the byte is not a valid symbol.
func lookupSymbol1(b byte) TokenType {
	if int(b) >= symbol1Count {
		return 0
	}
	return symbols1[b]
}

// lookupSymbol2 returns possible two-character symbol completions.
// Returns nil if the byte cannot start a two-character symbol.
func lookupSymbol2(b byte) []byteTokenType {
	if int(b) >= symbol2Count {
		return nil
	}
	return symbols2[b]
}

// lookupKeyword returns the token type for a keyword.
// Returns 0 if the string is not a recognized keyword.
func lookupKeyword(s string) TokenType {
	switch s {
	case "let":
		return TokenLet
	case "fn":
		return TokenFn
	case "if":
		return TokenIf
	case "else":
		return TokenElse
	case "for":
		return TokenFor
	case "while":
		return TokenWhile
	case "return":
		return TokenReturn
	case "true":
		return TokenTrue
	case "false":
		return TokenFalse
	case "inf":
		return TokenInf
	case "nan":
		return TokenNaN
	case "pi":
		return TokenPi
	case "e":
		return TokenE
	default:
		return 0
	}
}
