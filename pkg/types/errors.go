package types

import "fmt"

// ErrorCode classifies a numu error. Codes are grouped in families:
// Lxxxx lexical, Pxxxx parse, Exxxx evaluation.
type ErrorCode string

const (
	// Lxxxx: lexical errors
	ErrUnexpectedChar  ErrorCode = "L0001"
	ErrInvalidNumber   ErrorCode = "L0002"
	ErrStringNotClosed ErrorCode = "L0003"

	// Pxxxx: parse errors
	ErrEmptyExpression     ErrorCode = "P0001"
	ErrExpectedExpression  ErrorCode = "P0002"
	ErrExpectedToken       ErrorCode = "P0003"
	ErrInvalidAssignTarget ErrorCode = "P0004"
	ErrInvalidCallTarget   ErrorCode = "P0005"
	ErrTrailingTokens      ErrorCode = "P0006"
	ErrNestingTooDeep      ErrorCode = "P0007"

	// Exxxx: evaluation errors
	ErrUndefinedVariable ErrorCode = "E0001"
	ErrUnknownFunction   ErrorCode = "E0002"
	ErrArgumentCount     ErrorCode = "E0003"
	ErrDivisionByZero    ErrorCode = "E0004"
	ErrModuloByZero      ErrorCode = "E0005"
	ErrLogDomain         ErrorCode = "E0006"
	ErrSqrtDomain        ErrorCode = "E0007"
	ErrUnknownBinaryOp   ErrorCode = "E0008"
	ErrUnknownUnaryOp    ErrorCode = "E0009"
	ErrUnknownNodeKind   ErrorCode = "E0010"
	ErrNotImplemented    ErrorCode = "E0011"
	ErrFunctionExists    ErrorCode = "E0012"
	ErrMaxDepthExceeded  ErrorCode = "E0013"
)

// Error represents a structured numu error.
//
// Lexical and parse errors carry a 1-based source position. Evaluation
// errors carry only a message: AST nodes store no source location.
// Every error is terminal for the operation that raised it; nothing in
// this module retries or recovers.
type Error struct {
	Code    ErrorCode
	Message string
	Line    int // 1-based; 0 when the error has no source position
	Column  int // 1-based; 0 when the error has no source position
	Token   string
	Err     error
}

// NewLexError creates a lexical error at the given source position.
func NewLexError(code ErrorCode, message string, line, column int) *Error {
	return &Error{Code: code, Message: message, Line: line, Column: column}
}

// NewParseError creates a parse error at the given source position.
func NewParseError(code ErrorCode, message string, line, column int) *Error {
	return &Error{Code: code, Message: message, Line: line, Column: column}
}

// NewEvalError creates an evaluation error. Evaluation errors have no
// source position.
func NewEvalError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// IsLexError reports whether the error belongs to the lexical family.
func (e *Error) IsLexError() bool { return len(e.Code) > 0 && e.Code[0] == 'L' }

// IsParseError reports whether the error belongs to the parse family.
func (e *Error) IsParseError() bool { return len(e.Code) > 0 && e.Code[0] == 'P' }

// IsEvalError reports whether the error belongs to the evaluation family.
func (e *Error) IsEvalError() bool { return len(e.Code) > 0 && e.Code[0] == 'E' }
