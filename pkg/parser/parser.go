// Package parser implements the numu lexer and expression parser.
//
// The parser is a hand-written Pratt ("Top Down Operator Precedence")
// parser over a pull-based token stream: a rule table maps each token
// type to a prefix handler, an infix handler and a binding precedence.
// It keeps one token of lookahead beyond the current token and builds
// arena-allocated AST nodes.
//
// # Example
//
//	expr, err := parser.Parse("2 + 3 * 4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
//
// Parsing is single-shot: the first lexical or grammar error aborts the
// parse with a structured error carrying the source line and column.
// There is no error recovery or resynchronization.
package parser

import (
	"github.com/numulang/numu/pkg/types"
)

// Parse parses a numu expression and returns the compiled Expression.
//
// The function tokenizes the input, builds an AST and verifies that the
// whole input was consumed. On failure it returns a *types.Error with
// position information.
func Parse(source string) (*types.Expression, error) {
	p := NewParser(source)
	return p.Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(source string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(source, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits expression nesting depth. Deeply nested input
	// (e.g. thousands of nested parentheses) is otherwise bounded only
	// by the goroutine stack; the limit turns that resource exhaustion
	// into a parse error. Defaults to 1000.
	MaxDepth int
}

// WithMaxDepth sets the maximum expression nesting depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
