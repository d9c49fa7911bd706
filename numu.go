// Package numu provides the front end and evaluator of the numu numeric
// expression language: source text → tokens → operator-precedence AST →
// float64 result.
//
// # Quick Start
//
//	// Compile once, evaluate many times
//	expr, err := numu.Compile("2 + 3 * x")
//
//	env := evaluator.NewContext()
//	evaluator.RegisterBuiltins(env)
//	env.SetVariable("x", 4)
//
//	result, err := numu.Eval("2 + 3 * x", env)
//	// result == 14.0
//
// # Pipeline
//
// The module is organised as four components:
//   - Lexer: hand-written scanner with one-token lookahead and
//     line/column tracking (github.com/numulang/numu/pkg/parser)
//   - Parser: table-driven Pratt parser producing arena-allocated AST
//     nodes (github.com/numulang/numu/pkg/parser)
//   - AST model: closed node kinds plus the structural algorithms
//     Clone/Equals/Hash/Traverse/Simplify (github.com/numulang/numu/pkg/types)
//   - Evaluator: tree walker over an explicit evaluation context
//     (github.com/numulang/numu/pkg/evaluator)
//
// Every stage fails fast with a structured *types.Error; there is no
// partial result, recovery or retry. Lexical and parse errors carry a
// source line and column, evaluation errors a message only.
package numu

import (
	"fmt"

	"github.com/numulang/numu/pkg/evaluator"
	"github.com/numulang/numu/pkg/parser"
	"github.com/numulang/numu/pkg/types"
)

// Version returns the current version of numu.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles a numu expression for repeated evaluation.
//
// The compiled expression owns its node arena and can be evaluated any
// number of times against different contexts. It is safe for concurrent
// use; the tree is immutable after parsing.
func Compile(source string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(source, opts...)
}

// Eval is a convenience function that compiles and evaluates an
// expression in a single call.
//
// For repeated evaluations of the same expression, use Compile, or an
// [evaluator.Evaluator] with caching enabled.
func Eval(source string, env *evaluator.EvalContext, opts ...evaluator.EvalOption) (float64, error) {
	expr, err := Compile(source)
	if err != nil {
		return 0, err
	}

	ev := evaluator.New(opts...)
	return ev.Eval(expr, env)
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It simplifies safe initialization of package-level variables.
func MustCompile(source string) *types.Expression {
	expr, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("numu: Compile(%q): %v", source, err))
	}
	return expr
}
