package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numulang/numu/pkg/types"
)

func mustParse(t *testing.T, source string) *types.ASTNode {
	t.Helper()

	expr, err := Parse(source)
	require.NoError(t, err, "parse %q", source)
	require.NotNil(t, expr.AST())
	return expr.AST()
}

func parseErr(t *testing.T, source string) *types.Error {
	t.Helper()

	_, err := Parse(source)
	require.Error(t, err, "parse %q should fail", source)
	var numuErr *types.Error
	require.ErrorAs(t, err, &numuErr)
	return numuErr
}

func TestParseLiterals(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		n := mustParse(t, "42")
		require.Equal(t, types.NodeNumber, n.Kind)
		assert.Equal(t, 42.0, n.NumValue)
	})

	t.Run("booleans", func(t *testing.T) {
		n := mustParse(t, "true")
		require.Equal(t, types.NodeBoolean, n.Kind)
		assert.True(t, n.BoolValue)

		n = mustParse(t, "false")
		require.Equal(t, types.NodeBoolean, n.Kind)
		assert.False(t, n.BoolValue)
	})

	t.Run("string", func(t *testing.T) {
		n := mustParse(t, `"hello"`)
		require.Equal(t, types.NodeString, n.Kind)
		assert.Equal(t, "hello", n.StrValue)
	})

	t.Run("variable", func(t *testing.T) {
		n := mustParse(t, "velocity")
		require.Equal(t, types.NodeVariable, n.Kind)
		assert.Equal(t, "velocity", n.StrValue)
	})
}

func TestParseConstants(t *testing.T) {
	tests := []struct {
		source string
		value  float64
	}{
		{source: "pi", value: math.Pi},
		{source: "e", value: math.E},
		{source: "inf", value: math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.source, func(t *testing.T) {
			n := mustParse(t, tc.source)
			// Constants parse directly into literals, not variable lookups.
			require.Equal(t, types.NodeNumber, n.Kind)
			assert.Equal(t, tc.value, n.NumValue)
		})
	}

	t.Run("nan", func(t *testing.T) {
		n := mustParse(t, "nan")
		require.Equal(t, types.NodeNumber, n.Kind)
		assert.True(t, math.IsNaN(n.NumValue))
	})
}

func TestParsePrecedence(t *testing.T) {
	// 2 + 3 * 4 must parse as 2 + (3 * 4).
	n := mustParse(t, "2 + 3 * 4")
	require.Equal(t, types.NodeBinary, n.Kind)
	require.Equal(t, types.OpAdd, n.BinOp)
	assert.Equal(t, types.NodeNumber, n.LHS.Kind)
	assert.Equal(t, 2.0, n.LHS.NumValue)

	mul := n.RHS
	require.Equal(t, types.NodeBinary, mul.Kind)
	require.Equal(t, types.OpMul, mul.BinOp)
	assert.Equal(t, 3.0, mul.LHS.NumValue)
	assert.Equal(t, 4.0, mul.RHS.NumValue)

	// Parentheses override: (2 + 3) * 4.
	n = mustParse(t, "(2 + 3) * 4")
	require.Equal(t, types.NodeBinary, n.Kind)
	assert.Equal(t, types.OpMul, n.BinOp)
	assert.Equal(t, types.OpAdd, n.LHS.BinOp)
}

func TestParseAssociativity(t *testing.T) {
	t.Run("subtraction is left associative", func(t *testing.T) {
		// 10 - 3 - 2 must parse as (10 - 3) - 2.
		n := mustParse(t, "10 - 3 - 2")
		require.Equal(t, types.OpSub, n.BinOp)
		assert.Equal(t, 2.0, n.RHS.NumValue)
		require.Equal(t, types.NodeBinary, n.LHS.Kind)
		assert.Equal(t, types.OpSub, n.LHS.BinOp)
		assert.Equal(t, 10.0, n.LHS.LHS.NumValue)
		assert.Equal(t, 3.0, n.LHS.RHS.NumValue)
	})

	t.Run("power is right associative", func(t *testing.T) {
		// 2 ^ 3 ^ 2 must parse as 2 ^ (3 ^ 2).
		n := mustParse(t, "2 ^ 3 ^ 2")
		require.Equal(t, types.OpPow, n.BinOp)
		assert.Equal(t, 2.0, n.LHS.NumValue)
		require.Equal(t, types.NodeBinary, n.RHS.Kind)
		assert.Equal(t, types.OpPow, n.RHS.BinOp)
		assert.Equal(t, 3.0, n.RHS.LHS.NumValue)
		assert.Equal(t, 2.0, n.RHS.RHS.NumValue)
	})

	t.Run("division is left associative", func(t *testing.T) {
		// 100 / 10 / 2 must parse as (100 / 10) / 2.
		n := mustParse(t, "100 / 10 / 2")
		require.Equal(t, types.OpDiv, n.BinOp)
		assert.Equal(t, types.OpDiv, n.LHS.BinOp)
	})
}

func TestParseComparisons(t *testing.T) {
	tests := []struct {
		source string
		op     types.BinaryOp
	}{
		{source: "a == b", op: types.OpEq},
		{source: "a != b", op: types.OpNeq},
		{source: "a < b", op: types.OpLt},
		{source: "a <= b", op: types.OpLeq},
		{source: "a > b", op: types.OpGt},
		{source: "a >= b", op: types.OpGeq},
		{source: "a % b", op: types.OpMod},
	}
	for _, tc := range tests {
		t.Run(tc.source, func(t *testing.T) {
			n := mustParse(t, tc.source)
			require.Equal(t, types.NodeBinary, n.Kind)
			assert.Equal(t, tc.op, n.BinOp)
		})
	}

	// Comparison binds looser than arithmetic: a + 1 < b * 2.
	n := mustParse(t, "a + 1 < b * 2")
	require.Equal(t, types.OpLt, n.BinOp)
	assert.Equal(t, types.OpAdd, n.LHS.BinOp)
	assert.Equal(t, types.OpMul, n.RHS.BinOp)
}

func TestParseUnary(t *testing.T) {
	t.Run("negation", func(t *testing.T) {
		n := mustParse(t, "-x")
		require.Equal(t, types.NodeUnary, n.Kind)
		assert.Equal(t, types.OpNegate, n.UnOp)
		assert.Equal(t, types.NodeVariable, n.LHS.Kind)
	})

	t.Run("not", func(t *testing.T) {
		n := mustParse(t, "!x")
		require.Equal(t, types.NodeUnary, n.Kind)
		assert.Equal(t, types.OpNot, n.UnOp)
	})

	t.Run("negation binds tighter than multiplication", func(t *testing.T) {
		// -2 * 3 must parse as (-2) * 3.
		n := mustParse(t, "-2 * 3")
		require.Equal(t, types.NodeBinary, n.Kind)
		assert.Equal(t, types.OpMul, n.BinOp)
		assert.Equal(t, types.NodeUnary, n.LHS.Kind)
	})

	t.Run("double negation", func(t *testing.T) {
		n := mustParse(t, "--x")
		require.Equal(t, types.NodeUnary, n.Kind)
		require.Equal(t, types.NodeUnary, n.LHS.Kind)
		assert.Equal(t, types.NodeVariable, n.LHS.LHS.Kind)
	})
}

func TestParseAssignment(t *testing.T) {
	n := mustParse(t, "x = 2 + 3")
	require.Equal(t, types.NodeAssignment, n.Kind)
	assert.Equal(t, "x", n.StrValue)
	require.Equal(t, types.NodeBinary, n.LHS.Kind)
	assert.Equal(t, types.OpAdd, n.LHS.BinOp)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	err := parseErr(t, "1 = 2")
	assert.Equal(t, types.ErrInvalidAssignTarget, err.Code)

	err = parseErr(t, "x + y = 2")
	assert.Equal(t, types.ErrInvalidAssignTarget, err.Code)
}

func TestParseCall(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		n := mustParse(t, "pow(2, 10)")
		require.Equal(t, types.NodeFunction, n.Kind)
		assert.Equal(t, "pow", n.StrValue)
		require.Len(t, n.Arguments, 2)
		assert.Equal(t, 2.0, n.Arguments[0].NumValue)
		assert.Equal(t, 10.0, n.Arguments[1].NumValue)
	})

	t.Run("no arguments", func(t *testing.T) {
		n := mustParse(t, "rand()")
		require.Equal(t, types.NodeFunction, n.Kind)
		assert.Empty(t, n.Arguments)
	})

	t.Run("nested call", func(t *testing.T) {
		n := mustParse(t, "sin(cos(x))")
		require.Equal(t, types.NodeFunction, n.Kind)
		require.Len(t, n.Arguments, 1)
		assert.Equal(t, types.NodeFunction, n.Arguments[0].Kind)
		assert.Equal(t, "cos", n.Arguments[0].StrValue)
	})

	t.Run("call target must be a name", func(t *testing.T) {
		err := parseErr(t, "1(2)")
		assert.Equal(t, types.ErrInvalidCallTarget, err.Code)
	})
}

func TestParseMatrix(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		n := mustParse(t, "[]")
		require.Equal(t, types.NodeMatrix, n.Kind)
		assert.Empty(t, n.Rows)
	})

	t.Run("two by two", func(t *testing.T) {
		n := mustParse(t, "[[1, 2], [3, 4]]")
		require.Equal(t, types.NodeMatrix, n.Kind)
		require.Len(t, n.Rows, 2)
		require.Len(t, n.Rows[0], 2)
		assert.Equal(t, 1.0, n.Rows[0][0].NumValue)
		assert.Equal(t, 4.0, n.Rows[1][1].NumValue)
	})

	t.Run("bare expression row sugar", func(t *testing.T) {
		// Each bare element forms its own single-element row.
		n := mustParse(t, "[1, 2, 3]")
		require.Equal(t, types.NodeMatrix, n.Kind)
		require.Len(t, n.Rows, 3)
		for i, row := range n.Rows {
			require.Len(t, row, 1)
			assert.Equal(t, float64(i+1), row[0].NumValue)
		}
	})

	t.Run("expression elements", func(t *testing.T) {
		n := mustParse(t, "[[x + 1, sin(y)]]")
		require.Len(t, n.Rows, 1)
		require.Len(t, n.Rows[0], 2)
		assert.Equal(t, types.NodeBinary, n.Rows[0][0].Kind)
		assert.Equal(t, types.NodeFunction, n.Rows[0][1].Kind)
	})

	t.Run("unclosed row", func(t *testing.T) {
		err := parseErr(t, "[[1, 2")
		assert.Equal(t, types.ErrExpectedToken, err.Code)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   types.ErrorCode
	}{
		{name: "empty input", source: "", code: types.ErrEmptyExpression},
		{name: "only whitespace", source: "   \n\t # comment", code: types.ErrEmptyExpression},
		{name: "missing operand", source: "1 +", code: types.ErrExpectedExpression},
		{name: "leading operator", source: "* 2", code: types.ErrExpectedExpression},
		{name: "unclosed paren", source: "(1 + 2", code: types.ErrExpectedToken},
		{name: "trailing tokens", source: "1 2", code: types.ErrTrailingTokens},
		{name: "trailing paren", source: "1 + 2)", code: types.ErrTrailingTokens},
		{name: "double star has no rule", source: "2 ** 3", code: types.ErrTrailingTokens},
		{name: "lex error surfaces", source: "1 + @", code: types.ErrUnexpectedChar},
		{name: "unterminated string", source: `"abc`, code: types.ErrStringNotClosed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := parseErr(t, tc.source)
			assert.Equal(t, tc.code, err.Code)
		})
	}
}

func TestParseErrorPositions(t *testing.T) {
	err := parseErr(t, "1 +\n  *")
	assert.Equal(t, types.ErrExpectedExpression, err.Code)
	assert.Equal(t, 2, err.Line)
	assert.Equal(t, 3, err.Column)
}

func TestParseNestingDepthLimit(t *testing.T) {
	source := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40)

	// Within the limit the expression parses fine.
	_, err := Compile(source, WithMaxDepth(100))
	require.NoError(t, err)

	_, err = Compile(source, WithMaxDepth(10))
	require.Error(t, err)
	var numuErr *types.Error
	require.ErrorAs(t, err, &numuErr)
	assert.Equal(t, types.ErrNestingTooDeep, numuErr.Code)
}

func TestParseExpressionAccessors(t *testing.T) {
	expr, err := Parse("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", expr.Source())
	assert.NotNil(t, expr.Arena())
	assert.Greater(t, expr.Arena().Len(), 0)
}

func TestParseArenaOwnership(t *testing.T) {
	// Every node of the tree is allocated from the expression's arena.
	expr, err := Parse("sin(x) + [1, 2] * -y")
	require.NoError(t, err)

	count := 0
	types.Traverse(expr.AST(), func(n *types.ASTNode) {
		count++
	})
	assert.Equal(t, count, expr.Arena().Len())
}
