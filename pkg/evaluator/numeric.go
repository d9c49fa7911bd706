package evaluator

import (
	"math"

	"github.com/numulang/numu/pkg/types"
)

// evalBinaryOp applies a binary operator to two doubles. Arithmetic is
// ordinary IEEE-754; DIV and MOD reject a divisor of exactly 0.0. The
// comparison and boolean operators exist in the AST but have no numeric
// evaluation rule here and fail as unknown.
func evalBinaryOp(op types.BinaryOp, left, right float64) (float64, error) {
	switch op {
	case types.OpAdd:
		return left + right, nil
	case types.OpSub:
		return left - right, nil
	case types.OpMul:
		return left * right, nil
	case types.OpDiv:
		if right == 0.0 {
			return 0, types.NewEvalError(types.ErrDivisionByZero, "Division by zero")
		}
		return left / right, nil
	case types.OpMod:
		if right == 0.0 {
			return 0, types.NewEvalError(types.ErrModuloByZero, "Modulo by zero")
		}
		return math.Mod(left, right), nil
	case types.OpPow:
		return math.Pow(left, right), nil
	default:
		return 0, types.NewEvalError(types.ErrUnknownBinaryOp, "Unknown binary operator: "+op.String())
	}
}

// evalUnaryOp applies a unary operator to a double. LOG and SQRT check
// their domains; NOT and the inverse-trigonometric and linear-algebra
// operators have no numeric evaluation rule here and fail as unknown.
func evalUnaryOp(op types.UnaryOp, operand float64) (float64, error) {
	switch op {
	case types.OpNegate:
		return -operand, nil
	case types.OpSin:
		return math.Sin(operand), nil
	case types.OpCos:
		return math.Cos(operand), nil
	case types.OpTan:
		return math.Tan(operand), nil
	case types.OpExp:
		return math.Exp(operand), nil
	case types.OpLog:
		if operand <= 0.0 {
			return 0, types.NewEvalError(types.ErrLogDomain, "Logarithm of non-positive number")
		}
		return math.Log(operand), nil
	case types.OpSqrt:
		if operand < 0.0 {
			return 0, types.NewEvalError(types.ErrSqrtDomain, "Square root of negative number")
		}
		return math.Sqrt(operand), nil
	default:
		return 0, types.NewEvalError(types.ErrUnknownUnaryOp, "Unknown unary operator: "+op.String())
	}
}
