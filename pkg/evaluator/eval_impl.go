package evaluator

import (
	"fmt"

	"github.com/numulang/numu/pkg/functions"
	"github.com/numulang/numu/pkg/types"
)

// evalNode is the evaluation dispatch. Number, Variable, Binary, Unary
// and Function nodes have numeric evaluation paths. Boolean, String and
// the statement node kinds do not; evaluating one is an error rather
// than a silent extension. Matrix and Tensor parse but their numeric
// evaluation is an explicit stub.
func (e *Evaluator) evalNode(n *types.ASTNode, env *EvalContext, depth int) (float64, error) {
	if n == nil {
		return 0, types.NewEvalError(types.ErrUnknownNodeKind, "Cannot evaluate nil node")
	}
	if depth > e.opts.MaxDepth {
		return 0, types.NewEvalError(types.ErrMaxDepthExceeded, "Maximum evaluation depth exceeded")
	}

	switch n.Kind {
	case types.NodeNumber:
		return n.NumValue, nil

	case types.NodeVariable:
		return env.GetVariable(n.StrValue)

	case types.NodeBinary:
		left, err := e.evalNode(n.LHS, env, depth+1)
		if err != nil {
			return 0, err
		}
		right, err := e.evalNode(n.RHS, env, depth+1)
		if err != nil {
			return 0, err
		}
		return evalBinaryOp(n.BinOp, left, right)

	case types.NodeUnary:
		operand, err := e.evalNode(n.LHS, env, depth+1)
		if err != nil {
			return 0, err
		}
		return evalUnaryOp(n.UnOp, operand)

	case types.NodeFunction:
		return e.evalFunction(n, env, depth)

	case types.NodeMatrix:
		return 0, types.NewEvalError(types.ErrNotImplemented, "Matrix operations not yet implemented")

	case types.NodeTensor:
		return 0, types.NewEvalError(types.ErrNotImplemented, "Tensor operations not yet implemented")

	default:
		return 0, types.NewEvalError(types.ErrUnknownNodeKind,
			fmt.Sprintf("Unknown node type in evaluation: %s", n.Kind))
	}
}

// evalFunction evaluates all arguments left-to-right, resolves the name
// in the context registry (then the evaluator's own function set) and
// invokes the callable. Fixed-arity functions validate the argument
// count first; variadic ones skip the check.
func (e *Evaluator) evalFunction(n *types.ASTNode, env *EvalContext, depth int) (float64, error) {
	args := make([]float64, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		v, err := e.evalNode(arg, env, depth+1)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}

	def, ok := env.Function(n.StrValue)
	if !ok {
		def, ok = e.customFns[n.StrValue]
	}
	if !ok {
		return 0, types.NewEvalError(types.ErrUnknownFunction, fmt.Sprintf("Unknown function: %s", n.StrValue))
	}

	if def.Arity != functions.Variadic && len(args) != def.Arity {
		return 0, types.NewEvalError(types.ErrArgumentCount,
			fmt.Sprintf("Function %s expects %d arguments, got %d", def.Name, def.Arity, len(args)))
	}

	return def.Fn(args)
}
