package types

import "math"

// Clone deep-copies an entire subtree into the given arena,
// variant-by-variant. The result is structurally equal to the input
// (Equals returns true) but shares no node identity with it.
// Clone(arena, nil) is nil.
func Clone(arena *NodeArena, n *ASTNode) *ASTNode {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case NodeNumber:
		return arena.Number(n.NumValue)
	case NodeBoolean:
		return arena.Boolean(n.BoolValue)
	case NodeString:
		return arena.StringLiteral(n.StrValue)
	case NodeVariable:
		return arena.Variable(n.StrValue)
	case NodeBinary:
		return arena.Binary(n.BinOp, Clone(arena, n.LHS), Clone(arena, n.RHS))
	case NodeUnary:
		return arena.Unary(n.UnOp, Clone(arena, n.LHS))
	case NodeFunction:
		return arena.Function(n.StrValue, cloneNodes(arena, n.Arguments))
	case NodeMatrix:
		rows := make([][]*ASTNode, len(n.Rows))
		for i, row := range n.Rows {
			rows[i] = cloneNodes(arena, row)
		}
		return arena.Matrix(rows)
	case NodeTensor:
		dims := make([]int, len(n.Dims))
		copy(dims, n.Dims)
		return arena.Tensor(dims, cloneNodes(arena, n.Values))
	case NodeAssignment:
		return arena.Assignment(n.StrValue, Clone(arena, n.LHS))
	case NodeBlock:
		return arena.Block(cloneNodes(arena, n.Statements))
	case NodeIf:
		return arena.If(Clone(arena, n.Condition), Clone(arena, n.Then), Clone(arena, n.Else))
	case NodeWhile:
		return arena.While(Clone(arena, n.Condition), Clone(arena, n.Body))
	case NodeFor:
		return arena.For(Clone(arena, n.Init), Clone(arena, n.Condition),
			Clone(arena, n.Increment), Clone(arena, n.Body))
	case NodeReturn:
		return arena.Return(Clone(arena, n.LHS))
	default:
		// Closed kind set; an unknown kind can only come from a
		// corrupted tree. Copy the tag so the defect stays visible.
		return arena.Alloc(n.Kind)
	}
}

func cloneNodes(arena *NodeArena, nodes []*ASTNode) []*ASTNode {
	if nodes == nil {
		return nil
	}
	out := make([]*ASTNode, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(arena, n)
	}
	return out
}

// Simplify returns a constant-folded copy of the tree, allocated from
// the given arena. Children are simplified first; a Binary node whose
// simplified operands are both numbers folds to a single Number for the
// operators +, -, *, / and ^, and a Unary node with a numeric operand
// folds for negation and the sin/cos/tan/exp/log/sqrt operators.
//
// Any other operator over numeric operands folds to Number(0). This
// mirrors the historical behavior and is pinned by tests; callers that
// need %, comparisons or boolean operators preserved must not rely on
// Simplify. All remaining node kinds are copied structurally without
// folding. The input tree is never mutated.
func Simplify(arena *NodeArena, n *ASTNode) *ASTNode {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case NodeBinary:
		left := Simplify(arena, n.LHS)
		right := Simplify(arena, n.RHS)

		if left != nil && right != nil && left.Kind == NodeNumber && right.Kind == NodeNumber {
			lv, rv := left.NumValue, right.NumValue
			result := 0.0
			switch n.BinOp {
			case OpAdd:
				result = lv + rv
			case OpSub:
				result = lv - rv
			case OpMul:
				result = lv * rv
			case OpDiv:
				result = lv / rv
			case OpPow:
				result = math.Pow(lv, rv)
			}
			return arena.Number(result)
		}
		return arena.Binary(n.BinOp, left, right)

	case NodeUnary:
		operand := Simplify(arena, n.LHS)

		if operand != nil && operand.Kind == NodeNumber {
			v := operand.NumValue
			result := 0.0
			switch n.UnOp {
			case OpNegate:
				result = -v
			case OpSin:
				result = math.Sin(v)
			case OpCos:
				result = math.Cos(v)
			case OpTan:
				result = math.Tan(v)
			case OpExp:
				result = math.Exp(v)
			case OpLog:
				result = math.Log(v)
			case OpSqrt:
				result = math.Sqrt(v)
			}
			return arena.Number(result)
		}
		return arena.Unary(n.UnOp, operand)

	default:
		return Clone(arena, n)
	}
}
