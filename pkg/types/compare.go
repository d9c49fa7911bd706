package types

import "math"

// Equals reports deep structural equality of two trees.
//
// Reference equality short-circuits to true and absent-vs-present to
// false; otherwise the kinds must match and every field is compared
// recursively. Floats compare by value (==), not epsilon-tolerant;
// ordered collections compare element-wise in order; Matrix and Tensor
// require equal shape before any element comparison.
func Equals(a, b *ASTNode) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case NodeNumber:
		return a.NumValue == b.NumValue
	case NodeBoolean:
		return a.BoolValue == b.BoolValue
	case NodeString, NodeVariable:
		return a.StrValue == b.StrValue
	case NodeBinary:
		return a.BinOp == b.BinOp && Equals(a.LHS, b.LHS) && Equals(a.RHS, b.RHS)
	case NodeUnary:
		return a.UnOp == b.UnOp && Equals(a.LHS, b.LHS)
	case NodeFunction:
		return a.StrValue == b.StrValue && nodesEqual(a.Arguments, b.Arguments)
	case NodeMatrix:
		if len(a.Rows) != len(b.Rows) {
			return false
		}
		for i := range a.Rows {
			if !nodesEqual(a.Rows[i], b.Rows[i]) {
				return false
			}
		}
		return true
	case NodeTensor:
		if len(a.Dims) != len(b.Dims) {
			return false
		}
		for i := range a.Dims {
			if a.Dims[i] != b.Dims[i] {
				return false
			}
		}
		return nodesEqual(a.Values, b.Values)
	case NodeAssignment:
		return a.StrValue == b.StrValue && Equals(a.LHS, b.LHS)
	case NodeBlock:
		return nodesEqual(a.Statements, b.Statements)
	case NodeIf:
		return Equals(a.Condition, b.Condition) && Equals(a.Then, b.Then) && Equals(a.Else, b.Else)
	case NodeWhile:
		return Equals(a.Condition, b.Condition) && Equals(a.Body, b.Body)
	case NodeFor:
		return Equals(a.Init, b.Init) && Equals(a.Condition, b.Condition) &&
			Equals(a.Increment, b.Increment) && Equals(a.Body, b.Body)
	case NodeReturn:
		return Equals(a.LHS, b.LHS)
	default:
		return false
	}
}

func nodesEqual(a, b []*ASTNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// hashPrime is the FNV-64 prime, the fixed odd multiplier used to fold
// field hashes. Folding is order-sensitive: mix(mix(h,a),b) differs from
// mix(mix(h,b),a) in general.
const hashPrime = 1099511628211

func mix(h, v uint64) uint64 {
	return (h ^ v) * hashPrime
}

func hashString(s string) uint64 {
	// FNV-1a
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h = (h ^ uint64(s[i])) * hashPrime
	}
	return h
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash computes a structural hash of the tree. It is seeded by the kind
// tag and folds in every field that Equals compares, so equal trees hash
// identically: Equals(a, b) implies Hash(a) == Hash(b).
func Hash(n *ASTNode) uint64 {
	if n == nil {
		return 0
	}

	h := hashString(string(n.Kind))

	switch n.Kind {
	case NodeNumber:
		h = mix(h, math.Float64bits(n.NumValue))
	case NodeBoolean:
		h = mix(h, hashBool(n.BoolValue))
	case NodeString, NodeVariable:
		h = mix(h, hashString(n.StrValue))
	case NodeBinary:
		h = mix(h, uint64(n.BinOp))
		h = mix(h, Hash(n.LHS))
		h = mix(h, Hash(n.RHS))
	case NodeUnary:
		h = mix(h, uint64(n.UnOp))
		h = mix(h, Hash(n.LHS))
	case NodeFunction:
		h = mix(h, hashString(n.StrValue))
		h = hashNodes(h, n.Arguments)
	case NodeMatrix:
		h = mix(h, uint64(len(n.Rows)))
		for _, row := range n.Rows {
			h = hashNodes(h, row)
		}
	case NodeTensor:
		h = mix(h, uint64(len(n.Dims)))
		for _, d := range n.Dims {
			h = mix(h, uint64(d))
		}
		h = hashNodes(h, n.Values)
	case NodeAssignment:
		h = mix(h, hashString(n.StrValue))
		h = mix(h, Hash(n.LHS))
	case NodeBlock:
		h = hashNodes(h, n.Statements)
	case NodeIf:
		h = mix(h, Hash(n.Condition))
		h = mix(h, Hash(n.Then))
		h = mix(h, Hash(n.Else))
	case NodeWhile:
		h = mix(h, Hash(n.Condition))
		h = mix(h, Hash(n.Body))
	case NodeFor:
		h = mix(h, Hash(n.Init))
		h = mix(h, Hash(n.Condition))
		h = mix(h, Hash(n.Increment))
		h = mix(h, Hash(n.Body))
	case NodeReturn:
		h = mix(h, Hash(n.LHS))
	}

	return h
}

func hashNodes(h uint64, nodes []*ASTNode) uint64 {
	h = mix(h, uint64(len(nodes)))
	for _, n := range nodes {
		h = mix(h, Hash(n))
	}
	return h
}
