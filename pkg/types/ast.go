// Package types defines the core type system for numu.
//
// This package contains type definitions for:
//   - Expression: Compiled numu expressions
//   - ASTNode: Abstract Syntax Tree nodes
//   - NodeArena: Arena allocator owning the nodes of one parse session
//   - Error types: Structured errors with codes
//
// It also provides the structural algorithms over the tree: Clone,
// Equals, Hash, Traverse and Simplify.
package types

// NodeKind identifies the kind of an AST node.
type NodeKind string

// AST node kinds. The set is closed: every algorithm in this package
// handles every kind, and an unrecognized kind is always an error.
const (
	// Literals
	NodeNumber  NodeKind = "number"
	NodeBoolean NodeKind = "boolean"
	NodeString  NodeKind = "string"

	// References
	NodeVariable NodeKind = "variable"

	// Operators
	NodeBinary NodeKind = "binary" // +, -, *, /, %, ^, comparisons
	NodeUnary  NodeKind = "unary"  // -, !

	// Calls
	NodeFunction NodeKind = "function" // name(arg, ...)

	// Aggregates
	NodeMatrix NodeKind = "matrix" // [[1, 2], [3, 4]]
	NodeTensor NodeKind = "tensor" // n-dimensional literal

	// Statements. The parser currently produces only NodeAssignment out
	// of this group; the remaining shapes exist for forward compatibility
	// with statement-level execution.
	NodeAssignment NodeKind = "assign"
	NodeBlock      NodeKind = "block"
	NodeIf         NodeKind = "if"
	NodeWhile      NodeKind = "while"
	NodeFor        NodeKind = "for"
	NodeReturn     NodeKind = "return"
)

// BinaryOp identifies a binary operator.
type BinaryOp uint8

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEq
	OpNeq
	OpLt
	OpLeq
	OpGt
	OpGeq
	OpAnd
	OpOr
)

// String returns the source-level spelling of the operator.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLeq:
		return "<="
	case OpGt:
		return ">"
	case OpGeq:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "(unknown)"
	}
}

// UnaryOp identifies a unary operator.
type UnaryOp uint8

// Unary operators. The parser produces only OpNegate and OpNot; the
// mathematical and linear-algebra operators can be built directly by
// hosts and are understood by the structural algorithms.
const (
	OpNegate UnaryOp = iota
	OpNot
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpExp
	OpLog
	OpSqrt
	OpTranspose
	OpDeterminant
	OpInverse
)

// String returns a readable name for the operator.
func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpNot:
		return "!"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpTan:
		return "tan"
	case OpAsin:
		return "asin"
	case OpAcos:
		return "acos"
	case OpAtan:
		return "atan"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpSqrt:
		return "sqrt"
	case OpTranspose:
		return "transpose"
	case OpDeterminant:
		return "det"
	case OpInverse:
		return "inv"
	default:
		return "(unknown)"
	}
}

// ASTNode represents a node in the Abstract Syntax Tree.
//
// A node is a tagged variant: Kind selects which of the remaining fields
// are meaningful. Nodes are immutable once built; every transformation
// (Clone, Simplify) allocates new nodes instead of mutating in place.
// Nodes carry no source position, which is why evaluation errors report
// only a message.
type ASTNode struct {
	Kind NodeKind

	NumValue  float64 // NodeNumber
	BoolValue bool    // NodeBoolean
	StrValue  string  // NodeString body, or the name for NodeVariable/NodeFunction/NodeAssignment

	BinOp BinaryOp // NodeBinary
	UnOp  UnaryOp  // NodeUnary

	// Relations. Child pointers always reference nodes in the same arena
	// and never form cycles; the grammar is acyclic by construction.
	LHS        *ASTNode     // binary left, unary operand, assignment value, return value (may be nil for return)
	RHS        *ASTNode     // binary right
	Arguments  []*ASTNode   // function arguments, order significant
	Rows       [][]*ASTNode // matrix rows; rows may have different lengths
	Dims       []int        // tensor dimensions
	Values     []*ASTNode   // tensor values, flattened; len(Values) == product(Dims) is the producer's obligation
	Statements []*ASTNode   // block statements
	Condition  *ASTNode     // if/while/for condition
	Then       *ASTNode     // if then-branch
	Else       *ASTNode     // if else-branch, may be nil
	Init       *ASTNode     // for initializer
	Increment  *ASTNode     // for increment
	Body       *ASTNode     // while/for body
}

// String returns a string representation of the node kind.
func (n *ASTNode) String() string {
	return string(n.Kind)
}
