package types

// arenaChunkSize is the number of ASTNode values pre-allocated per arena
// chunk. Most expressions fit in a single chunk.
const arenaChunkSize = 64

// NodeArena is a bump-pointer allocator for ASTNode values.
//
// Instead of allocating each node individually on the heap (one
// GC-tracked object per node), the arena pre-allocates fixed-size chunks
// of ASTNode structs and returns pointers into them. A typical expression
// (< 64 nodes) requires only a single chunk allocation.
//
// # Lifetime
//
// The arena must stay alive as long as any pointer returned by Alloc is
// reachable. Attaching the arena to the [Expression] achieves this: the
// GC collects the arena (and all its chunks) automatically when the
// Expression is released. A node is owned by exactly one arena and never
// outlives it.
//
// # Thread safety
//
// NodeArena is NOT thread-safe. Each parse/evaluation session owns its
// own arena and the arena is never shared across goroutines.
type NodeArena struct {
	chunks [][]ASTNode
	pos    int // next free index in the last chunk
}

// NewNodeArena allocates an arena pre-warmed with one initial chunk.
func NewNodeArena() *NodeArena {
	return &NodeArena{
		chunks: [][]ASTNode{make([]ASTNode, arenaChunkSize)},
		pos:    0,
	}
}

// Alloc returns a pointer to a zero-valued ASTNode inside the arena with
// Kind set. All other fields remain at their zero values and must be
// filled by the caller. Chunks are freshly allocated and pos advances
// monotonically; nodes are never recycled.
func (a *NodeArena) Alloc(kind NodeKind) *ASTNode {
	if a.pos >= arenaChunkSize {
		a.chunks = append(a.chunks, make([]ASTNode, arenaChunkSize))
		a.pos = 0
	}
	n := &a.chunks[len(a.chunks)-1][a.pos]
	a.pos++
	n.Kind = kind
	return n
}

// Len reports the number of nodes allocated so far.
func (a *NodeArena) Len() int {
	return (len(a.chunks)-1)*arenaChunkSize + a.pos
}

// Constructor helpers. The parser and the structural algorithms build
// nodes exclusively through these so that every node lives in an arena.

// Number allocates a NodeNumber with the given value.
func (a *NodeArena) Number(value float64) *ASTNode {
	n := a.Alloc(NodeNumber)
	n.NumValue = value
	return n
}

// Boolean allocates a NodeBoolean with the given value.
func (a *NodeArena) Boolean(value bool) *ASTNode {
	n := a.Alloc(NodeBoolean)
	n.BoolValue = value
	return n
}

// StringLiteral allocates a NodeString with the given body.
func (a *NodeArena) StringLiteral(value string) *ASTNode {
	n := a.Alloc(NodeString)
	n.StrValue = value
	return n
}

// Variable allocates a NodeVariable referencing name.
func (a *NodeArena) Variable(name string) *ASTNode {
	n := a.Alloc(NodeVariable)
	n.StrValue = name
	return n
}

// Binary allocates a NodeBinary. Both operands must be non-nil; an empty
// operand is a parser bug, never a valid state.
func (a *NodeArena) Binary(op BinaryOp, left, right *ASTNode) *ASTNode {
	n := a.Alloc(NodeBinary)
	n.BinOp = op
	n.LHS = left
	n.RHS = right
	return n
}

// Unary allocates a NodeUnary. The operand must be non-nil.
func (a *NodeArena) Unary(op UnaryOp, operand *ASTNode) *ASTNode {
	n := a.Alloc(NodeUnary)
	n.UnOp = op
	n.LHS = operand
	return n
}

// Function allocates a NodeFunction call with the given arguments.
func (a *NodeArena) Function(name string, args []*ASTNode) *ASTNode {
	n := a.Alloc(NodeFunction)
	n.StrValue = name
	n.Arguments = args
	return n
}

// Matrix allocates a NodeMatrix with the given rows.
func (a *NodeArena) Matrix(rows [][]*ASTNode) *ASTNode {
	n := a.Alloc(NodeMatrix)
	n.Rows = rows
	return n
}

// Tensor allocates a NodeTensor. The caller must uphold
// len(values) == product(dims).
func (a *NodeArena) Tensor(dims []int, values []*ASTNode) *ASTNode {
	n := a.Alloc(NodeTensor)
	n.Dims = dims
	n.Values = values
	return n
}

// Assignment allocates a NodeAssignment binding name to value.
func (a *NodeArena) Assignment(name string, value *ASTNode) *ASTNode {
	n := a.Alloc(NodeAssignment)
	n.StrValue = name
	n.LHS = value
	return n
}

// Block allocates a NodeBlock with the given statements.
func (a *NodeArena) Block(statements []*ASTNode) *ASTNode {
	n := a.Alloc(NodeBlock)
	n.Statements = statements
	return n
}

// If allocates a NodeIf. elseBranch may be nil.
func (a *NodeArena) If(condition, thenBranch, elseBranch *ASTNode) *ASTNode {
	n := a.Alloc(NodeIf)
	n.Condition = condition
	n.Then = thenBranch
	n.Else = elseBranch
	return n
}

// While allocates a NodeWhile.
func (a *NodeArena) While(condition, body *ASTNode) *ASTNode {
	n := a.Alloc(NodeWhile)
	n.Condition = condition
	n.Body = body
	return n
}

// For allocates a NodeFor.
func (a *NodeArena) For(init, condition, increment, body *ASTNode) *ASTNode {
	n := a.Alloc(NodeFor)
	n.Init = init
	n.Condition = condition
	n.Increment = increment
	n.Body = body
	return n
}

// Return allocates a NodeReturn. value may be nil.
func (a *NodeArena) Return(value *ASTNode) *ASTNode {
	n := a.Alloc(NodeReturn)
	n.LHS = value
	return n
}
