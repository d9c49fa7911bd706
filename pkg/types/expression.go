package types

// Expression represents a compiled numu expression.
//
// An Expression can be evaluated multiple times against different
// evaluation contexts. It is safe for concurrent reads by multiple
// goroutines: the tree is immutable after parsing.
type Expression struct {
	ast    *ASTNode
	source string
	arena  *NodeArena
}

// NewExpression creates a new Expression from an AST root. The arena is
// the one the nodes were allocated from; attaching it here keeps the
// node storage alive for the lifetime of the Expression.
func NewExpression(ast *ASTNode, source string, arena *NodeArena) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
		arena:  arena,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// Arena returns the arena owning the expression's nodes.
func (e *Expression) Arena() *NodeArena {
	return e.arena
}

// Clone returns a deep copy of the expression's tree, allocated from the
// expression's own arena. The copy is structurally equal to the original
// but shares no node identity with it.
func (e *Expression) Clone() *ASTNode {
	return Clone(e.arena, e.ast)
}

// Simplify returns a constant-folded copy of the expression's tree,
// allocated from the expression's own arena. The receiver is unchanged.
func (e *Expression) Simplify() *ASTNode {
	return Simplify(e.arena, e.ast)
}

// String returns the expression source.
func (e *Expression) String() string {
	return e.source
}
