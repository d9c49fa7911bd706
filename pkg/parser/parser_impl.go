package parser

import (
	"fmt"
	"math"

	"github.com/numulang/numu/pkg/types"
)

// precedence is the binding power of an operator. Higher values bind
// more tightly.
type precedence int

const (
	precNone precedence = iota
	precAssignment
	precTernary
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precPower
	precCall
	precPrimary
)

type prefixFn func(*Parser) (*types.ASTNode, error)
type infixFn func(*Parser, *types.ASTNode) (*types.ASTNode, error)

// parseRule binds a token type to its prefix handler, infix handler and
// binding precedence. rightAssoc selects the recursive floor the infix
// handler uses for its right operand: left-associative operators recurse
// one above their own precedence, right-associative ones at it.
type parseRule struct {
	prefix     prefixFn
	infix      infixFn
	prec       precedence
	rightAssoc bool
}

// rules is the Pratt rule table. Token types absent from the table have
// no expression role: keywords like let/fn and the ** operator are lexed
// but currently unparseable, matching the language's historical grammar.
var rules map[TokenType]parseRule

func init() {
	rules = map[TokenType]parseRule{
		TokenNumber:     {prefix: (*Parser).number},
		TokenString:     {prefix: (*Parser).stringLiteral},
		TokenIdentifier: {prefix: (*Parser).variable},
		TokenTrue:       {prefix: (*Parser).boolean},
		TokenFalse:      {prefix: (*Parser).boolean},
		TokenPi:         {prefix: (*Parser).constant},
		TokenE:          {prefix: (*Parser).constant},
		TokenInf:        {prefix: (*Parser).constant},
		TokenNaN:        {prefix: (*Parser).constant},

		TokenParenOpen:   {prefix: (*Parser).grouping, infix: (*Parser).call, prec: precCall},
		TokenBracketOpen: {prefix: (*Parser).matrix},

		TokenMinus:   {prefix: (*Parser).unary, infix: (*Parser).binary, prec: precTerm},
		TokenBang:    {prefix: (*Parser).unary},
		TokenPlus:    {infix: (*Parser).binary, prec: precTerm},
		TokenStar:    {infix: (*Parser).binary, prec: precFactor},
		TokenSlash:   {infix: (*Parser).binary, prec: precFactor},
		TokenPercent: {infix: (*Parser).binary, prec: precFactor},
		TokenCaret:   {infix: (*Parser).binary, prec: precPower, rightAssoc: true},

		TokenEqEq:         {infix: (*Parser).binary, prec: precEquality},
		TokenNotEqual:     {infix: (*Parser).binary, prec: precEquality},
		TokenLess:         {infix: (*Parser).binary, prec: precComparison},
		TokenLessEqual:    {infix: (*Parser).binary, prec: precComparison},
		TokenGreater:      {infix: (*Parser).binary, prec: precComparison},
		TokenGreaterEqual: {infix: (*Parser).binary, prec: precComparison},

		TokenEqual: {infix: (*Parser).assignment, prec: precAssignment},
	}
}

// binaryOps maps operator tokens to the AST operator tags built by the
// binary infix handler.
var binaryOps = map[TokenType]types.BinaryOp{
	TokenPlus:         types.OpAdd,
	TokenMinus:        types.OpSub,
	TokenStar:         types.OpMul,
	TokenSlash:        types.OpDiv,
	TokenPercent:      types.OpMod,
	TokenCaret:        types.OpPow,
	TokenEqEq:         types.OpEq,
	TokenNotEqual:     types.OpNeq,
	TokenLess:         types.OpLt,
	TokenLessEqual:    types.OpLeq,
	TokenGreater:      types.OpGt,
	TokenGreaterEqual: types.OpGeq,
}

// Parser implements a table-driven Pratt parser over the lexer's token
// stream. State is the current token plus one token of lookahead,
// refilled by advance.
type Parser struct {
	lexer   *Lexer
	arena   *types.NodeArena
	current Token
	next    Token
	opts    CompileOptions
	depth   int
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 1000,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		lexer: NewLexer(input),
		arena: types.NewNodeArena(),
		opts:  options,
	}

	p.current = p.lexer.Next()
	p.next = p.lexer.Next()

	return p
}

// Parse parses the entire input as a single expression and returns it
// wrapped in an Expression that owns the node arena.
func (p *Parser) Parse() (*types.Expression, error) {
	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}
	if p.current.Type == TokenEOF {
		return nil, p.errorAt(types.ErrEmptyExpression, "Empty expression")
	}

	node, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorAt(types.ErrTrailingTokens, fmt.Sprintf("Unexpected token: %s", p.current.Value))
	}

	return types.NewExpression(node, p.lexer.Input(), p.arena), nil
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.next
	p.next = p.lexer.Next()
}

// match advances over the current token if it has the expected type.
func (p *Parser) match(tt TokenType) bool {
	if p.current.Type != tt {
		return false
	}
	p.advance()
	return true
}

// consume advances over the current token if it has the expected type
// and otherwise fails with a parse error at the current token's position.
func (p *Parser) consume(tt TokenType, message string) error {
	if p.current.Type == tt {
		p.advance()
		return nil
	}
	if p.current.Type == TokenError {
		return p.lexer.Error()
	}
	return p.errorAt(types.ErrExpectedToken, message)
}

// errorAt creates a parse error at the current token's position.
func (p *Parser) errorAt(code types.ErrorCode, message string) error {
	return types.NewParseError(code, message, p.current.Line, p.current.Column).WithToken(p.current.Value)
}

// parseExpression parses an expression whose operators all bind at
// least as tightly as min: the current token's prefix handler produces a
// left subtree, then infix handlers fold it while the current token's
// binding precedence stays at or above the floor.
func (p *Parser) parseExpression(min precedence) (*types.ASTNode, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return nil, p.errorAt(types.ErrNestingTooDeep, "Expression too deeply nested")
	}

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		rule, ok := rules[p.current.Type]
		if !ok || rule.infix == nil || rule.prec < min {
			break
		}
		left, err = rule.infix(p, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (*types.ASTNode, error) {
	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}
	rule, ok := rules[p.current.Type]
	if !ok || rule.prefix == nil {
		return nil, p.errorAt(types.ErrExpectedExpression, "Expected expression")
	}
	return rule.prefix(p)
}

// Prefix handlers

func (p *Parser) number() (*types.ASTNode, error) {
	value := p.current.NumValue
	p.advance()
	return p.arena.Number(value), nil
}

func (p *Parser) stringLiteral() (*types.ASTNode, error) {
	value := p.current.Value
	p.advance()
	return p.arena.StringLiteral(value), nil
}

func (p *Parser) boolean() (*types.ASTNode, error) {
	value := p.current.Type == TokenTrue
	p.advance()
	return p.arena.Boolean(value), nil
}

// constant parses the keyword constants pi, e, inf and nan directly into
// Number literals with their mathematical values, not variable
// references.
func (p *Parser) constant() (*types.ASTNode, error) {
	var value float64
	switch p.current.Type {
	case TokenPi:
		value = math.Pi
	case TokenE:
		value = math.E
	case TokenInf:
		value = math.Inf(1)
	case TokenNaN:
		value = math.NaN()
	default:
		return nil, p.errorAt(types.ErrExpectedExpression, "Unknown constant")
	}
	p.advance()
	return p.arena.Number(value), nil
}

func (p *Parser) variable() (*types.ASTNode, error) {
	name := p.current.Value
	p.advance()
	return p.arena.Variable(name), nil
}

func (p *Parser) grouping() (*types.ASTNode, error) {
	p.advance() // (
	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if err := p.consume(TokenParenClose, "Expect ')' after expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

// matrix parses a matrix literal: [] is empty, otherwise a
// comma-separated list of rows where each row is either a bracketed
// element list or, as sugar, a single bare expression forming a
// one-element row.
func (p *Parser) matrix() (*types.ASTNode, error) {
	p.advance() // [
	var rows [][]*types.ASTNode

	if !p.match(TokenBracketClose) {
		for {
			var row []*types.ASTNode
			if p.match(TokenBracketOpen) {
				if !p.match(TokenBracketClose) {
					for {
						elem, err := p.parseExpression(precAssignment)
						if err != nil {
							return nil, err
						}
						row = append(row, elem)
						if !p.match(TokenComma) {
							break
						}
					}
					if err := p.consume(TokenBracketClose, "Expect ']' after row elements"); err != nil {
						return nil, err
					}
				}
			} else {
				elem, err := p.parseExpression(precAssignment)
				if err != nil {
					return nil, err
				}
				row = append(row, elem)
			}
			rows = append(rows, row)
			if !p.match(TokenComma) {
				break
			}
		}
		if err := p.consume(TokenBracketClose, "Expect ']' after matrix rows"); err != nil {
			return nil, err
		}
	}

	return p.arena.Matrix(rows), nil
}

func (p *Parser) unary() (*types.ASTNode, error) {
	op := p.current
	p.advance()

	operand, err := p.parseExpression(precUnary)
	if err != nil {
		return nil, err
	}

	switch op.Type {
	case TokenMinus:
		return p.arena.Unary(types.OpNegate, operand), nil
	case TokenBang:
		return p.arena.Unary(types.OpNot, operand), nil
	default:
		return nil, p.errorAt(types.ErrExpectedExpression, "Invalid unary operator")
	}
}

// Infix handlers

func (p *Parser) binary(left *types.ASTNode) (*types.ASTNode, error) {
	op := p.current
	rule := rules[op.Type]
	p.advance()

	// Left-associative operators recurse one above their own precedence
	// so an equal-precedence operator to the right terminates the
	// operand; ^ recurses at its own precedence and therefore chains
	// right-associatively.
	min := rule.prec + 1
	if rule.rightAssoc {
		min = rule.prec
	}

	right, err := p.parseExpression(min)
	if err != nil {
		return nil, err
	}

	binOp, ok := binaryOps[op.Type]
	if !ok {
		return nil, p.errorAt(types.ErrExpectedExpression, "Invalid binary operator")
	}
	return p.arena.Binary(binOp, left, right), nil
}

// assignment handles the = infix. The target must be a bare variable
// reference.
func (p *Parser) assignment(left *types.ASTNode) (*types.ASTNode, error) {
	if left.Kind != types.NodeVariable {
		return nil, p.errorAt(types.ErrInvalidAssignTarget, "Invalid assignment target")
	}
	p.advance() // =

	value, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	return p.arena.Assignment(left.StrValue, value), nil
}

// call handles ( following an expression. The callee must be a bare
// variable reference; the arguments are a possibly empty comma-separated
// list.
func (p *Parser) call(left *types.ASTNode) (*types.ASTNode, error) {
	if left.Kind != types.NodeVariable {
		return nil, p.errorAt(types.ErrInvalidCallTarget, "Can only call functions")
	}
	p.advance() // (

	var args []*types.ASTNode
	if !p.match(TokenParenClose) {
		for {
			arg, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TokenComma) {
				break
			}
		}
		if err := p.consume(TokenParenClose, "Expect ')' after arguments"); err != nil {
			return nil, err
		}
	}

	return p.arena.Function(left.StrValue, args), nil
}
