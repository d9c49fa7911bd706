package types

// Traverse visits every node reachable from root exactly once, in
// pre-order: a node is visited before its children, and children are
// visited left-to-right.
//
// The walk is iterative over an explicit work stack, so arbitrarily deep
// trees cannot overflow the call stack. Nil children are skipped.
func Traverse(root *ASTNode, visit func(*ASTNode)) {
	if root == nil {
		return
	}

	stack := []*ASTNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(n)

		// Children are pushed right-to-left so the leftmost child is
		// popped first.
		switch n.Kind {
		case NodeBinary:
			stack = pushReverse(stack, n.LHS, n.RHS)
		case NodeUnary:
			stack = pushReverse(stack, n.LHS)
		case NodeFunction:
			stack = pushReverseNodes(stack, n.Arguments)
		case NodeMatrix:
			for i := len(n.Rows) - 1; i >= 0; i-- {
				stack = pushReverseNodes(stack, n.Rows[i])
			}
		case NodeTensor:
			stack = pushReverseNodes(stack, n.Values)
		case NodeAssignment:
			stack = pushReverse(stack, n.LHS)
		case NodeBlock:
			stack = pushReverseNodes(stack, n.Statements)
		case NodeIf:
			stack = pushReverse(stack, n.Condition, n.Then, n.Else)
		case NodeWhile:
			stack = pushReverse(stack, n.Condition, n.Body)
		case NodeFor:
			stack = pushReverse(stack, n.Init, n.Condition, n.Increment, n.Body)
		case NodeReturn:
			stack = pushReverse(stack, n.LHS)
		}
	}
}

func pushReverse(stack []*ASTNode, children ...*ASTNode) []*ASTNode {
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] != nil {
			stack = append(stack, children[i])
		}
	}
	return stack
}

func pushReverseNodes(stack []*ASTNode, children []*ASTNode) []*ASTNode {
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] != nil {
			stack = append(stack, children[i])
		}
	}
	return stack
}
