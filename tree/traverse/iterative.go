package traverse

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// PreOrderIter is PreOrder on an explicit stack instead of the
// call stack. The visited sequence is identical.
func PreOrderIter[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	if n == nil {
		return
	}

	st := arraystack.New()
	st.Push(n)

	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*tree.Node[T])

		if !f(cur.Value) {
			return
		}

		// right below left, so left is popped first
		if cur.Right != nil {
			st.Push(cur.Right)
		}
		if cur.Left != nil {
			st.Push(cur.Left)
		}
	}
}

// InOrderIter is InOrder on an explicit stack instead of the
// call stack. The visited sequence is identical.
func InOrderIter[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	st := arraystack.New()
	cur := n

	for cur != nil || !st.Empty() {
		for cur != nil {
			st.Push(cur)
			cur = cur.Left
		}

		top, _ := st.Pop()
		cur = top.(*tree.Node[T])

		if !f(cur.Value) {
			return
		}

		cur = cur.Right
	}
}

// PostOrderIter is PostOrder on an explicit stack instead of the
// call stack. The visited sequence is identical.
//
// A node may be on the stack when both its subtrees are still
// unvisited, so the last visited node is tracked to tell "about
// to descend right" apart from "returning from the right".
func PostOrderIter[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	st := arraystack.New()
	cur := n
	var last *tree.Node[T]

	for cur != nil || !st.Empty() {
		for cur != nil {
			st.Push(cur)
			cur = cur.Left
		}

		top, _ := st.Peek()
		peek := top.(*tree.Node[T])

		if peek.Right != nil && last != peek.Right {
			cur = peek.Right
			continue
		}

		if !f(peek.Value) {
			return
		}

		st.Pop()
		last = peek
	}
}
