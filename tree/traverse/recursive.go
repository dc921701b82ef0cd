// Package traverse produces orderings of a binary tree's values:
// the three depth-first orders in recursive, explicit-stack and
// constant-space threaded (Morris) forms, plus breadth-first
// level-order and zigzag.
//
// For a given order every form yields the same sequence. The
// recursive forms are the simple variants; the stack-backed forms
// do not grow the call stack and should be preferred for deep or
// untrusted inputs.
package traverse

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// PreOrder applies f to each value of the tree in pre-order
// (node, left, right). If f returns false, the traversal is
// stopped early. A nil root visits nothing.
func PreOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	visitPreOrder(n, f)
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}

	if !f(n.Value) {
		return false
	}

	return visitPreOrder(n.Left, f) && visitPreOrder(n.Right, f)
}

// InOrder applies f to each value of the tree in-order
// (left, node, right). If f returns false, the traversal is
// stopped early. A nil root visits nothing.
func InOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	visitInOrder(n, f)
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}

	if !visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Value) {
		return false
	}

	return visitInOrder(n.Right, f)
}

// PostOrder applies f to each value of the tree in post-order
// (left, right, node). If f returns false, the traversal is
// stopped early. A nil root visits nothing.
func PostOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	visitPostOrder(n, f)
}

func visitPostOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}

	return visitPostOrder(n.Left, f) &&
		visitPostOrder(n.Right, f) &&
		f(n.Value)
}

// PreOrderValues collects the pre-order sequence into a slice.
func PreOrderValues[T constraints.Ordered](n *tree.Node[T]) []T {
	return collect(n, PreOrder[T])
}

// InOrderValues collects the in-order sequence into a slice.
func InOrderValues[T constraints.Ordered](n *tree.Node[T]) []T {
	return collect(n, InOrder[T])
}

// PostOrderValues collects the post-order sequence into a slice.
func PostOrderValues[T constraints.Ordered](n *tree.Node[T]) []T {
	return collect(n, PostOrder[T])
}

func collect[T constraints.Ordered](
	n *tree.Node[T], visit func(*tree.Node[T], func(T) bool)) []T {
	var out []T
	visit(n, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
