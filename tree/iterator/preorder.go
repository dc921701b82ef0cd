package iterator

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder is an iterator object over a binary tree, yielding
// values in pre-order. The stack holds subtrees not yet visited;
// a node's right child is pushed below its left child so the left
// subtree is drained first.
//
// The result of mutating the tree while iterating over it is
// undefined.
type PreOrder[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	item  T
}

// NewPreOrder creates a new pre-order iterator over the tree
// rooted at root. heightHint sizes the internal stack and may be
// left as 0.
func NewPreOrder[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *PreOrder[T] {
	i := &PreOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *PreOrder[T]) Next() bool {
	if len(i.stack) == 0 {
		return false
	}

	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	if n.Right != nil {
		i.stack = append(i.stack, n.Right)
	}
	if n.Left != nil {
		i.stack = append(i.stack, n.Left)
	}

	i.item = n.Value

	return true
}

// Item returns the current value of the iterator.
func (i *PreOrder[T]) Item() T {
	return i.item
}
