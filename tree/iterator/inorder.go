package iterator

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree, yielding
// values in-order. The nodes have no parent pointers, so the
// iterator keeps an internal stack of the nodes it has descended
// past but not yet yielded.
//
// The result of mutating the tree while iterating over it is
// undefined.
type InOrder[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	item  T
}

// Recursive in-order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run, all the
// way down to the leftmost child node. This adds visit stack
// frames and we replicate that in i.stack. The associated call to
// Item is equivalent to f(n). The next call to Next resumes the
// popped frame from (2).

// NewInOrder creates a new in-order iterator over the tree rooted
// at root. If the tree's height is known, pass it as heightHint to
// size the internal stack. Otherwise it's safe to leave it as 0.
func NewInOrder[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrder[T] {
	i := &InOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint),
	}
	i.pushLeftSpine(root)
	return i
}

func (i *InOrder[T]) pushLeftSpine(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if len(i.stack) == 0 {
		return false
	}

	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	i.item = n.Value
	i.pushLeftSpine(n.Right)

	return true
}

// Item returns the current value of the iterator.
func (i *InOrder[T]) Item() T {
	return i.item
}
