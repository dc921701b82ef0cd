package iterator

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PostOrder[int])(nil)

// PostOrder is an iterator object over a binary tree, yielding
// values in post-order. A node stays on the stack while either of
// its subtrees is being visited; the last yielded node is tracked
// to tell "about to descend right" apart from "returning from the
// right", since there are no parent pointers to consult.
//
// The result of mutating the tree while iterating over it is
// undefined.
type PostOrder[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	next  *tree.Node[T]
	last  *tree.Node[T]
	item  T
}

// NewPostOrder creates a new post-order iterator over the tree
// rooted at root. heightHint sizes the internal stack and may be
// left as 0.
func NewPostOrder[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *PostOrder[T] {
	return &PostOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint),
		next:  root,
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *PostOrder[T]) Next() bool {
	for i.next != nil || len(i.stack) > 0 {
		for i.next != nil {
			i.stack = append(i.stack, i.next)
			i.next = i.next.Left
		}

		peek := i.stack[len(i.stack)-1]

		if peek.Right != nil && i.last != peek.Right {
			i.next = peek.Right
			continue
		}

		i.stack = i.stack[:len(i.stack)-1]
		i.last = peek
		i.item = peek.Value

		return true
	}

	return false
}

// Item returns the current value of the iterator.
func (i *PostOrder[T]) Item() T {
	return i.item
}
