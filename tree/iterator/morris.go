package iterator

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*Morris[int])(nil)

// Morris is a threaded in-order iterator using O(1) extra space.
// It works by temporarily planting "return to" links in the nil
// right pointers of in-order predecessors, exactly like
// traverse.MorrisInOrder, but pausing between yields.
//
// Between Next calls the tree holds temporary links, so unlike the
// other iterators in this package, an abandoned Morris iterator
// leaves the tree altered. Either drain it (the final Next that
// returns false removes the last link) or call Close, which walks
// off the remaining nodes without yielding them and restores every
// planted link.
//
// Because of the temporary links the iterator is not reentrant:
// no other traversal or mutation of the same tree may overlap with
// the lifetime of a Morris iterator.
type Morris[T constraints.Ordered] struct {
	at   *tree.Node[T]
	item T
}

// NewMorris creates a new threaded in-order iterator over the tree
// rooted at root.
func NewMorris[T constraints.Ordered](root *tree.Node[T]) *Morris[T] {
	return &Morris[T]{
		at: root,
	}
}

// Next returns true if there is a next value to yield with Item.
// Next must always be called before Item.
func (i *Morris[T]) Next() bool {
	for i.at != nil {
		if i.at.Left == nil {
			i.item = i.at.Value
			i.at = i.at.Right
			return true
		}

		pred := i.at.Left
		for pred.Right != nil && pred.Right != i.at {
			pred = pred.Right
		}

		if pred.Right == nil {
			pred.Right = i.at
			i.at = i.at.Left
		} else {
			pred.Right = nil
			i.item = i.at.Value
			i.at = i.at.Right
			return true
		}
	}

	return false
}

// Item returns the current value of the iterator.
func (i *Morris[T]) Item() T {
	return i.item
}

// Close finishes the threading walk without yielding any more
// values, removing every temporary link still planted in the tree.
// After Close, Next returns false and the tree is back to its
// pre-iteration shape. Closing a drained iterator is a no-op.
func (i *Morris[T]) Close() {
	for i.at != nil {
		if i.at.Left == nil {
			i.at = i.at.Right
			continue
		}

		pred := i.at.Left
		for pred.Right != nil && pred.Right != i.at {
			pred = pred.Right
		}

		if pred.Right == nil {
			pred.Right = i.at
			i.at = i.at.Left
		} else {
			pred.Right = nil
			i.at = i.at.Right
		}
	}
}
