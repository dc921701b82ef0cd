package tree

import (
	"golang.org/x/exp/constraints"
)

// Clone returns a deep copy of the tree rooted at n.
// Cloning a nil root returns nil.
func Clone[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	return &Node[T]{
		Value: n.Value,
		Left:  Clone(n.Left),
		Right: Clone(n.Right),
	}
}

// Equal reports whether the trees rooted at a and b have the
// same shape and the same value at every position.
func Equal[T constraints.Ordered](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value &&
		Equal(a.Left, b.Left) &&
		Equal(a.Right, b.Right)
}

// Invert mirrors the tree in place, swapping the left and right
// child of every node, and returns the root again for chaining.
// Inverting twice restores the original tree.
func Invert[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	n.Left, n.Right = Invert(n.Right), Invert(n.Left)

	return n
}

// Merge overlays b onto a. Where both trees have a node at the
// same position the values are summed into a's node; where only
// one tree has a node, that node is used as-is.
//
// Merge rewires child pointers: the result shares nodes with both
// inputs, and neither input should be used on its own afterwards.
func Merge[T constraints.Signed](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	a.Value += b.Value
	a.Left = Merge(a.Left, b.Left)
	a.Right = Merge(a.Right, b.Right)

	return a
}
