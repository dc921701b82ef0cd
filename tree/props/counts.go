package props

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Count returns the number of nodes in the tree.
func Count[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + Count(n.Left) + Count(n.Right)
}

// CountLeaves returns the number of nodes with no children.
func CountLeaves[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	if n.Left == nil && n.Right == nil {
		return 1
	}

	return CountLeaves(n.Left) + CountLeaves(n.Right)
}

// CountInternal returns the number of nodes with at least one
// child.
func CountInternal[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	if n.Left == nil && n.Right == nil {
		return 0
	}

	return 1 + CountInternal(n.Left) + CountInternal(n.Right)
}

// CountComplete returns the number of nodes of a COMPLETE tree in
// O(log^2 n), against Count's O(n). When a subtree's leftmost and
// rightmost edge depths agree, the subtree is perfect and holds
// exactly 2^depth - 1 nodes with no need to walk it; in a complete
// tree this closes at least one of the two recursions at every
// level. Calling it on a non-complete tree returns a wrong answer,
// not an error; the caller owns the precondition (check with
// IsComplete when in doubt).
func CountComplete[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	ld := 0
	for l := n; l != nil; l = l.Left {
		ld++
	}
	rd := 0
	for r := n; r != nil; r = r.Right {
		rd++
	}

	if ld == rd {
		return (1 << uint(ld)) - 1
	}

	return 1 + CountComplete(n.Left) + CountComplete(n.Right)
}
