package props

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Balanced reports whether at every node the heights of the two
// subtrees differ by at most 1. Height and balance are computed in
// the same post-order pass: a subtree that is already unbalanced
// reports the sentinel height -1, which propagates straight up and
// short-circuits the rest of the walk.
func Balanced[T constraints.Ordered](n *tree.Node[T]) bool {
	return balancedHeight(n) >= 0
}

func balancedHeight[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	lh := balancedHeight(n.Left)
	if lh < 0 {
		return -1
	}

	rh := balancedHeight(n.Right)
	if rh < 0 {
		return -1
	}

	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}

	return 1 + maxInt(lh, rh)
}

// Diameter returns the length in edges of the longest path between
// any two nodes in the tree. Like Balanced, it rides on a single
// post-order height computation: the path through each node is the
// sum of its subtree heights, tracked as a running maximum while
// the heights bubble up.
func Diameter[T constraints.Ordered](n *tree.Node[T]) int {
	best := 0

	var height func(*tree.Node[T]) int
	height = func(n *tree.Node[T]) int {
		if n == nil {
			return 0
		}

		lh := height(n.Left)
		rh := height(n.Right)

		if lh+rh > best {
			best = lh + rh
		}

		return 1 + maxInt(lh, rh)
	}
	height(n)

	return best
}
