package props

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Min returns the smallest value in the tree. ok is false for the
// empty tree. No search-tree ordering is assumed; every node is
// visited.
func Min[T constraints.Ordered](n *tree.Node[T]) (min T, ok bool) {
	if n == nil {
		return min, false
	}

	min = n.Value
	if lm, lok := Min(n.Left); lok && lm < min {
		min = lm
	}
	if rm, rok := Min(n.Right); rok && rm < min {
		min = rm
	}

	return min, true
}

// Max returns the largest value in the tree. ok is false for the
// empty tree. No search-tree ordering is assumed.
func Max[T constraints.Ordered](n *tree.Node[T]) (max T, ok bool) {
	if n == nil {
		return max, false
	}

	max = n.Value
	if lm, lok := Max(n.Left); lok && lm > max {
		max = lm
	}
	if rm, rok := Max(n.Right); rok && rm > max {
		max = rm
	}

	return max, true
}

// Sum returns the sum of all values in the tree. The empty tree
// sums to zero.
func Sum[T constraints.Signed](n *tree.Node[T]) T {
	if n == nil {
		var zero T
		return zero
	}

	return n.Value + Sum(n.Left) + Sum(n.Right)
}

// Mean returns the arithmetic mean of the tree's values. ok is
// false for the empty tree, which has no meaningful mean.
func Mean[T constraints.Signed](n *tree.Node[T]) (mean float64, ok bool) {
	count := Count(n)
	if count == 0 {
		return 0, false
	}

	return float64(Sum(n)) / float64(count), true
}
