// Package props computes structural predicates and metrics over
// binary trees: balance, completeness, search-tree validity,
// height, diameter, counts and value statistics. Everything here
// is a read-only single pass (or less) over the tree.
package props

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Height returns the number of nodes on the longest root-to-leaf
// path. The empty tree has height 0, a single node height 1.
// (Diameter, by contrast, is measured in edges.)
func Height[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + maxInt(Height(n.Left), Height(n.Right))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
