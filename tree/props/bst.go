package props

import (
	"go.lepak.sg/treekit/tree"
	"go.lepak.sg/treekit/tree/traverse"
	"golang.org/x/exp/constraints"
)

// IsBST reports whether the tree satisfies the search-tree
// ordering: every value in a node's left subtree is strictly less
// than the node's value, and every value in its right subtree is
// strictly greater. Equal values anywhere are a violation (no
// duplicates permitted).
//
// An open (min, max) interval narrows top-down; a node is valid
// only if its value lies strictly inside the current interval. The
// empty tree is a valid search tree.
func IsBST[T constraints.Ordered](n *tree.Node[T]) bool {
	return bstWithin(n, nil, nil)
}

// nil bounds mean unbounded on that side.
func bstWithin[T constraints.Ordered](n *tree.Node[T], min, max *T) bool {
	if n == nil {
		return true
	}

	if min != nil && n.Value <= *min {
		return false
	}
	if max != nil && n.Value >= *max {
		return false
	}

	v := n.Value
	return bstWithin(n.Left, min, &v) && bstWithin(n.Right, &v, max)
}

// IsBSTInOrder answers the same question as IsBST by checking that
// the in-order sequence is strictly increasing. It streams the
// traversal and stops at the first violation rather than
// materializing the sequence, but still does more work per node
// than IsBST; it exists as the independent cross-check.
func IsBSTInOrder[T constraints.Ordered](n *tree.Node[T]) bool {
	ok := true
	var prev *T

	traverse.InOrder(n, func(v T) bool {
		if prev != nil && v <= *prev {
			ok = false
			return false
		}
		vv := v
		prev = &vv
		return true
	})

	return ok
}
