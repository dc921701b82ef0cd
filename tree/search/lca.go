package search

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// LCA returns the lowest common ancestor of nodes a and b in the
// tree rooted at root, compared by node identity, with no ordering
// assumption. A node is its own ancestor, so if a is an ancestor
// of b, LCA returns a.
//
// Both a and b must be nodes of the tree; if only one of them is,
// that node comes back, and if neither is, nil does. The post-order
// recursion returns the target it found in each subtree, and the
// first node whose two subtrees both produced one is the answer.
func LCA[T constraints.Ordered](root, a, b *tree.Node[T]) *tree.Node[T] {
	if root == nil || root == a || root == b {
		return root
	}

	l := LCA(root.Left, a, b)
	r := LCA(root.Right, a, b)

	switch {
	case l != nil && r != nil:
		// a and b are in different subtrees; they meet here
		return root
	case l != nil:
		return l
	default:
		return r
	}
}

// LCAValues is the SEARCH TREE shortcut: the lowest common
// ancestor of the nodes holding values a and b is the first node
// whose value falls between them, found by value comparisons alone
// with no need to examine both children. Returns nil if the
// descent exhausts the tree. Both values must be present for the
// result to be meaningful.
func LCAValues[T constraints.Ordered](root *tree.Node[T], a, b T) *tree.Node[T] {
	if a > b {
		a, b = b, a
	}

	n := root
	for n != nil {
		switch {
		case b < n.Value:
			n = n.Left
		case a > n.Value:
			n = n.Right
		default:
			// a <= n.Value <= b: the paths to a and b split here
			return n
		}
	}

	return nil
}
