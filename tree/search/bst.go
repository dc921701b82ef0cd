// Package search provides lookup and relationship queries over
// binary trees: ordered search and closest-value on search trees,
// range extraction, lowest common ancestors, subtree matching and
// root-to-node paths.
//
// Functions whose names or docs mention the search-tree ordering
// assume it as a precondition and never re-validate it (that would
// defeat their purpose); on a tree that doesn't satisfy it, their
// result is undefined. Callers who don't know their tree's
// provenance can check with props.IsBST first.
package search

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Search descends a SEARCH TREE comparing target against each
// node, left on less, right on greater, and returns the node whose
// value equals target, or nil. O(height); never examines the
// branch the ordering rules out.
func Search[T constraints.Ordered](n *tree.Node[T], target T) *tree.Node[T] {
	for n != nil {
		switch tree.Compare(target, n.Value) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.EqualTo:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Contains reports whether target is in the SEARCH TREE rooted at
// n. See Search for the precondition.
func Contains[T constraints.Ordered](n *tree.Node[T], target T) bool {
	return Search(n, target) != nil
}

// Closest returns the value in the SEARCH TREE nearest to target
// by absolute distance, descending by the ordering only - every
// value that could be closer lies on the descent path, so no
// backtracking is needed. Ties keep the value seen first (nearer
// the root). ok is false for the empty tree.
func Closest[T constraints.Signed](n *tree.Node[T], target T) (closest T, ok bool) {
	if n == nil {
		return closest, false
	}

	closest = n.Value
	for n != nil {
		if absDiff(n.Value, target) < absDiff(closest, target) {
			closest = n.Value
		}

		switch tree.Compare(target, n.Value) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.EqualTo:
			return n.Value, true
		default:
			panic("unreachable")
		}
	}

	return closest, true
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Range returns every value of the SEARCH TREE in [lo, hi],
// ascending. A subtree is pruned entirely when the ordering proves
// it cannot intersect the interval, so the cost is proportional to
// the result size plus the tree height.
func Range[T constraints.Ordered](n *tree.Node[T], lo, hi T) []T {
	var out []T

	var visit func(*tree.Node[T])
	visit = func(n *tree.Node[T]) {
		if n == nil {
			return
		}

		if n.Value > lo {
			visit(n.Left)
		}
		if n.Value >= lo && n.Value <= hi {
			out = append(out, n.Value)
		}
		if n.Value < hi {
			visit(n.Right)
		}
	}
	visit(n)

	return out
}
