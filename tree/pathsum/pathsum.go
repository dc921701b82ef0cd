// Package pathsum answers path-sum queries over binary trees:
// existence and enumeration of root-to-leaf paths with a given
// sum, counting of downward paths with a given sum, and the
// unconstrained maximum path sum.
//
// The empty tree contains no paths at all, so for a nil root Has
// is false, Collect is empty, Count is zero, and Max reports
// ok=false (there is no honest "sum of no path").
package pathsum

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Has reports whether some root-to-leaf path's values sum to
// target. The path must end at a leaf: a prefix of a longer path
// does not count, so the check at a leaf is that the remaining
// target exactly equals the leaf's value.
func Has[T constraints.Signed](n *tree.Node[T], target T) bool {
	if n == nil {
		return false
	}

	if n.Left == nil && n.Right == nil {
		return target == n.Value
	}

	rest := target - n.Value
	return Has(n.Left, rest) || Has(n.Right, rest)
}

// Collect returns every root-to-leaf path whose values sum to
// target, each as its own slice, in left-to-right discovery order.
//
// One shared buffer carries the values of the current root-to-node
// path; a qualifying leaf copies it into the result. The deferred
// truncation is the backtracking step and runs on every exit path
// of the frame, so sibling subtrees always see the buffer exactly
// as it was when their parent pushed onto it.
func Collect[T constraints.Signed](root *tree.Node[T], target T) [][]T {
	var out [][]T
	var path []T

	var visit func(n *tree.Node[T], rest T)
	visit = func(n *tree.Node[T], rest T) {
		if n == nil {
			return
		}

		path = append(path, n.Value)
		defer func() {
			path = path[:len(path)-1]
		}()

		rest -= n.Value

		if n.Left == nil && n.Right == nil {
			if rest == 0 {
				out = append(out, append([]T(nil), path...))
			}
			return
		}

		visit(n.Left, rest)
		visit(n.Right, rest)
	}
	visit(root, target)

	return out
}
