package search

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// PathTo returns the values on the path from the root to the first
// node (in pre-order) holding target. ok is false if target is not
// in the tree. No ordering is assumed.
//
// The path is built top-down in a single search: values are pushed
// while descending and popped again when a subtree turns out not
// to contain target, so no parent pointers are needed.
func PathTo[T constraints.Ordered](root *tree.Node[T], target T) (path []T, ok bool) {
	var visit func(*tree.Node[T]) bool
	visit = func(n *tree.Node[T]) bool {
		if n == nil {
			return false
		}

		path = append(path, n.Value)

		if n.Value == target {
			return true
		}
		if visit(n.Left) || visit(n.Right) {
			return true
		}

		path = path[:len(path)-1]
		return false
	}

	if !visit(root) {
		return nil, false
	}

	return path, true
}
