package pathsum

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Max returns the largest sum over all paths in the tree, where a
// path connects any node to any other node through parent-child
// edges without revisiting, and must contain at least one node.
// ok is false for the empty tree.
//
// Each post-order call returns the best downward-continuing gain
// from its node: the node's value plus the better child gain, with
// each child gain floored at zero so a negative subtree is left
// out rather than subtracted. The global maximum is updated with
// the node's value plus BOTH floored child gains. The asymmetry is
// the whole algorithm: a path continuing upward through this node
// must be a single unbroken line and may use at most one child,
// but a path that tops out ("turns") here may use both.
func Max[T constraints.Signed](root *tree.Node[T]) (best T, ok bool) {
	if root == nil {
		return best, false
	}

	best = root.Value

	var gain func(n *tree.Node[T]) T
	gain = func(n *tree.Node[T]) T {
		if n == nil {
			return 0
		}

		lg := gain(n.Left)
		if lg < 0 {
			lg = 0
		}
		rg := gain(n.Right)
		if rg < 0 {
			rg = 0
		}

		if through := n.Value + lg + rg; through > best {
			best = through
		}

		if lg > rg {
			return n.Value + lg
		}
		return n.Value + rg
	}
	gain(root)

	return best, true
}
