package pathsum

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// Count returns the number of downward paths (from any node to any
// of its descendants, following child pointers only) whose values
// sum to target. Single nodes count as paths of length one.
//
// One pass suffices: the map holds, for each prefix sum seen on
// the current root-to-node path, how many ancestors produced it,
// seeded with {0: 1} for the empty prefix. A path ending at the
// current node with the right sum corresponds exactly to an
// ancestor whose prefix sum equals runningSum - target.
//
// The map is shared mutable state across sibling subtrees. The
// decrement before returning is what keeps it honest: without it,
// prefix sums recorded in a left subtree would remain visible
// while the right subtree is walked, counting phantom paths that
// cross between siblings. See TestCountNoSiblingCrossing.
func Count[T constraints.Signed](root *tree.Node[T], target T) int {
	prefix := map[T]int{0: 1}

	var walk func(n *tree.Node[T], running T) int
	walk = func(n *tree.Node[T], running T) int {
		if n == nil {
			return 0
		}

		running += n.Value
		found := prefix[running-target]

		prefix[running]++
		found += walk(n.Left, running) + walk(n.Right, running)
		if prefix[running] == 1 {
			delete(prefix, running) // keep the map small
		} else {
			prefix[running]--
		}

		return found
	}

	return walk(root, 0)
}

// CountNaive is the O(n^2) reference for Count: every node is
// tried as a path start. It exists to cross-check Count and as the
// honest answer when n is tiny anyway.
func CountNaive[T constraints.Signed](root *tree.Node[T], target T) int {
	if root == nil {
		return 0
	}

	return countFrom(root, target) +
		CountNaive(root.Left, target) +
		CountNaive(root.Right, target)
}

// countFrom counts downward paths starting exactly at n.
func countFrom[T constraints.Signed](n *tree.Node[T], rest T) int {
	if n == nil {
		return 0
	}

	rest -= n.Value

	c := 0
	if rest == 0 {
		c = 1
	}

	return c + countFrom(n.Left, rest) + countFrom(n.Right, rest)
}
