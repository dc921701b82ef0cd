package traverse

import (
	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// MorrisInOrder applies f to each value of the tree in-order using
// O(1) extra space. Instead of a stack, the in-order predecessor of
// each node with a left child lends its nil right pointer as a
// temporary "return to" link; each planted link is removed again
// when the walk passes through it a second time.
//
// The traversal mutates the tree while running and restores it
// before returning, even if f stops the visits early: after an
// early stop the walk keeps unthreading without calling f, so the
// tree is always back to its pre-call shape when MorrisInOrder
// returns. Because of the temporary links, the traversal is not
// reentrant: no other traversal or mutation of the same tree may
// run concurrently with it.
func MorrisInOrder[T constraints.Ordered](root *tree.Node[T], f func(T) bool) {
	cur := root
	stopped := false

	for cur != nil {
		if cur.Left == nil {
			if !stopped && !f(cur.Value) {
				stopped = true
			}
			cur = cur.Right
			continue
		}

		// find the in-order predecessor: rightmost node of
		// the left subtree, stopping short of the thread we
		// may already have planted
		pred := cur.Left
		for pred.Right != nil && pred.Right != cur {
			pred = pred.Right
		}

		if pred.Right == nil {
			pred.Right = cur
			cur = cur.Left
		} else {
			pred.Right = nil
			if !stopped && !f(cur.Value) {
				stopped = true
			}
			cur = cur.Right
		}
	}
}

// MorrisPreOrder is MorrisInOrder's pre-order sibling: same
// threading, but a node with a left child is visited when the
// thread is planted rather than when it is removed. The same
// restoration and reentrancy notes apply.
func MorrisPreOrder[T constraints.Ordered](root *tree.Node[T], f func(T) bool) {
	cur := root
	stopped := false

	for cur != nil {
		if cur.Left == nil {
			if !stopped && !f(cur.Value) {
				stopped = true
			}
			cur = cur.Right
			continue
		}

		pred := cur.Left
		for pred.Right != nil && pred.Right != cur {
			pred = pred.Right
		}

		if pred.Right == nil {
			if !stopped && !f(cur.Value) {
				stopped = true
			}
			pred.Right = cur
			cur = cur.Left
		} else {
			pred.Right = nil
			cur = cur.Right
		}
	}
}
