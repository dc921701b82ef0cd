package props

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// IsComplete reports whether every level of the tree is fully
// filled except possibly the last, which fills left to right.
//
// The breadth-first walk enqueues absent children as explicit nil
// placeholders; in a complete tree all placeholders come out of
// the queue after all real nodes, so the first placeholder
// followed by a real node disproves completeness. The empty tree
// is complete.
func IsComplete[T constraints.Ordered](root *tree.Node[T]) bool {
	if root == nil {
		return true
	}

	q := linkedlistqueue.New()
	q.Enqueue(root)

	sawGap := false
	for !q.Empty() {
		front, _ := q.Dequeue()
		n := front.(*tree.Node[T])

		if n == nil {
			sawGap = true
			continue
		}

		if sawGap {
			return false
		}

		q.Enqueue(n.Left)
		q.Enqueue(n.Right)
	}

	return true
}

// IsFull reports whether every node has either 0 or 2 children.
// The empty tree is full. This is the shape precondition under
// which construct.FromPrePost is unique.
func IsFull[T constraints.Ordered](n *tree.Node[T]) bool {
	if n == nil {
		return true
	}

	if (n.Left == nil) != (n.Right == nil) {
		return false
	}

	return IsFull(n.Left) && IsFull(n.Right)
}

// IsPerfect reports whether every level of the tree is completely
// filled: a tree of height h with exactly 2^h - 1 nodes.
func IsPerfect[T constraints.Ordered](n *tree.Node[T]) bool {
	return Count(n) == (1<<uint(Height(n)))-1
}
