package traverse

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// LevelOrder applies f to each value of the tree in breadth-first
// order, left to right within each level. If f returns false, the
// traversal is stopped early. A nil root visits nothing.
func LevelOrder[T constraints.Ordered](n *tree.Node[T], f func(T) bool) {
	if n == nil {
		return
	}

	q := linkedlistqueue.New()
	q.Enqueue(n)

	for !q.Empty() {
		front, _ := q.Dequeue()
		cur := front.(*tree.Node[T])

		if !f(cur.Value) {
			return
		}

		if cur.Left != nil {
			q.Enqueue(cur.Left)
		}
		if cur.Right != nil {
			q.Enqueue(cur.Right)
		}
	}
}

// LevelOrderValues collects the breadth-first sequence into a
// single flat slice.
func LevelOrderValues[T constraints.Ordered](n *tree.Node[T]) []T {
	var out []T
	LevelOrder(n, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Levels returns the tree's values one slice per breadth level,
// left to right within each level. Level boundaries come from the
// queue size snapshotted before each level is drained; there are
// no sentinel markers in the queue.
func Levels[T constraints.Ordered](n *tree.Node[T]) [][]T {
	if n == nil {
		return nil
	}

	var out [][]T

	q := linkedlistqueue.New()
	q.Enqueue(n)

	for !q.Empty() {
		width := q.Size()
		level := make([]T, 0, width)

		for i := 0; i < width; i++ {
			front, _ := q.Dequeue()
			cur := front.(*tree.Node[T])

			level = append(level, cur.Value)

			if cur.Left != nil {
				q.Enqueue(cur.Left)
			}
			if cur.Right != nil {
				q.Enqueue(cur.Right)
			}
		}

		out = append(out, level)
	}

	return out
}

// Zigzag is Levels with alternating direction: the first level
// reads left to right, the second right to left, and so on. Each
// level is built in a deque, appending or prepending depending on
// the level's orientation.
func Zigzag[T constraints.Ordered](n *tree.Node[T]) [][]T {
	if n == nil {
		return nil
	}

	var out [][]T
	leftToRight := true

	q := linkedlistqueue.New()
	q.Enqueue(n)

	for !q.Empty() {
		width := q.Size()
		dq := doublylinkedlist.New()

		for i := 0; i < width; i++ {
			front, _ := q.Dequeue()
			cur := front.(*tree.Node[T])

			if leftToRight {
				dq.Add(cur.Value)
			} else {
				dq.Prepend(cur.Value)
			}

			if cur.Left != nil {
				q.Enqueue(cur.Left)
			}
			if cur.Right != nil {
				q.Enqueue(cur.Right)
			}
		}

		level := make([]T, 0, dq.Size())
		dq.Each(func(_ int, v interface{}) {
			level = append(level, v.(T))
		})

		out = append(out, level)
		leftToRight = !leftToRight
	}

	return out
}
