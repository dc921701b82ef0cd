package construct

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromLevelOrder builds a tree from a breadth-first listing in
// which a nil entry marks a missing child. This is the explicit
// gap-marker form: entries after a gap still line up with the next
// present node, not with an index formula. (The implicit
// 2i+1/2i+2 complete-tree array is a different format and is not
// accepted here.)
//
// Gap markers for the children of absent nodes are not expected:
//	FromLevelOrder([1, nil, 2, 3])
// hangs 2 to the right of 1 and 3 to the left of 2.
// Entries beyond the last attachable child are ignored.
// An empty listing, or one whose first entry is nil, builds the
// empty tree.
func FromLevelOrder[T constraints.Ordered](values []*T) *tree.Node[T] {
	if len(values) == 0 || values[0] == nil {
		return nil
	}

	root := tree.NodeOf(*values[0])

	q := linkedlistqueue.New()
	q.Enqueue(root)

	i := 1
	for i < len(values) && !q.Empty() {
		front, _ := q.Dequeue()
		parent := front.(*tree.Node[T])

		if values[i] != nil {
			parent.Left = tree.NodeOf(*values[i])
			q.Enqueue(parent.Left)
		}
		i++

		if i < len(values) && values[i] != nil {
			parent.Right = tree.NodeOf(*values[i])
			q.Enqueue(parent.Right)
		}
		i++
	}

	return root
}

// FromCompleteArray builds a tree from the implicit complete-tree
// array format: index 0 is the root and node i's children sit at
// 2i+1 and 2i+2, with every entry present. This is a different
// format from FromLevelOrder's gap-marker listing - here position
// is a pure index formula and there are no markers - and the two
// must not be mixed up: the same slice means different trees.
func FromCompleteArray[S ~[]T, T constraints.Ordered](values S) *tree.Node[T] {
	return fromCompleteArray([]T(values), 0)
}

func fromCompleteArray[T constraints.Ordered](values []T, i int) *tree.Node[T] {
	if i >= len(values) {
		return nil
	}

	n := tree.NodeOf(values[i])
	n.Left = fromCompleteArray(values, 2*i+1)
	n.Right = fromCompleteArray(values, 2*i+2)

	return n
}

// Ptr returns &v. It makes FromLevelOrder listings readable:
//	construct.FromLevelOrder([]*int{Ptr(3), Ptr(9), Ptr(20), nil, nil, Ptr(15), Ptr(7)})
func Ptr[T any](v T) *T {
	return &v
}
