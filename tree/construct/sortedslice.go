package construct

import (
	"fmt"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromSortedSlice builds a height-balanced binary search tree from
// a strictly ascending slice. The middle element of each subrange
// becomes the subtree root; for even-length subranges the LOWER
// middle is chosen, which is the fixed tie-break that makes the
// output deterministic (the tree is not unique otherwise). The
// resulting height is within 1 of the minimum possible.
//
// A slice that is not strictly ascending (out of order, or with
// duplicates) is rejected.
func FromSortedSlice[S ~[]T, T constraints.Ordered](sorted S) (*tree.Node[T], error) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] <= sorted[i-1] {
			return nil, fmt.Errorf(
				"values must be strictly ascending: %v before %v",
				sorted[i-1], sorted[i])
		}
	}

	return fromSorted([]T(sorted)), nil
}

func fromSorted[T constraints.Ordered](sorted []T) *tree.Node[T] {
	if len(sorted) == 0 {
		return nil
	}

	mid := (len(sorted) - 1) / 2 // lower middle

	n := tree.NodeOf(sorted[mid])
	n.Left = fromSorted(sorted[:mid])
	n.Right = fromSorted(sorted[mid+1:])

	return n
}
