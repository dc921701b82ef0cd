package construct

import (
	"fmt"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromBSTPreOrder reconstructs a binary search tree from its
// pre-order traversal alone, in one pass. The search-tree ordering
// makes the reconstruction deterministic: each recursive call
// carries an open (min, max) admissibility interval and consumes
// the next value only if it lies strictly inside it, so no
// backtracking is ever needed.
//
// Input that is not the pre-order traversal of any search tree
// (out-of-order or duplicated values) leaves values unconsumed and
// is rejected.
func FromBSTPreOrder[S ~[]T, T constraints.Ordered](pre S) (*tree.Node[T], error) {
	b := bstBuilder[T]{pre: []T(pre)}
	root := b.build(nil, nil)

	if b.next != len(pre) {
		return nil, fmt.Errorf(
			"not a search tree pre-order traversal: value %v is inadmissible",
			pre[b.next])
	}

	return root, nil
}

type bstBuilder[T constraints.Ordered] struct {
	pre  []T
	next int
}

// build consumes the next value if it lies strictly inside
// (min, max), where a nil bound means unbounded on that side.
func (b *bstBuilder[T]) build(min, max *T) *tree.Node[T] {
	if b.next == len(b.pre) {
		return nil
	}

	v := b.pre[b.next]
	if min != nil && v <= *min {
		return nil
	}
	if max != nil && v >= *max {
		return nil
	}
	b.next++

	n := tree.NodeOf(v)
	n.Left = b.build(min, &v)
	n.Right = b.build(&v, max)

	return n
}
