package construct

import (
	"fmt"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromPrePost reconstructs a binary tree from its pre-order and
// post-order traversals. The pair only determines the tree
// uniquely when the tree is full (every node has 0 or 2 children);
// for input that came from a non-full tree, FromPrePost returns a
// valid tree consistent with both traversals in which every lone
// child hangs to the left. All values must be distinct.
//
// The left subtree's root is the element after the current root in
// pre-order; its position in post-order delimits the left
// subtree's size, so the recursion works on index windows only.
func FromPrePost[S ~[]T, T constraints.Ordered](pre, post S) (*tree.Node[T], error) {
	if len(pre) != len(post) {
		return nil, fmt.Errorf(
			"pre- and post-order traversals have different lengths (%d != %d)",
			len(pre), len(post))
	}

	idx := make(map[T]int, len(post))
	for i, v := range post {
		if _, ok := idx[v]; ok {
			return nil, fmt.Errorf(
				"duplicated value %v in post-order traversal", v)
		}
		idx[v] = i
	}

	b := prePostBuilder[T]{pre: []T(pre), postIdx: idx}
	return b.build(0, len(pre)-1, 0, len(post)-1)
}

type prePostBuilder[T constraints.Ordered] struct {
	pre     []T
	postIdx map[T]int
}

func (b *prePostBuilder[T]) build(
	preLo, preHi, postLo, postHi int) (*tree.Node[T], error) {
	if preLo > preHi {
		return nil, nil
	}

	v := b.pre[preLo]
	if i, ok := b.postIdx[v]; !ok || i != postHi {
		return nil, fmt.Errorf(
			"pre- and post-order traversals disagree at value %v", v)
	}

	n := tree.NodeOf(v)
	if preLo == preHi {
		return n, nil
	}

	// pre[preLo+1] roots the left subtree; everything up to and
	// including it in the post-order window belongs to that subtree
	li, ok := b.postIdx[b.pre[preLo+1]]
	if !ok || li < postLo || li >= postHi {
		return nil, fmt.Errorf(
			"pre-order value %v not found in its post-order partition",
			b.pre[preLo+1])
	}
	leftSize := li - postLo + 1

	var err error
	if n.Left, err = b.build(
		preLo+1, preLo+leftSize, postLo, li); err != nil {
		return nil, err
	}
	if n.Right, err = b.build(
		preLo+leftSize+1, preHi, li+1, postHi-1); err != nil {
		return nil, err
	}

	return n, nil
}
