// Package construct builds binary trees from traversal sequences,
// constrained sequences, arrays and strings. Malformed input is
// rejected with a descriptive error before any tree is built; no
// function returns a partially built tree alongside an error.
package construct

import (
	"fmt"

	"go.lepak.sg/treekit/tree"
	"golang.org/x/exp/constraints"
)

// FromPreIn reconstructs the unique binary tree with the given
// pre-order and in-order traversals. All values must be distinct:
// a duplicate breaks the uniqueness argument and is rejected.
// Two empty traversals reconstruct the empty tree.
//
// The recursion never slices or copies the inputs; each call works
// on an in-order index window and consumes pre-order elements
// through a cursor, with a value-to-index map making the window
// split O(1). Total work is O(n).
func FromPreIn[S ~[]T, T constraints.Ordered](pre, in S) (*tree.Node[T], error) {
	idx, err := indexSequences(pre, in, "pre")
	if err != nil {
		return nil, err
	}

	b := pairBuilder[T]{order: []T(pre), idx: idx}
	return b.buildPre(0, len(in)-1)
}

// FromInPost reconstructs the unique binary tree with the given
// in-order and post-order traversals. It is FromPreIn's mirror:
// the last unconsumed post-order element is the subtree root, so
// the cursor runs backwards and the right subtree is built first.
// The same distinctness requirement applies.
func FromInPost[S ~[]T, T constraints.Ordered](in, post S) (*tree.Node[T], error) {
	idx, err := indexSequences(post, in, "post")
	if err != nil {
		return nil, err
	}

	b := pairBuilder[T]{order: []T(post), idx: idx, next: len(post) - 1}
	return b.buildPost(0, len(in)-1)
}

// indexSequences checks the pair's lengths and builds the in-order
// value-to-index map, rejecting duplicates while doing so.
func indexSequences[S ~[]T, T constraints.Ordered](
	other, in S, otherName string) (map[T]int, error) {
	if len(other) != len(in) {
		return nil, fmt.Errorf(
			"%s- and in-order traversals have different lengths (%d != %d)",
			otherName, len(other), len(in))
	}

	idx := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := idx[v]; ok {
			return nil, fmt.Errorf(
				"duplicated value %v in in-order traversal", v)
		}
		idx[v] = i
	}

	return idx, nil
}

type pairBuilder[T constraints.Ordered] struct {
	order []T
	idx   map[T]int
	next  int
}

// buildPre builds the subtree whose in-order values occupy
// [lo, hi], consuming pre-order elements front to back.
func (b *pairBuilder[T]) buildPre(lo, hi int) (*tree.Node[T], error) {
	if lo > hi {
		return nil, nil
	}

	v := b.order[b.next]
	i, ok := b.idx[v]
	if !ok || i < lo || i > hi {
		return nil, fmt.Errorf(
			"pre-order value %v not found in its in-order partition", v)
	}
	b.next++

	n := tree.NodeOf(v)

	var err error
	if n.Left, err = b.buildPre(lo, i-1); err != nil {
		return nil, err
	}
	if n.Right, err = b.buildPre(i+1, hi); err != nil {
		return nil, err
	}

	return n, nil
}

// buildPost builds the subtree whose in-order values occupy
// [lo, hi], consuming post-order elements back to front. The right
// subtree must be built first to keep the cursor consistent.
func (b *pairBuilder[T]) buildPost(lo, hi int) (*tree.Node[T], error) {
	if lo > hi {
		return nil, nil
	}

	v := b.order[b.next]
	i, ok := b.idx[v]
	if !ok || i < lo || i > hi {
		return nil, fmt.Errorf(
			"post-order value %v not found in its in-order partition", v)
	}
	b.next--

	n := tree.NodeOf(v)

	var err error
	if n.Right, err = b.buildPost(i+1, hi); err != nil {
		return nil, err
	}
	if n.Left, err = b.buildPost(lo, i-1); err != nil {
		return nil, err
	}

	return n, nil
}
