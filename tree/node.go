// Package tree provides the binary tree node model shared by
// the traverse, construct, props, pathsum and search packages.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. A tree is identified by a pointer
// to its root node; the empty tree is a nil pointer.
//
// A node owns its children exclusively: there are no parent
// pointers and no sharing of subtrees between nodes. Algorithms
// that need to know where they came from keep an explicit stack
// (see the iterator package) or thread temporary links through
// spare right pointers (see traverse.MorrisInOrder).
type Node[T constraints.Ordered] struct {
	Value       T
	Left, Right *Node[T]
}

// NodeOf returns a leaf node holding v.
func NodeOf[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

type Order int

const (
	Less Order = iota - 1
	EqualTo
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return EqualTo
	}
}
