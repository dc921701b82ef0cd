// Package iterator provides iterator objects over binary trees.
package iterator

import (
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time, except
// for Morris which must be Closed when abandoned.
//
// The usual usage of an Iterator is like this:
//	i := iterator.NewInOrder(root, 0)
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
}
