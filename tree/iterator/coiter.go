package iterator

import (
	"golang.org/x/exp/constraints"
)

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T constraints.Ordered] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the values from the iterator
// will be sent.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than
// once. If the Items channel is closed, this doesn't need to be
// called.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration over it.
// The usage is as follows:
//
//	co := iterator.CoIterate[int](iterator.NewInOrder(root, 0))
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either Stop is
// called or the iteration is finished. If you follow the usage
// above, the goroutine will not live beyond the end of the
// for-range loop.
//
// Don't pass a Morris iterator to CoIterate: a Stop between yields
// would abandon it with threads still planted, and the consuming
// goroutine has no way to Close it at the right moment.
func CoIterate[T constraints.Ordered](it Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if it == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, it Iterator[T]) {
		defer close(out)
		for it.Next() {
			select {
			case out <- it.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, it)

	return co
}
