package syntax

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic typed arena for allocating nodes. Elements are never
// moved once allocated; cross-node references are NodeRef indices into the
// same arena, never pointers, so the arena can be copied or resized freely.
type Arena[T any] struct {
	data []T
}

// NewArena creates an Arena[T] with an initial capacity hint; zero is
// allowed.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return a.Len()
}

// Get returns the element at the given 1-based index. Index 0 panics; it
// denotes "no node" and callers must check validity before dereferencing.
func (a *Arena[T]) Get(index uint32) *T {
	return &a.data[index-1]
}

// Len returns the number of elements in the arena.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("syntax: arena length overflow: %w", err))
	}
	return n
}
