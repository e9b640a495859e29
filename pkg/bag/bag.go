// Package bag provides a growable, order-agnostic container with O(1)
// swap-removal. It backs the asset registry's reload listener list.
package bag

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by RemoveAt for an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("bag: index out of range")

// initialCapacity is the backing array size allocated on the first Add.
const initialCapacity = 4

// trimThreshold is the utilization below which TrimExcess reallocates.
// Trimming a nearly-full bag would just cause shrink/grow thrashing.
const trimThreshold = 0.9

// Bag is a growable unordered collection. Add appends in amortized O(1);
// Remove and RemoveAt overwrite the removed slot with the last element, so
// removal does not preserve insertion order. Callers that need ordered
// iteration must not use Bag.
//
// The zero value is an empty bag ready for use.
type Bag[T comparable] struct {
	items []T
}

// Add appends item, doubling the backing array when full.
func (b *Bag[T]) Add(item T) {
	if len(b.items) == cap(b.items) {
		b.grow()
	}
	b.items = append(b.items, item)
}

func (b *Bag[T]) grow() {
	newCap := cap(b.items) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]T, len(b.items), newCap)
	copy(grown, b.items)
	b.items = grown
}

// Remove deletes the first occurrence of item and reports whether one was
// found. The scan is O(n); the removal itself is O(1).
func (b *Bag[T]) Remove(item T) bool {
	for i, it := range b.items {
		if it == item {
			b.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveAt deletes the element at index i by swapping in the last element.
func (b *Bag[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(b.items) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(b.items))
	}
	b.removeAt(i)
	return nil
}

func (b *Bag[T]) removeAt(i int) {
	last := len(b.items) - 1
	b.items[i] = b.items[last]
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
}

// Len returns the number of elements.
func (b *Bag[T]) Len() int {
	return len(b.items)
}

// Cap returns the current backing array capacity.
func (b *Bag[T]) Cap() int {
	return cap(b.items)
}

// At returns the element at index i in the bag's current layout. The layout
// changes on removal; indexes are only meaningful between mutations.
func (b *Bag[T]) At(i int) T {
	return b.items[i]
}

// Snapshot returns a copy of the elements in the bag's current layout.
func (b *Bag[T]) Snapshot() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// TrimExcess reallocates the backing array to exact size, but only when
// utilization is below 90%.
func (b *Bag[T]) TrimExcess() {
	if cap(b.items) == 0 {
		return
	}
	if float64(len(b.items)) >= trimThreshold*float64(cap(b.items)) {
		return
	}
	trimmed := make([]T, len(b.items))
	copy(trimmed, b.items)
	b.items = trimmed
}
