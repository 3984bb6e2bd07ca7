// Package slab manages raw slot blocks for the container types in this
// module. It reasons purely in slot counts: it never constructs, destroys,
// or inspects the elements stored in a block.
package slab

import (
	"errors"
	"fmt"
	"math"
)

// ErrExhausted is returned when a block of the requested size cannot be
// provided, either because it exceeds the allocator's slot limit or because
// the request overflows.
var ErrExhausted = errors.New("slab: slot allocation exhausted")

// Allocator hands out and reclaims slot blocks for a single element type.
// The zero value is a valid allocator with no slot limit.
type Allocator[T any] struct {
	maxSlots int // 0 means unlimited
}

// NewAllocator creates an allocator that refuses blocks larger than maxSlots.
// A maxSlots of 0 disables the limit.
func NewAllocator[T any](maxSlots int) Allocator[T] {
	if maxSlots < 0 {
		maxSlots = 0
	}
	return Allocator[T]{maxSlots: maxSlots}
}

// MaxSlots returns the configured slot limit, 0 if unlimited.
func (a Allocator[T]) MaxSlots() int { return a.maxSlots }

// Alloc returns a fresh zeroed block of exactly n slots. It either succeeds
// with a block of the full requested size or fails with ErrExhausted; it
// never returns a short block. A request of 0 slots returns a nil block.
func (a Allocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d slots: %w", n, ErrExhausted)
	}
	if n == 0 {
		return nil, nil
	}
	if a.maxSlots > 0 && n > a.maxSlots {
		return nil, fmt.Errorf("alloc %d slots exceeds limit %d: %w", n, a.maxSlots, ErrExhausted)
	}
	return make([]T, n), nil
}

// Free reclaims a block. Every allocated block is freed exactly once, by
// whichever owner currently holds it. The block is zeroed so reclaimed slots
// cannot pin element memory past their lifetime.
func (a Allocator[T]) Free(block []T) {
	clear(block)
}

// NextCapacity returns the capacity to grow to from cur: doubling, with a
// bootstrap of 1 from a zero-capacity block and a clamp against overflow.
func NextCapacity(cur int) int {
	if cur <= 0 {
		return 1
	}
	if cur > math.MaxInt/2 {
		return math.MaxInt
	}
	return cur * 2
}
