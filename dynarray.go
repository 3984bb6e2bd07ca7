// Package dynarray provides a generic, contiguous, resizable sequence
// container with explicit control over backing storage, element lifetimes,
// and growth.
//
// An Array owns exactly one backing block of slots. Slots [0, Len) hold live
// elements; slots [Len, Cap) are vacant. Element types may opt into lifecycle
// hooks: lifecycle.Disposer for teardown on destruction and
// lifecycle.Cloner for deep copy-construction (see internal/lifecycle for
// the relocation contract). Types without hooks and without pointers in
// their layout are relocated with bulk copies.
//
// An Array is not safe for concurrent mutation; callers provide external
// synchronization. Concurrent reads are safe only while no mutation is in
// flight.
package dynarray

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/FairForge/dynarray/internal/lifecycle"
	"github.com/FairForge/dynarray/internal/slab"
)

// Array is a dynamic array over element type T.
type Array[T any] struct {
	slots []T // backing block, len(slots) == capacity
	n     int // live elements, always <= len(slots)

	ops      lifecycle.Ops[T]
	alloc    slab.Allocator[T]
	tuning   Tuning
	logger   *zap.Logger
	metrics  *Metrics
	elemType string
	stats    Stats
}

// New creates an empty array, allocating the bootstrap capacity up front.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	a := &Array[T]{
		tuning:   DefaultTuning(),
		logger:   zap.NewNop(),
		ops:      lifecycle.For[T](),
		elemType: reflect.TypeOf((*T)(nil)).Elem().String(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("dynarray: %w", err)
	}

	a.alloc = slab.NewAllocator[T](a.tuning.MaxSlots)
	if a.tuning.BootstrapCapacity > 0 {
		block, err := a.alloc.Alloc(a.tuning.BootstrapCapacity)
		if err != nil {
			return nil, fmt.Errorf("bootstrap %d slots: %w", a.tuning.BootstrapCapacity, ErrCapacityExhausted)
		}
		a.slots = block
	}
	return a, nil
}

// Of builds an array holding vals in insertion order.
func Of[T any](vals ...T) (*Array[T], error) {
	a, err := New[T]()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.n }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.slots) }

// At returns the element at index i, or ErrIndexOutOfRange when i is not in
// [0, Len). The array is unchanged on error.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, fmt.Errorf("at %d with length %d: %w", i, a.n, ErrIndexOutOfRange)
	}
	return a.slots[i], nil
}

// MustAt reads slot i with no check against the length. It exists for
// trusted hot paths only: reading at or past the length yields a vacant
// slot's value, and reading past the capacity panics.
func (a *Array[T]) MustAt(i int) T { return a.slots[i] }

// Set replaces the element at index i, destroying the old element and taking
// ownership of v.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("set %d with length %d: %w", i, a.n, ErrIndexOutOfRange)
	}
	a.ops.Destroy(&a.slots[i])
	a.countDestroys(1)
	a.ops.ConstructMove(&a.slots[i], &v)
	a.countConstructs(1)
	return nil
}

// Append inserts v at the end.
func (a *Array[T]) Append(v T) error {
	return a.Insert(a.n, v)
}

// Insert places v at index i, shifting [i, Len) one slot right. Insertion at
// i == Len appends. The array takes ownership of v. On ErrIndexOutOfRange or
// ErrCapacityExhausted the array is unchanged.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.n {
		return fmt.Errorf("insert at %d with length %d: %w", i, a.n, ErrIndexOutOfRange)
	}

	if a.n == len(a.slots) {
		// Growing leaves slot i vacant in the new block, so no second shift.
		if err := a.growLeavingGap(i); err != nil {
			return err
		}
	} else if i < a.n {
		a.ops.ShiftRight(a.slots, i, a.n)
		a.countRelocations(a.n - i)
	}

	a.ops.ConstructMove(&a.slots[i], &v)
	a.n++
	a.countConstructs(1)
	a.noteLen()
	return nil
}

// Delete removes the element at index i, shifting [i+1, Len) one slot left.
// Capacity is never reduced by deletion.
func (a *Array[T]) Delete(i int) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("delete at %d with length %d: %w", i, a.n, ErrIndexOutOfRange)
	}

	a.ops.Destroy(&a.slots[i])
	a.countDestroys(1)
	a.ops.ShiftLeft(a.slots, i+1, a.n)
	a.countRelocations(a.n - i - 1)
	a.n--
	a.noteLen()
	return nil
}

// Clear destroys all live elements, keeping the backing block.
func (a *Array[T]) Clear() {
	a.destroyLive()
	a.n = 0
	a.noteLen()
}

// Each calls fn for every live element in index order, stopping early when
// fn returns false. fn must not mutate the array.
func (a *Array[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < a.n; i++ {
		if !fn(i, a.slots[i]) {
			return
		}
	}
}

// Clone copy-constructs every live element into a fully independent array
// with the same length and capacity.
func (a *Array[T]) Clone() (*Array[T], error) {
	block, err := a.alloc.Alloc(len(a.slots))
	if err != nil {
		return nil, fmt.Errorf("clone with %d slots: %w", len(a.slots), ErrCapacityExhausted)
	}

	b := a.emptyLike()
	b.slots = block
	for i := 0; i < a.n; i++ {
		b.ops.Construct(&b.slots[i], a.slots[i])
	}
	b.n = a.n
	b.countConstructs(b.n)
	b.noteLen()

	a.logger.Debug("dynarray clone",
		zap.String("elem_type", a.elemType),
		zap.Int("elements", a.n),
		zap.Int("slots", len(a.slots)))
	return b, nil
}

// Move transfers ownership of the backing block, length, and capacity to a
// new array without touching any element. The receiver is left empty with
// zero capacity; it stays valid and may be refilled or destroyed.
func (a *Array[T]) Move() *Array[T] {
	b := a.emptyLike()
	b.slots, b.n = a.slots, a.n
	a.slots, a.n = nil, 0
	b.noteLen()
	a.noteLen()

	a.logger.Debug("dynarray move",
		zap.String("elem_type", a.elemType),
		zap.Int("elements", b.n),
		zap.Int("slots", len(b.slots)))
	return b
}

// CopyFrom replaces this array's contents with copies of src's elements.
// When src fits in the existing capacity the allocation is reused; otherwise
// a block matching src's capacity is allocated before anything is destroyed,
// so a failed allocation leaves this array unchanged. Self-assignment is a
// no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}

	if src.n > len(a.slots) {
		block, err := a.alloc.Alloc(len(src.slots))
		if err != nil {
			return fmt.Errorf("copy %d elements over %d slots: %w", src.n, len(a.slots), ErrCapacityExhausted)
		}
		a.destroyLive()
		a.alloc.Free(a.slots)
		a.slots = block
	} else {
		a.destroyLive()
	}
	a.n = 0

	for i := 0; i < src.n; i++ {
		a.ops.Construct(&a.slots[i], src.slots[i])
	}
	a.n = src.n
	a.countConstructs(a.n)
	a.noteLen()
	return nil
}

// MoveFrom destroys this array's elements, frees its block, and takes
// ownership of src's block, length, and capacity, leaving src empty.
// Self-move is a no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}

	a.destroyLive()
	a.alloc.Free(a.slots)

	a.slots, a.n = src.slots, src.n
	src.slots, src.n = nil, 0
	a.noteLen()
	src.noteLen()
}

// Destroy destroys all live elements (highest index down) and releases the
// backing block. A moved-from or already-destroyed array destructs as a
// no-op; the array may be reused afterwards, growing from scratch.
func (a *Array[T]) Destroy() {
	a.destroyLive()
	a.alloc.Free(a.slots)
	a.slots = nil
	a.n = 0
	a.noteLen()
}

// growLeavingGap doubles the backing block and relocates every live element
// into its final position in one pass: elements before gap keep their index,
// elements at or after gap land one slot right, and slot gap is left vacant.
// The new block is allocated before anything moves, so failure leaves the
// array intact.
func (a *Array[T]) growLeavingGap(gap int) error {
	oldCap := len(a.slots)
	newCap := slab.NextCapacity(oldCap)
	block, err := a.alloc.Alloc(newCap)
	if err != nil {
		return fmt.Errorf("grow %d to %d slots: %w", oldCap, newCap, ErrCapacityExhausted)
	}

	a.ops.MoveRange(block[:gap], a.slots[:gap])
	a.ops.MoveRange(block[gap+1:a.n+1], a.slots[gap:a.n])
	a.alloc.Free(a.slots)
	a.slots = block

	a.countRelocations(a.n)
	a.stats.Grows++
	a.metrics.recordGrow(a.elemType)
	a.logger.Debug("dynarray grow",
		zap.String("elem_type", a.elemType),
		zap.Int("from_slots", oldCap),
		zap.Int("to_slots", newCap),
		zap.Int("elements", a.n))
	return nil
}

// destroyLive destroys slots [0, n) highest index down without touching n.
func (a *Array[T]) destroyLive() {
	for i := a.n - 1; i >= 0; i-- {
		a.ops.Destroy(&a.slots[i])
	}
	a.countDestroys(a.n)
}

// emptyLike creates an empty array sharing this one's configuration but
// owning no block.
func (a *Array[T]) emptyLike() *Array[T] {
	return &Array[T]{
		ops:      a.ops,
		alloc:    a.alloc,
		tuning:   a.tuning,
		logger:   a.logger,
		metrics:  a.metrics,
		elemType: a.elemType,
	}
}

func (a *Array[T]) countRelocations(n int) {
	if n <= 0 {
		return
	}
	a.stats.Relocations += uint64(n)
	a.metrics.recordRelocations(a.elemType, n)
}

func (a *Array[T]) countConstructs(n int) {
	if n <= 0 {
		return
	}
	a.stats.Constructs += uint64(n)
	a.metrics.recordConstructs(a.elemType, n)
}

func (a *Array[T]) countDestroys(n int) {
	if n <= 0 {
		return
	}
	a.stats.Destroys += uint64(n)
	a.metrics.recordDestroys(a.elemType, n)
}

func (a *Array[T]) noteLen() {
	if a.n > a.stats.PeakLen {
		a.stats.PeakLen = a.n
	}
	a.metrics.setLive(a.elemType, a.n)
}
