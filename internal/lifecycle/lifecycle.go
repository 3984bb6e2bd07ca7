// Package lifecycle implements element construction, destruction, and
// relocation for the container types in this module. The capability probe
// runs once per element type; every relocation primitive then dispatches to
// either a bulk copy fast path or a per-slot move that keeps vacated slots
// zeroed.
package lifecycle

import "reflect"

// Disposer is implemented by element types that must release resources when
// an element is destroyed (deleted, overwritten, or dropped with its
// container). Dispose runs exactly once per constructed element.
type Disposer interface {
	Dispose()
}

// Cloner is implemented by element types whose copy-construction must be
// deep. Without it, copy-construction is plain assignment.
type Cloner[T any] interface {
	Clone() T
}

// Ops holds the per-type capability flags and provides the lifecycle
// primitives for one element type. Build it once with For and share it; the
// zero value is not valid.
type Ops[T any] struct {
	trivial  bool
	disposes bool
	clones   bool
	iface    bool
}

// For probes the element type's capabilities. A type is trivially
// relocatable when it has no Dispose hook and its layout is pointer-free, so
// relocating it by raw copy and leaving stale bytes in vacated slots is
// indistinguishable from a move-then-destroy. Types with pointers (including
// strings, slices, maps, and interfaces) take the slow path so vacated slots
// are zeroed and cannot pin element memory past its lifetime.
func For[T any]() Ops[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	o := Ops[T]{
		disposes: t.Implements(reflect.TypeOf((*Disposer)(nil)).Elem()),
		clones:   t.Implements(reflect.TypeOf((*Cloner[T])(nil)).Elem()),
		iface:    t.Kind() == reflect.Interface,
	}
	o.trivial = !o.disposes && !o.iface && pointerFree(t)
	return o
}

// Trivial reports whether the element type is trivially relocatable.
func (o Ops[T]) Trivial() bool { return o.trivial }

// Disposes reports whether destroyed elements run a Dispose hook. For
// interface element types this is resolved per value at destroy time.
func (o Ops[T]) Disposes() bool { return o.disposes || o.iface }

// Construct copy-constructs v into the vacant slot at dst, using the
// element's Clone hook when it has one.
func (o Ops[T]) Construct(dst *T, v T) {
	if o.clones || o.iface {
		if c, ok := any(v).(Cloner[T]); ok {
			*dst = c.Clone()
			return
		}
	}
	*dst = v
}

// ConstructMove moves the value at src into the vacant slot at dst, leaving
// src zeroed. No hooks run; ownership transfers.
func (o Ops[T]) ConstructMove(dst, src *T) {
	*dst = *src
	if !o.trivial {
		var zero T
		*src = zero
	}
}

// Destroy destroys the live element in slot, running its Dispose hook when
// it has one, and leaves the slot vacant.
func (o Ops[T]) Destroy(slot *T) {
	if o.disposes || o.iface {
		if d, ok := any(*slot).(Disposer); ok {
			d.Dispose()
		}
	}
	var zero T
	*slot = zero
}

// Relocate moves the live element at src into the vacant slot at dst,
// leaving src vacant. A relocation is a move, not a copy and not a destroy:
// no hooks run.
func (o Ops[T]) Relocate(dst, src *T) {
	*dst = *src
	if !o.trivial {
		var zero T
		*src = zero
	}
}

// ShiftRight relocates the live range [lo, hi) one slot toward higher
// indices, leaving slot lo vacant. Requires hi < len(slots). The slow path
// walks highest index first so an overlapping shift never reads an
// already-overwritten slot.
func (o Ops[T]) ShiftRight(slots []T, lo, hi int) {
	if hi <= lo {
		return
	}
	if o.trivial {
		copy(slots[lo+1:hi+1], slots[lo:hi])
		return
	}
	for i := hi - 1; i >= lo; i-- {
		o.Relocate(&slots[i+1], &slots[i])
	}
}

// ShiftLeft relocates the live range [lo, hi) one slot toward lower indices,
// leaving slot hi-1 vacant. Requires lo >= 1. The slow path walks lowest
// index first.
func (o Ops[T]) ShiftLeft(slots []T, lo, hi int) {
	if hi <= lo {
		return
	}
	if o.trivial {
		copy(slots[lo-1:hi-1], slots[lo:hi])
		return
	}
	for i := lo; i < hi; i++ {
		o.Relocate(&slots[i-1], &slots[i])
	}
}

// MoveRange relocates every element of src into the corresponding slot of
// dst, leaving src vacant. The ranges must not overlap; it exists for moves
// between two distinct blocks. Requires len(dst) >= len(src).
func (o Ops[T]) MoveRange(dst, src []T) {
	if o.trivial {
		copy(dst, src)
		return
	}
	for i := range src {
		o.Relocate(&dst[i], &src[i])
	}
}

// pointerFree reports whether a value of type t contains no pointers
// anywhere in its layout.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
