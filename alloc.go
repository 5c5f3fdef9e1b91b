// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

// Allocator is the allocation contract threaded through every flat
// container (Buffer, Heap, Deque).
//
// It unifies allocate, reallocate, and free behind one callback, mirroring
// the disjoint meanings of the C-shaped allocation contract this core is
// built from:
//
//	cur == nil                -> allocate a fresh slice of length newCap
//	cur != nil && newCap == 0 -> free cur (return nil, nil)
//	cur != nil && newCap > 0  -> reallocate cur to length newCap, preserving
//	                             the first min(len(cur), newCap) elements
//
// aux is an opaque context value threaded through unchanged; containers
// never interpret it.
//
// A container constructed with a nil Allocator is non-allocating (arena
// mode, per spec.md §3): it never grows and never frees. Buffer and Heap
// operations that would otherwise grow return ErrNoAlloc instead; Deque
// pushes overwrite the oldest elements instead.
//
// Implementations must not retain a reference to cur past the call and
// must be reentrant with respect to container state: a container never
// holds an interior pointer across the callback and reuses it afterward.
type Allocator[T any] func(cur []T, newCap int, aux any) ([]T, error)

// GoAllocator returns the default Allocator, backed by Go's make/copy.
// It never fails except by returning a non-nil error only if newCap is
// negative (an argument error, surfaced as ErrArg by callers).
func GoAllocator[T any]() Allocator[T] {
	return func(cur []T, newCap int, _ any) ([]T, error) {
		if newCap < 0 {
			return nil, ErrArg
		}
		if newCap == 0 {
			return nil, nil
		}
		next := make([]T, newCap)
		copy(next, cur)
		return next, nil
	}
}
