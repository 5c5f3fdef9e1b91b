// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

// defaultCapacity is the capacity a zero-capacity buffer grows to on its
// first allocation, per spec.md §4.2's growth policy.
const defaultCapacity = 8

// Buffer is a typed contiguous slab of slots: the substrate every flat
// container (Heap, Deque) is built on. It tracks count <= capacity and
// offers slot-indexed access, push/pop at the tail, and growth through an
// Allocator.
//
// Buffer is not safe for concurrent use; see spec.md §5.
type Buffer[T any] struct {
	slots []T // len(slots) == capacity always
	count int
	alloc Allocator[T]
	aux   any
}

// NewBuffer creates a Buffer with the given initial capacity. A nil alloc
// makes the buffer non-allocating (arena mode): it will never grow past
// capacity and AllocCapacity will only be able to shrink it.
func NewBuffer[T any](capacity int, alloc Allocator[T], aux any) (*Buffer[T], error) {
	if capacity < 0 {
		return nil, ErrArg
	}
	b := &Buffer[T]{alloc: alloc, aux: aux}
	if capacity == 0 {
		return b, nil
	}
	if alloc == nil {
		b.slots = make([]T, capacity)
		return b, nil
	}
	if err := b.AllocCapacity(capacity); err != nil {
		return nil, err
	}
	return b, nil
}

// Capacity returns the number of slots currently backing the buffer.
func (b *Buffer[T]) Capacity() int { return len(b.slots) }

// Count returns the number of live slots.
func (b *Buffer[T]) Count() int { return b.count }

// At returns a pointer to slot i. Bounds: i must be < Capacity(), not
// merely < Count() — random access past Count() into unallocated-but-backed
// slots is the caller's responsibility, per spec.md §4.2.
func (b *Buffer[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(b.slots) {
		return nil, ErrArg
	}
	return &b.slots[i], nil
}

// Write overwrites slot i with src. Bounds as in At.
func (b *Buffer[T]) Write(i int, src T) error {
	if i < 0 || i >= len(b.slots) {
		return ErrArg
	}
	b.slots[i] = src
	return nil
}

// Swap exchanges the contents of slots i and j.
func (b *Buffer[T]) Swap(i, j int) error {
	if i < 0 || i >= len(b.slots) || j < 0 || j >= len(b.slots) {
		return ErrArg
	}
	b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
	return nil
}

// AllocBack returns a pointer to slot Count(), grows the buffer if
// Count() == Capacity() and growth is possible, and increments Count().
// Fails with ErrNoAlloc/ErrMem if growth is required but not possible.
func (b *Buffer[T]) AllocBack() (*T, error) {
	if b.count == len(b.slots) {
		if err := b.grow(1); err != nil {
			return nil, err
		}
	}
	p := &b.slots[b.count]
	b.count++
	return p, nil
}

// PopBack removes the last live slot. Fails with ErrArg if empty.
func (b *Buffer[T]) PopBack() error {
	if b.count == 0 {
		return ErrArg
	}
	var zero T
	b.count--
	b.slots[b.count] = zero
	return nil
}

// PopBackN removes the last n live slots. Fails with ErrArg if n is
// negative or greater than Count(); the count is left untouched on
// failure (no-partial-growth's symmetric counterpart for shrink).
func (b *Buffer[T]) PopBackN(n int) error {
	if n < 0 || n > b.count {
		return ErrArg
	}
	var zero T
	for i := b.count - n; i < b.count; i++ {
		b.slots[i] = zero
	}
	b.count -= n
	return nil
}

// AllocCapacity grows or shrinks the buffer to exactly newcap slots.
// newcap == 0 frees the backing storage. Shrinking below Count() truncates
// the live range (callers that need to preserve elements must PopBack them
// first). No-partial-growth: on failure the buffer's prior capacity, count,
// and contents are left exactly as they were.
func (b *Buffer[T]) AllocCapacity(newcap int) error {
	if newcap < 0 {
		return ErrArg
	}
	if b.alloc == nil {
		if newcap < len(b.slots) {
			// Shrinking a non-allocating buffer just narrows the window;
			// no allocator call is required.
			b.slots = b.slots[:newcap]
			if b.count > newcap {
				b.count = newcap
			}
			return nil
		}
		if newcap == len(b.slots) {
			return nil
		}
		return ErrNoAlloc
	}
	next, err := b.alloc(b.slots, newcap, b.aux)
	if err != nil {
		return err
	}
	if newcap > 0 && next == nil {
		return ErrMem
	}
	b.slots = next
	if b.count > newcap {
		b.count = newcap
	}
	return nil
}

// grow ensures room for `additional` more live slots beyond Count(),
// doubling capacity (or starting from defaultCapacity) per spec.md §4.2's
// growth policy.
func (b *Buffer[T]) grow(additional int) error {
	need := b.count + additional
	if need <= len(b.slots) {
		return nil
	}
	return b.AllocCapacity(growTarget(len(b.slots), need))
}

// growTarget computes the next capacity that is at least `need`, starting
// from curCap and doubling (or starting from defaultCapacity if curCap is
// 0), per spec.md §4.2's growth policy. Shared by Buffer and Deque so both
// containers double capacity identically.
func growTarget(curCap, need int) int {
	newcap := curCap * 2
	if newcap == 0 {
		newcap = defaultCapacity
	}
	for newcap < need {
		newcap *= 2
	}
	return newcap
}

// Begin returns the first iteration index (0), or -1 if the buffer is
// empty.
func (b *Buffer[T]) Begin() int {
	if b.count == 0 {
		return -1
	}
	return 0
}

// Next advances an iteration index, returning -1 once iteration is
// exhausted.
func (b *Buffer[T]) Next(i int) int {
	i++
	if i >= b.count {
		return -1
	}
	return i
}

// End is the sentinel iteration index.
func (b *Buffer[T]) End() int { return -1 }

// RBegin returns the last iteration index for reverse iteration, or -1 if
// empty.
func (b *Buffer[T]) RBegin() int {
	if b.count == 0 {
		return -1
	}
	return b.count - 1
}

// RNext steps a reverse iteration index backwards, returning -1 once
// exhausted.
func (b *Buffer[T]) RNext(i int) int {
	i--
	if i < 0 {
		return -1
	}
	return i
}
