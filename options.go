// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

// This file mirrors the teacher's Builder/Options split (spec.md §1.2):
// direct New* constructors cover the common case; the Config[T] builders
// below spell out arena-vs-growable mode as named configuration for
// callers who want that read clearly at the call site instead of via a
// nil-vs-non-nil Allocator argument.

// BufferConfig builds a Buffer with named, chainable configuration.
type BufferConfig[T any] struct {
	capacity int
	alloc    Allocator[T]
	aux      any
}

// NewBufferConfig starts a BufferConfig with the given initial capacity.
// The default mode is arena (no allocator); call Allocator to make it
// growable.
func NewBufferConfig[T any](capacity int) *BufferConfig[T] {
	return &BufferConfig[T]{capacity: capacity}
}

// Arena installs a nil allocator: fixed capacity, never grows.
func (c *BufferConfig[T]) Arena() *BufferConfig[T] {
	c.alloc = nil
	return c
}

// Allocator installs a growth callback.
func (c *BufferConfig[T]) Allocator(a Allocator[T]) *BufferConfig[T] {
	c.alloc = a
	return c
}

// Aux sets the opaque context value threaded through to the allocator.
func (c *BufferConfig[T]) Aux(aux any) *BufferConfig[T] {
	c.aux = aux
	return c
}

// Build constructs the Buffer.
func (c *BufferConfig[T]) Build() (*Buffer[T], error) {
	return NewBuffer[T](c.capacity, c.alloc, c.aux)
}

// HeapConfig builds a Heap with named, chainable configuration.
type HeapConfig[T any] struct {
	capacity int
	cmp      CompareFunc[T]
	order    Order
	alloc    Allocator[T]
	aux      any
}

// NewHeapConfig starts a HeapConfig with the given initial capacity and
// Less (min-heap) order. The default mode is arena; call Allocator to
// make it growable.
func NewHeapConfig[T any](capacity int) *HeapConfig[T] {
	return &HeapConfig[T]{capacity: capacity, order: Less}
}

// Order sets the heap's ordering (Less for a min-heap, Greater for a
// max-heap).
func (c *HeapConfig[T]) Order(o Order) *HeapConfig[T] {
	c.order = o
	return c
}

// CompareFunc sets the three-way comparator. Required before Build.
func (c *HeapConfig[T]) CompareFunc(cmp CompareFunc[T]) *HeapConfig[T] {
	c.cmp = cmp
	return c
}

// Arena installs a nil allocator: fixed capacity, Push beyond capacity
// fails with ErrNoAlloc instead of growing.
func (c *HeapConfig[T]) Arena() *HeapConfig[T] {
	c.alloc = nil
	return c
}

// Allocator installs a growth callback.
func (c *HeapConfig[T]) Allocator(a Allocator[T]) *HeapConfig[T] {
	c.alloc = a
	return c
}

// Aux sets the opaque context value threaded through to the allocator.
func (c *HeapConfig[T]) Aux(aux any) *HeapConfig[T] {
	c.aux = aux
	return c
}

// Build constructs the Heap. Fails with ErrArg if CompareFunc was never
// set.
func (c *HeapConfig[T]) Build() (*Heap[T], error) {
	if c.cmp == nil {
		return nil, ErrArg
	}
	return NewHeap[T](c.capacity, c.cmp, c.order, c.alloc, c.aux)
}

// DequeConfig builds a Deque with named, chainable configuration.
type DequeConfig[T any] struct {
	capacity int
	alloc    Allocator[T]
	aux      any
}

// NewDequeConfig starts a DequeConfig with the given initial capacity.
// The default mode is arena (fixed capacity, overwrite-on-full ring);
// call Allocator to make it a growable ring deque.
func NewDequeConfig[T any](capacity int) *DequeConfig[T] {
	return &DequeConfig[T]{capacity: capacity}
}

// Arena installs a nil allocator: fixed capacity, overwrite-on-full.
func (c *DequeConfig[T]) Arena() *DequeConfig[T] {
	c.alloc = nil
	return c
}

// Allocator installs a growth callback.
func (c *DequeConfig[T]) Allocator(a Allocator[T]) *DequeConfig[T] {
	c.alloc = a
	return c
}

// Aux sets the opaque context value threaded through to the allocator.
func (c *DequeConfig[T]) Aux(aux any) *DequeConfig[T] {
	c.aux = aux
	return c
}

// Build constructs the Deque.
func (c *DequeConfig[T]) Build() (*Deque[T], error) {
	return NewDeque[T](c.capacity, c.alloc, c.aux)
}
