// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

// Order selects which way a Heap is ordered. It is the Go spelling of the
// two admissible values of spec.md §3's `order` tag.
type Order int

const (
	// Less makes Heap a min-heap: Front returns the smallest element.
	Less Order = iota
	// Greater makes Heap a max-heap: Front returns the largest element.
	Greater
)

// CompareFunc is a three-way comparator: negative if a orders before b,
// zero if equivalent, positive if a orders after b. The same shape as
// cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// Heap is a binary min-or-max heap stored in a Buffer, with sift-up/down
// fixed by a caller-supplied three-way comparator. This is the flat
// priority queue (FPQ) of spec.md §4.3.
//
// Heap is not safe for concurrent use; see spec.md §5.
type Heap[T any] struct {
	buf   *Buffer[T]
	cmp   CompareFunc[T]
	order Order
}

// NewHeap creates a Heap with the given initial capacity, comparator, and
// order. A nil alloc makes the heap non-allocating (arena mode): Push
// beyond capacity fails with ErrNoAlloc instead of growing.
func NewHeap[T any](capacity int, cmp CompareFunc[T], order Order, alloc Allocator[T], aux any) (*Heap[T], error) {
	buf, err := NewBuffer[T](capacity, alloc, aux)
	if err != nil {
		return nil, err
	}
	return &Heap[T]{buf: buf, cmp: cmp, order: order}, nil
}

// orders reports whether comparator result c establishes the heap's order
// strictly (not merely ties it).
func (h *Heap[T]) orders(c int) bool {
	if h.order == Less {
		return c < 0
	}
	return c > 0
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return h.buf.Count() }

// Cap returns the heap's current backing capacity.
func (h *Heap[T]) Cap() int { return h.buf.Capacity() }

// Push appends elem and sifts it up to restore the heap property.
// O(log Len()).
func (h *Heap[T]) Push(elem T) error {
	p, err := h.buf.AllocBack()
	if err != nil {
		return err
	}
	*p = elem
	h.siftUp(h.buf.Count() - 1)
	return nil
}

// Pop removes the front element. It does not return the removed value —
// callers that need it must call Front first (or use PopFront). Fails
// with ErrArg if the heap is empty. O(log Len()).
func (h *Heap[T]) Pop() error {
	n := h.buf.Count()
	if n == 0 {
		return ErrArg
	}
	_ = h.buf.Swap(0, n-1)
	_ = h.buf.PopBack()
	if h.buf.Count() > 0 {
		h.siftDown(0)
	}
	return nil
}

// Front returns the element at the root of the heap (the extreme element
// per Order) and true, or the zero value and false if the heap is empty.
func (h *Heap[T]) Front() (T, bool) {
	var zero T
	if h.buf.Count() == 0 {
		return zero, false
	}
	p, _ := h.buf.At(0)
	return *p, true
}

// PopFront is a convenience composing Front and Pop: it returns the
// removed extreme element. Fails with ErrArg if empty.
func (h *Heap[T]) PopFront() (T, error) {
	v, ok := h.Front()
	if !ok {
		return v, ErrArg
	}
	return v, h.Pop()
}

// Update applies mutate to the element at handle (a slot index in
// [0, Len())) and re-establishes the heap
// property by sifting up or down from that index, whichever direction
// the mutation requires.
//
// Increase and Decrease are aliases for Update: the three exist to
// document caller intent, but run identical code, per spec.md §4.3.
func (h *Heap[T]) Update(handle int, mutate func(*T)) error {
	if handle < 0 || handle >= h.buf.Count() {
		return ErrArg
	}
	p, _ := h.buf.At(handle)
	mutate(p)
	if moved := h.siftUp(handle); moved != handle {
		return nil
	}
	h.siftDown(handle)
	return nil
}

// Increase is an alias for Update documenting that mutate is expected to
// increase the element's priority under the heap's Order.
func (h *Heap[T]) Increase(handle int, mutate func(*T)) error { return h.Update(handle, mutate) }

// Decrease is an alias for Update documenting that mutate is expected to
// decrease the element's priority under the heap's Order.
func (h *Heap[T]) Decrease(handle int, mutate func(*T)) error { return h.Update(handle, mutate) }

// Set overwrites the element at handle with elem, via Buffer.Write's
// index-checked slot overwrite, and re-establishes the heap property by
// sifting up or down from that index, whichever direction the new value
// requires.
func (h *Heap[T]) Set(handle int, elem T) error {
	if handle < 0 || handle >= h.buf.Count() {
		return ErrArg
	}
	if err := h.buf.Write(handle, elem); err != nil {
		return err
	}
	if moved := h.siftUp(handle); moved != handle {
		return nil
	}
	h.siftDown(handle)
	return nil
}

// Erase removes the element at handle: it is swapped to the tail, popped,
// and the swapped-in slot is re-heapified up or down as needed.
func (h *Heap[T]) Erase(handle int) error {
	n := h.buf.Count()
	if handle < 0 || handle >= n {
		return ErrArg
	}
	last := n - 1
	_ = h.buf.Swap(handle, last)
	_ = h.buf.PopBack()
	if handle == last {
		// The erased element was already at the tail; nothing moved in.
		return nil
	}
	if moved := h.siftUp(handle); moved != handle {
		return nil
	}
	h.siftDown(handle)
	return nil
}

// HeapifyInPlace treats the first n slots already written into the
// heap's buffer as unsorted data and restores the heap property in O(n)
// comparisons via Floyd's build-heap. n must not exceed the buffer's
// capacity.
func (h *Heap[T]) HeapifyInPlace(n int) error {
	if n < 0 || n > h.buf.Capacity() {
		return ErrArg
	}
	h.buf.count = n
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return nil
}

// Heapify copies data into the heap's buffer (replacing any existing
// contents) and then calls HeapifyInPlace. It grows the buffer only if
// data doesn't already fit — an arena-mode heap with capacity to spare
// keeps that spare capacity rather than being shrunk to exactly
// len(data), per spec.md §4.3 ("copies n elements into the heap
// buffer", not "resizes the buffer to n").
func (h *Heap[T]) Heapify(data []T) error {
	if n := len(data); n > h.buf.Capacity() {
		if err := h.buf.AllocCapacity(growTarget(h.buf.Capacity(), n)); err != nil {
			return err
		}
	}
	h.buf.count = 0
	for _, v := range data {
		p, err := h.buf.AllocBack()
		if err != nil {
			return err
		}
		*p = v
	}
	return h.HeapifyInPlace(len(data))
}

// Heapsort repeatedly swaps the root with the tail, shrinks the live
// range, and sifts down, leaving the buffer in reverse heap order:
// non-increasing for a min-heap, non-decreasing for a max-heap.
//
// Heapsort consumes the heap: it returns the backing slice (valid for its
// first Len() elements at the time of the call) to the caller, who now
// owns that storage, and resets the heap to empty. Discarding the
// returned slice leaks the sorted data.
func (h *Heap[T]) Heapsort() []T {
	n := h.buf.Count()
	for h.buf.Count() > 1 {
		c := h.buf.Count()
		_ = h.buf.Swap(0, c-1)
		h.buf.count--
		h.siftDown(0)
	}
	result := h.buf.slots[:n]
	h.buf.slots = nil
	h.buf.count = 0
	return result
}

// siftUp walks from index i upward while the child orders strictly before
// its parent, swapping as it goes. It returns the index the element
// finally rests at.
func (h *Heap[T]) siftUp(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.orders(h.cmp(h.slotVal(i), h.slotVal(parent))) {
			break
		}
		_ = h.buf.Swap(i, parent)
		i = parent
	}
	return i
}

// siftDown walks from index i downward, swapping with whichever child
// orders more extreme, until the heap property holds at i.
func (h *Heap[T]) siftDown(i int) int {
	n := h.buf.Count()
	for {
		left, right := 2*i+1, 2*i+2
		if left >= n {
			break
		}
		chosen := left
		if right < n && h.orders(h.cmp(h.slotVal(right), h.slotVal(left))) {
			chosen = right
		}
		if !h.orders(h.cmp(h.slotVal(chosen), h.slotVal(i))) {
			break
		}
		_ = h.buf.Swap(i, chosen)
		i = chosen
	}
	return i
}

func (h *Heap[T]) slotVal(i int) T {
	p, _ := h.buf.At(i)
	return *p
}

// Validate walks the heap and checks the heap property for every slot,
// per spec.md §8's testable properties.
func (h *Heap[T]) Validate() (bool, error) {
	n := h.buf.Count()
	for i := 1; i < n; i++ {
		parent := (i - 1) / 2
		c := h.cmp(h.slotVal(parent), h.slotVal(i))
		ok := c == 0 || h.orders(c)
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
