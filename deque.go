// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore

// Deque is a ring deque: a double-ended queue over a contiguous slab with
// an explicit front index, per spec.md §4.4 (FDEQ). Pushing/popping at
// either end is wrap-aware; with no allocator installed it behaves as a
// fixed-capacity overwrite-on-full ring buffer; with an allocator it grows
// amortized like Buffer.
//
// Deque is not safe for concurrent use; see spec.md §5.
type Deque[T any] struct {
	slots []T // len(slots) == capacity always
	front int
	count int
	alloc Allocator[T]
	aux   any
}

// NewDeque creates a Deque with the given initial capacity. A nil alloc
// makes the deque non-allocating (arena mode): once Len() reaches
// Cap(), further pushes overwrite the oldest element instead of growing.
func NewDeque[T any](capacity int, alloc Allocator[T], aux any) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrArg
	}
	d := &Deque[T]{alloc: alloc, aux: aux}
	if capacity == 0 {
		return d, nil
	}
	if alloc == nil {
		d.slots = make([]T, capacity)
		return d, nil
	}
	next, err := alloc(nil, capacity, aux)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, ErrMem
	}
	d.slots = next
	return d, nil
}

// Cap returns the deque's current backing capacity.
func (d *Deque[T]) Cap() int { return len(d.slots) }

// Len returns the number of live elements.
func (d *Deque[T]) Len() int { return d.count }

// phys maps logical index k to its physical slot.
func (d *Deque[T]) phys(k int) int { return (d.front + k) % len(d.slots) }

// At returns a pointer to the physical slot at logical index k. Bounds:
// k must be < Cap(), not merely < Len() — per spec.md §4.4, random access
// past Len() into unallocated-but-backed slots is the caller's error.
func (d *Deque[T]) At(k int) (*T, error) {
	if k < 0 || k >= len(d.slots) {
		return nil, ErrArg
	}
	return &d.slots[d.phys(k)], nil
}

// Front returns the logical front element and true, or the zero value and
// false if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.slots[d.front], true
}

// Back returns the logical back element and true, or the zero value and
// false if the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.slots[d.phys(d.count-1)], true
}

// tryGrow ensures room for `additional` more live elements. In arena mode
// (nil allocator) it returns ErrNoAlloc without touching state once
// growth would be required, leaving the caller to apply ring-overwrite
// semantics instead.
func (d *Deque[T]) tryGrow(additional int) error {
	need := d.count + additional
	if need <= len(d.slots) {
		return nil
	}
	if d.alloc == nil {
		return ErrNoAlloc
	}
	return d.growTo(growTarget(len(d.slots), need))
}

// growTo reallocates to newcap, flattening the live range into the new
// backing slice starting at index 0, in allocate-copy-free order (never
// free-then-allocate), per spec.md §4.4/§7.
func (d *Deque[T]) growTo(newcap int) error {
	next, err := d.alloc(nil, newcap, d.aux)
	if err != nil {
		return err
	}
	if next == nil {
		return ErrMem
	}
	if d.count > 0 {
		first := d.count
		if first > len(d.slots)-d.front {
			first = len(d.slots) - d.front
		}
		copy(next[:first], d.slots[d.front:d.front+first])
		if first < d.count {
			copy(next[first:d.count], d.slots[:d.count-first])
		}
	}
	old := d.slots
	d.slots = next
	d.front = 0
	if old != nil {
		_, _ = d.alloc(old, 0, d.aux)
	}
	return nil
}

// PushBack appends elem at the logical back. In arena mode with a full
// deque, the oldest element (logical front) is overwritten instead.
func (d *Deque[T]) PushBack(elem T) error {
	if err := d.tryGrow(1); err != nil {
		if IsNoAlloc(err) && len(d.slots) > 0 {
			idx := d.phys(d.count)
			d.slots[idx] = elem
			d.front = (d.front + 1) % len(d.slots)
			return nil
		}
		return err
	}
	d.slots[d.phys(d.count)] = elem
	d.count++
	return nil
}

// PushFront prepends elem at the logical front. In arena mode with a full
// deque, the newest-displaced slot is the logical back, which is
// overwritten; Len() stays at Cap().
func (d *Deque[T]) PushFront(elem T) error {
	if err := d.tryGrow(1); err != nil {
		if IsNoAlloc(err) && len(d.slots) > 0 {
			d.front = (d.front - 1 + len(d.slots)) % len(d.slots)
			d.slots[d.front] = elem
			return nil
		}
		return err
	}
	d.front = (d.front - 1 + len(d.slots)) % len(d.slots)
	d.slots[d.front] = elem
	d.count++
	return nil
}

// PopFront removes the logical front element. Fails with ErrArg if empty.
func (d *Deque[T]) PopFront() error {
	if d.count == 0 {
		return ErrArg
	}
	var zero T
	d.slots[d.front] = zero
	d.front = (d.front + 1) % len(d.slots)
	d.count--
	return nil
}

// PopBack removes the logical back element. Fails with ErrArg if empty.
func (d *Deque[T]) PopBack() error {
	if d.count == 0 {
		return ErrArg
	}
	idx := d.phys(d.count - 1)
	var zero T
	d.slots[idx] = zero
	d.count--
	return nil
}

// Clear empties the deque, releasing references held by live slots, and
// resets the front to 0.
func (d *Deque[T]) Clear() {
	var zero T
	for k := 0; k < d.count; k++ {
		d.slots[d.phys(k)] = zero
	}
	d.count = 0
	d.front = 0
}

// flatten returns the logical contents as a freshly allocated slice,
// front-to-back.
func (d *Deque[T]) flatten() []T {
	out := make([]T, d.count)
	for k := 0; k < d.count; k++ {
		out[k] = d.slots[d.phys(k)]
	}
	return out
}

// PushBackRange appends elems at the logical back, in order. If n =
// len(elems) >= Cap(), only the last Cap() elements of elems survive,
// filling the buffer with the front at slot 0. In arena mode, if the elements
// don't all fit, the oldest elements are evicted first.
func (d *Deque[T]) PushBackRange(elems []T) error {
	n := len(elems)
	if n == 0 {
		return nil
	}
	fixedOverflow := false
	if err := d.tryGrow(n); err != nil {
		if !IsNoAlloc(err) {
			return err
		}
		fixedOverflow = true
	}
	c := len(d.slots)
	if c == 0 {
		return ErrNoAlloc
	}
	if n >= c {
		copy(d.slots, elems[n-c:])
		d.front = 0
		d.count = c
		return nil
	}
	if fixedOverflow {
		newCount := d.count + n
		if newCount > c {
			evict := newCount - c
			d.front = (d.front + evict) % c
			d.count = c
		} else {
			d.count = newCount
		}
	} else {
		d.count += n
	}
	start := (d.front + d.count - n + c) % c
	first := n
	if first > c-start {
		first = c - start
	}
	copy(d.slots[start:start+first], elems[:first])
	if first < n {
		copy(d.slots[0:n-first], elems[first:])
	}
	return nil
}

// PushFrontRange prepends elems at the logical front, preserving their
// order (elems[0] becomes the new front). Symmetric to PushBackRange.
func (d *Deque[T]) PushFrontRange(elems []T) error {
	n := len(elems)
	if n == 0 {
		return nil
	}
	fixedOverflow := false
	if err := d.tryGrow(n); err != nil {
		if !IsNoAlloc(err) {
			return err
		}
		fixedOverflow = true
	}
	c := len(d.slots)
	if c == 0 {
		return ErrNoAlloc
	}
	if n >= c {
		copy(d.slots, elems[n-c:])
		d.front = 0
		d.count = c
		return nil
	}
	oldFront := d.front
	if fixedOverflow {
		newCount := d.count + n
		if newCount > c {
			d.count = c
		} else {
			d.count = newCount
		}
	} else {
		d.count += n
	}
	d.front = ((oldFront-n)%c + c) % c
	start := d.front
	first := n
	if first > c-start {
		first = c - start
	}
	copy(d.slots[start:start+first], elems[:first])
	if first < n {
		copy(d.slots[0:n-first], elems[first:])
	}
	return nil
}

// InsertRange inserts elems before logical index at (at == Len() appends
// at the back). The existing tail is conceptually shifted back by
// len(elems) slots.
//
// In arena mode, if the result would exceed Cap(), the oldest elements are
// evicted first, bounded by the distance from the front to at (per
// spec.md §9's Open Question, resolved as: wrapping never evicts into the
// freshly inserted range; if the overflow still exceeds what fits after
// that bound, the excess is dropped from the logical back instead).
func (d *Deque[T]) InsertRange(at int, elems []T) error {
	n := len(elems)
	if at < 0 || at > d.count {
		return ErrArg
	}
	if n == 0 {
		return nil
	}
	fixedOverflow := false
	if err := d.tryGrow(n); err != nil {
		if !IsNoAlloc(err) {
			return err
		}
		fixedOverflow = true
	}
	c := len(d.slots)
	if c == 0 {
		return ErrNoAlloc
	}

	cur := d.flatten()
	merged := make([]T, 0, len(cur)+n)
	merged = append(merged, cur[:at]...)
	merged = append(merged, elems...)
	merged = append(merged, cur[at:]...)

	if fixedOverflow && len(merged) > c {
		excess := len(merged) - c
		evict := excess
		if evict > at {
			evict = at
		}
		merged = merged[evict:]
		if len(merged) > c {
			merged = merged[:c]
		}
	}

	d.front = 0
	d.count = len(merged)
	copy(d.slots, merged)
	return nil
}

// CopyFrom replaces the deque's contents with src's logical contents,
// front-to-back, applying this deque's own growth/overwrite rules (so
// copying into a smaller fixed-capacity deque keeps only the most recent
// elements, per spec.md §4.4's "Copy between deques").
func (d *Deque[T]) CopyFrom(src *Deque[T]) error {
	data := src.flatten()
	d.Clear()
	return d.PushBackRange(data)
}

// Begin returns the first iteration index (0), or -1 if empty.
func (d *Deque[T]) Begin() int {
	if d.count == 0 {
		return -1
	}
	return 0
}

// Next advances a forward iteration index, returning -1 once exhausted.
func (d *Deque[T]) Next(i int) int {
	i++
	if i >= d.count {
		return -1
	}
	return i
}

// End is the forward iteration sentinel.
func (d *Deque[T]) End() int { return -1 }

// RBegin returns the last iteration index for reverse iteration, or -1 if
// empty.
func (d *Deque[T]) RBegin() int {
	if d.count == 0 {
		return -1
	}
	return d.count - 1
}

// RNext steps a reverse iteration index backwards, returning -1 once
// exhausted.
func (d *Deque[T]) RNext(i int) int {
	i--
	if i < 0 {
		return -1
	}
	return i
}

// Validate walks both the forward and reverse iteration paths, checking
// that the step count equals Len() and that front/back line up with
// front and (front+count-1) mod capacity, per spec.md §4.4's Validation
// and §8's FDEQ properties.
func (d *Deque[T]) Validate() (bool, error) {
	if d.count < 0 || d.count > len(d.slots) {
		return false, nil
	}
	if d.count == 0 {
		return true, nil
	}
	if d.front < 0 || d.front >= len(d.slots) {
		return false, nil
	}
	steps := 0
	for i := d.Begin(); i != d.End(); i = d.Next(i) {
		steps++
	}
	if steps != d.count {
		return false, nil
	}
	steps = 0
	for i := d.RBegin(); i != -1; i = d.RNext(i) {
		steps++
	}
	if steps != d.count {
		return false, nil
	}
	wantBack := (d.front + d.count - 1) % len(d.slots)
	if d.phys(d.count-1) != wantBack {
		return false, nil
	}
	return true, nil
}
