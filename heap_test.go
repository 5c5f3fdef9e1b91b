// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore_test

import (
	"testing"

	"code.hybscloud.com/ccore"
)

func intCmp(a, b int) int { return a - b }

// TestHeapMinHeapPushPop drives the push/pop sequence from spec.md §8
// scenario 1: pushing 5, 3, 8, 1, 9, 2 onto a min-heap must pop in
// non-decreasing order.
func TestHeapMinHeapPushPop(t *testing.T) {
	h, err := ccore.NewHeap[int](0, intCmp, ccore.Less, ccore.GoAllocator[int](), nil)
	if err != nil {
		t.Fatalf("NewHeap: %v", err)
	}
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		if err := h.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
		if ok, err := h.Validate(); err != nil || !ok {
			t.Fatalf("Validate after Push(%d): ok=%v err=%v", v, ok, err)
		}
	}
	want := []int{1, 2, 3, 5, 8, 9}
	for _, w := range want {
		v, err := h.PopFront()
		if err != nil {
			t.Fatalf("PopFront: %v", err)
		}
		if v != w {
			t.Fatalf("PopFront: got %d, want %d", v, w)
		}
	}
	if h.Len() != 0 {
		t.Fatalf("Len after draining: got %d, want 0", h.Len())
	}
	if _, err := h.PopFront(); !ccore.IsArgError(err) {
		t.Fatalf("PopFront on empty: got %v, want ErrArg", err)
	}
}

func TestHeapMaxHeap(t *testing.T) {
	h, _ := ccore.NewHeap[int](0, intCmp, ccore.Greater, ccore.GoAllocator[int](), nil)
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		_ = h.Push(v)
	}
	want := []int{9, 8, 5, 3, 2, 1}
	for _, w := range want {
		v, err := h.PopFront()
		if err != nil || v != w {
			t.Fatalf("PopFront: got %d,%v want %d", v, err, w)
		}
	}
}

// TestHeapifyAndHeapsort drives spec.md §8 scenario 2: heapifying
// [9,3,7,1,8,2,6,4,5] and then heapsorting must yield the sorted
// sequence in reverse-heap order for a min-heap (non-increasing).
func TestHeapifyAndHeapsort(t *testing.T) {
	data := []int{9, 3, 7, 1, 8, 2, 6, 4, 5}
	h, err := ccore.NewHeap[int](0, intCmp, ccore.Less, ccore.GoAllocator[int](), nil)
	if err != nil {
		t.Fatalf("NewHeap: %v", err)
	}
	if err := h.Heapify(data); err != nil {
		t.Fatalf("Heapify: %v", err)
	}
	if ok, err := h.Validate(); err != nil || !ok {
		t.Fatalf("Validate after Heapify: ok=%v err=%v", ok, err)
	}
	if h.Len() != len(data) {
		t.Fatalf("Len after Heapify: got %d, want %d", h.Len(), len(data))
	}
	sorted := h.Heapsort()
	want := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	if len(sorted) != len(want) {
		t.Fatalf("Heapsort length: got %d, want %d", len(sorted), len(want))
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("Heapsort: got %v, want %v", sorted, want)
		}
	}
	if h.Len() != 0 {
		t.Fatalf("Len after Heapsort: got %d, want 0 (heap consumed)", h.Len())
	}
}

func TestHeapUpdateAndErase(t *testing.T) {
	h, _ := ccore.NewHeap[int](0, intCmp, ccore.Less, ccore.GoAllocator[int](), nil)
	for _, v := range []int{10, 20, 30, 40, 50} {
		_ = h.Push(v)
	}
	// Decrease the element currently at slot 4 (value 50) to 1: it should
	// become the new front.
	if err := h.Update(4, func(p *int) { *p = 1 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ok, err := h.Validate(); err != nil || !ok {
		t.Fatalf("Validate after Update: ok=%v err=%v", ok, err)
	}
	front, _ := h.Front()
	if front != 1 {
		t.Fatalf("Front after Update: got %d, want 1", front)
	}
	if err := h.Erase(0); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if ok, err := h.Validate(); err != nil || !ok {
		t.Fatalf("Validate after Erase: ok=%v err=%v", ok, err)
	}
	if h.Len() != 4 {
		t.Fatalf("Len after Erase: got %d, want 4", h.Len())
	}
}

func TestHeapSet(t *testing.T) {
	h, _ := ccore.NewHeap[int](0, intCmp, ccore.Less, ccore.GoAllocator[int](), nil)
	for _, v := range []int{10, 20, 30, 40, 50} {
		_ = h.Push(v)
	}
	// Overwrite the element at slot 4 (value 50) with 1: it should become
	// the new front, exactly like Update/Decrease, but via a whole-value
	// replacement instead of an in-place mutation.
	if err := h.Set(4, 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ok, err := h.Validate(); err != nil || !ok {
		t.Fatalf("Validate after Set: ok=%v err=%v", ok, err)
	}
	front, _ := h.Front()
	if front != 1 {
		t.Fatalf("Front after Set: got %d, want 1", front)
	}
	if err := h.Set(-1, 0); !ccore.IsArgError(err) {
		t.Fatalf("Set out of range: got %v, want ErrArg", err)
	}
}

// TestHeapifyArenaPreservesCapacity pins down Heapify's grow-only-if-
// needed behavior: an arena-mode heap with capacity to spare keeps that
// spare capacity rather than being shrunk to exactly len(data).
func TestHeapifyArenaPreservesCapacity(t *testing.T) {
	h, err := ccore.NewHeap[int](10, intCmp, ccore.Less, nil, nil)
	if err != nil {
		t.Fatalf("NewHeap: %v", err)
	}
	data := []int{9, 3, 7, 1, 8}
	if err := h.Heapify(data); err != nil {
		t.Fatalf("Heapify: %v", err)
	}
	if h.Cap() != 10 {
		t.Fatalf("Cap after Heapify: got %d, want 10 (arena slack preserved)", h.Cap())
	}
	if h.Len() != len(data) {
		t.Fatalf("Len after Heapify: got %d, want %d", h.Len(), len(data))
	}
	if ok, verr := h.Validate(); verr != nil || !ok {
		t.Fatalf("Validate after Heapify: ok=%v err=%v", ok, verr)
	}
	// Room remains for further pushes without growth.
	if err := h.Push(0); err != nil {
		t.Fatalf("Push after Heapify: %v", err)
	}
	if h.Cap() != 10 {
		t.Fatalf("Cap after Push: got %d, want 10", h.Cap())
	}
}

func TestHeapifyArenaTooSmall(t *testing.T) {
	h, _ := ccore.NewHeap[int](3, intCmp, ccore.Less, nil, nil)
	if err := h.Heapify([]int{1, 2, 3, 4}); !ccore.IsNoAlloc(err) {
		t.Fatalf("Heapify beyond arena capacity: got %v, want ErrNoAlloc", err)
	}
}

func TestHeapArenaNoGrowth(t *testing.T) {
	h, err := ccore.NewHeap[int](2, intCmp, ccore.Less, nil, nil)
	if err != nil {
		t.Fatalf("NewHeap: %v", err)
	}
	if err := h.Push(1); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := h.Push(2); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := h.Push(3); !ccore.IsNoAlloc(err) {
		t.Fatalf("Push beyond arena capacity: got %v, want ErrNoAlloc", err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len unchanged after failed Push: got %d, want 2", h.Len())
	}
}
