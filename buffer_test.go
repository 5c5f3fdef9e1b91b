// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ccore_test

import (
	"testing"

	"code.hybscloud.com/ccore"
)

func TestBufferArenaFixedCapacity(t *testing.T) {
	b, err := ccore.NewBuffer[int](4, nil, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if b.Capacity() != 4 {
		t.Fatalf("Capacity: got %d, want 4", b.Capacity())
	}
	for i := range 4 {
		p, err := b.AllocBack()
		if err != nil {
			t.Fatalf("AllocBack(%d): %v", i, err)
		}
		*p = i * 10
	}
	if _, err := b.AllocBack(); !ccore.IsNoAlloc(err) {
		t.Fatalf("AllocBack on full arena: got %v, want ErrNoAlloc", err)
	}
	for i := range 4 {
		p, err := b.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if *p != i*10 {
			t.Fatalf("At(%d): got %d, want %d", i, *p, i*10)
		}
	}
}

func TestBufferGrowthDoubling(t *testing.T) {
	b, err := ccore.NewBuffer[int](0, ccore.GoAllocator[int](), nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if b.Capacity() != 0 {
		t.Fatalf("initial Capacity: got %d, want 0", b.Capacity())
	}
	for i := range 9 {
		p, err := b.AllocBack()
		if err != nil {
			t.Fatalf("AllocBack(%d): %v", i, err)
		}
		*p = i
	}
	if b.Capacity() != 16 {
		t.Fatalf("Capacity after 9 pushes: got %d, want 16", b.Capacity())
	}
	if b.Count() != 9 {
		t.Fatalf("Count: got %d, want 9", b.Count())
	}
}

func TestBufferPopBackN(t *testing.T) {
	b, _ := ccore.NewBuffer[int](0, ccore.GoAllocator[int](), nil)
	for i := range 5 {
		p, _ := b.AllocBack()
		*p = i
	}
	if err := b.PopBackN(2); err != nil {
		t.Fatalf("PopBackN: %v", err)
	}
	if b.Count() != 3 {
		t.Fatalf("Count after PopBackN: got %d, want 3", b.Count())
	}
	if err := b.PopBackN(10); !ccore.IsArgError(err) {
		t.Fatalf("PopBackN overdraw: got %v, want ErrArg", err)
	}
	if b.Count() != 3 {
		t.Fatalf("Count unchanged after failed PopBackN: got %d, want 3", b.Count())
	}
}

func TestBufferNoPartialGrowth(t *testing.T) {
	b, err := ccore.NewBuffer[int](4, nil, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	for i := range 4 {
		p, _ := b.AllocBack()
		*p = i
	}
	if err := b.AllocCapacity(8); !ccore.IsNoAlloc(err) {
		t.Fatalf("AllocCapacity growth on arena: got %v, want ErrNoAlloc", err)
	}
	if b.Capacity() != 4 || b.Count() != 4 {
		t.Fatalf("state mutated on failed growth: capacity=%d count=%d", b.Capacity(), b.Count())
	}
	for i := range 4 {
		p, err := b.At(i)
		if err != nil || *p != i {
			t.Fatalf("At(%d) after failed growth: got %v,%v want %d,nil", i, p, err, i)
		}
	}
}

func TestBufferWrite(t *testing.T) {
	b, err := ccore.NewBuffer[int](4, nil, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	for i := range 4 {
		p, _ := b.AllocBack()
		*p = i
	}
	if err := b.Write(2, 99); err != nil {
		t.Fatalf("Write: %v", err)
	}
	p, err := b.At(2)
	if err != nil {
		t.Fatalf("At(2): %v", err)
	}
	if *p != 99 {
		t.Fatalf("At(2) after Write: got %d, want 99", *p)
	}
	if err := b.Write(-1, 1); !ccore.IsArgError(err) {
		t.Fatalf("Write(-1,...): got %v, want ErrArg", err)
	}
	if err := b.Write(4, 1); !ccore.IsArgError(err) {
		t.Fatalf("Write(4,...) (== Capacity): got %v, want ErrArg", err)
	}
}

func TestBufferIteration(t *testing.T) {
	b, _ := ccore.NewBuffer[int](0, ccore.GoAllocator[int](), nil)
	for i := range 5 {
		p, _ := b.AllocBack()
		*p = i
	}
	var got []int
	for i := b.Begin(); i != b.End(); i = b.Next(i) {
		p, _ := b.At(i)
		got = append(got, *p)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("forward iteration: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forward iteration: got %v, want %v", got, want)
		}
	}
	got = nil
	for i := b.RBegin(); i != -1; i = b.RNext(i) {
		p, _ := b.At(i)
		got = append(got, *p)
	}
	want = []int{4, 3, 2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reverse iteration: got %v, want %v", got, want)
		}
	}
}
