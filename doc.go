// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ccore provides flat, allocation-aware container primitives:
// a typed contiguous Buffer, a binary Heap (priority queue), a ring
// Deque (double-ended queue), and two doubly linked list flavors —
// List (owning) and IntrusiveList (non-owning). The three flat
// containers (Buffer, Heap, Deque) share one allocation contract:
// construct with a nil Allocator for fixed capacity ("arena mode"), or
// install one for amortized growth.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	buf, _ := ccore.NewBuffer[int](0, ccore.GoAllocator[int](), nil)
//	h, _ := ccore.NewHeap[Event](64, byPriority, ccore.Less, ccore.GoAllocator[Event](), nil)
//	d, _ := ccore.NewDeque[Tick](256, nil, nil) // arena mode: fixed capacity
//	l := ccore.NewList[string]()
//
// Config builders spell out arena-vs-growable mode at the call site:
//
//	h, _ := ccore.NewHeapConfig[Event](64).
//	    Order(ccore.Greater).
//	    CompareFunc(byPriority).
//	    Arena().
//	    Build()
//
// # Basic Usage
//
// Heap as a priority queue:
//
//	h, _ := ccore.NewHeap[int](0, func(a, b int) int { return a - b }, ccore.Less, ccore.GoAllocator[int](), nil)
//	_ = h.Push(5)
//	_ = h.Push(1)
//	_ = h.Push(3)
//	for h.Len() > 0 {
//	    v, _ := h.PopFront()
//	    process(v)
//	}
//
// Deque as a fixed-capacity ring of recent events:
//
//	d, _ := ccore.NewDeque[Event](256, nil, nil)
//	for ev := range events {
//	    _ = d.PushBack(ev) // oldest event is evicted once d is full
//	}
//
// List for ordered work queues:
//
//	l := ccore.NewList[Job]()
//	l.PushBack(job)
//	for e := l.Front(); e != nil; e = e.Next() {
//	    e.Value.Run()
//	}
//
// # Common Patterns
//
// Event scheduler (Heap, growable, ordered by deadline):
//
//	type timer struct {
//	    deadline time.Time
//	    fire     func()
//	}
//	cmp := func(a, b timer) int { return a.deadline.Compare(b.deadline) }
//	sched, _ := ccore.NewHeap[timer](0, cmp, ccore.Less, ccore.GoAllocator[timer](), nil)
//	sched.Push(timer{deadline: at, fire: cb})
//	for sched.Len() > 0 {
//	    next, _ := sched.Front()
//	    if next.deadline.After(time.Now()) {
//	        break
//	    }
//	    v, _ := sched.PopFront()
//	    v.fire()
//	}
//
// Bounded recent-history ring (Deque, arena mode):
//
//	history, _ := ccore.NewDeque[LogLine](1000, nil, nil)
//	_ = history.PushBack(line) // drops the oldest line once full
//
// Round-robin scheduling (IntrusiveList, non-owning):
//
//	type worker struct {
//	    node ccore.Node[worker]
//	    id   int
//	}
//	rr := ccore.NewIntrusiveList[worker]()
//	for i := range workers {
//	    workers[i].node = *ccore.NewNode(&workers[i])
//	    _ = rr.PushBack(&workers[i].node)
//	}
//	cur := rr.Front()
//	for range ticks {
//	    cur.Elem().run()
//	    cur = cur.Next()
//	    if cur == nil {
//	        cur = rr.Front()
//	    }
//	}
//
// # Arena vs Growable
//
// Every flat container (Buffer, Heap, Deque) accepts an Allocator[T] at
// construction:
//
//	nil Allocator        - arena mode: fixed capacity; growth operations
//	                        fail with ErrNoAlloc (Buffer, Heap), or, for
//	                        Deque, overwrite the oldest element instead.
//	GoAllocator[T]()      - growable: capacity doubles (starting at 8)
//	                        as needed, backed by Go's make/copy.
//	a caller-supplied fn  - growable with custom backing storage (e.g. a
//	                        pool-backed slice), see Allocator's doc comment
//	                        for the contract it must satisfy.
//
// List and IntrusiveList are always non-arena: List boxes every pushed
// value into its own Element and always allocates one per insertion;
// IntrusiveList never allocates at all, since the caller supplies the
// Node.
//
// # Dependencies
//
// ccore has no third-party dependencies; see DESIGN.md for why.
package ccore
