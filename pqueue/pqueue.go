// Package pqueue implements an indexable binary min-heap over dense integer
// ids with O(log n) decrease-key.
//
// Unlike container/heap with lazy duplicates, every id appears at most once
// and carries its own heap slot, so DecreaseKey needs no search. Keys and
// slots live in scratch slices indexed by id; Reset sizes them for the next
// run without reallocating when capacity suffices.
//
// Layout: the heap is 1-based. parent(i) = i>>1, children 2i and 2i+1.
//
// Complexity:
//
//   - Insert, DecreaseKey, ExtractMin: O(log n)
//   - IsEmpty, Len, Key, Contains:     O(1)
//   - Reset:                           O(n) on the id scratch
//
// A Queue is not safe for concurrent use.
package pqueue

import "fmt"

// Queue is an indexable binary min-heap of ids keyed by float64.
type Queue struct {
	heap  []int32   // heap[1..size] holds ids; heap[0] is unused
	size  int       // logical size, independent of cap(heap)
	index []int32   // index[id] = slot in heap, or absent
	key   []float64 // key[id] = current key
}

// New returns a Queue with room for capacity ids before growing.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue{heap: make([]int32, 1, capacity+1)}
	q.Reset(capacity)

	return q
}

// Reset prepares the id scratch for ids in [0, n). It panics with
// ErrNotEmpty if a previous run did not drain the queue.
func (q *Queue) Reset(n int) {
	if q.size != 0 {
		panic(fmt.Errorf("%w: %d items left", ErrNotEmpty, q.size))
	}
	if cap(q.index) < n {
		q.index = make([]int32, n)
		q.key = make([]float64, n)
	}
	q.index = q.index[:n]
	q.key = q.key[:n]
	for i := range q.index {
		q.index[i] = absent
	}
	q.heap = q.heap[:1]
}

// IsEmpty reports whether the queue holds no ids.
func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

// Len returns the logical size of the queue.
func (q *Queue) Len() int {
	return q.size
}

// Contains reports whether id is currently in the heap.
func (q *Queue) Contains(id int) bool {
	return id >= 0 && id < len(q.index) && q.index[id] != absent
}

// Key returns the last key assigned to id.
func (q *Queue) Key(id int) float64 {
	q.checkID(id)

	return q.key[id]
}

// Insert appends id with key and sifts it up.
// It panics with ErrDuplicate if id is already queued.
func (q *Queue) Insert(id int, key float64) {
	q.checkID(id)
	if q.index[id] != absent {
		panic(fmt.Errorf("%w: id %d", ErrDuplicate, id))
	}

	q.size++
	q.set(q.size, int32(id))
	q.key[id] = key
	q.siftUp(q.size)
}

// DecreaseKey lowers the key of a queued id and restores heap order.
// It panics with ErrKeyIncrease if newKey is larger than the current key
// and with ErrNotQueued if id is not in the heap.
func (q *Queue) DecreaseKey(id int, newKey float64) {
	q.checkID(id)
	i := int(q.index[id])
	if i == absent {
		panic(fmt.Errorf("%w: id %d", ErrNotQueued, id))
	}
	if newKey > q.key[id] {
		panic(fmt.Errorf("%w: id %d has %g, got %g", ErrKeyIncrease, id, q.key[id], newKey))
	}

	q.key[id] = newKey
	q.siftUp(i)
}

// ExtractMin removes and returns the id with the smallest key.
// It panics with ErrUnderflow on an empty queue; check IsEmpty first.
func (q *Queue) ExtractMin() (int, float64) {
	if q.size == 0 {
		panic(ErrUnderflow)
	}

	minID := q.heap[1]
	q.index[minID] = absent

	last := q.heap[q.size]
	q.size--
	if q.size > 0 {
		q.set(1, last)
		q.siftDown(1)
	}

	return int(minID), q.key[minID]
}

// set writes id into slot i, growing the backing array geometrically,
// and records the slot on the id.
func (q *Queue) set(i int, id int32) {
	if i >= len(q.heap) {
		if i >= cap(q.heap) {
			grown := make([]int32, len(q.heap), 2*i+10)
			copy(grown, q.heap)
			q.heap = grown
		}
		q.heap = q.heap[:i+1]
	}
	q.heap[i] = id
	q.index[id] = int32(i)
}

// siftUp swaps slot i with its parent while the parent's key is greater.
func (q *Queue) siftUp(i int) {
	for i > 1 {
		p := i >> 1
		child, parent := q.heap[i], q.heap[p]
		if q.key[parent] <= q.key[child] {
			return
		}
		q.set(p, child)
		q.set(i, parent)
		i = p
	}
}

// siftDown enforces the min-heap property below slot i.
func (q *Queue) siftDown(i int) {
	for {
		l, r := i<<1, i<<1+1
		smallest := i
		if l <= q.size && q.key[q.heap[l]] < q.key[q.heap[smallest]] {
			smallest = l
		}
		if r <= q.size && q.key[q.heap[r]] < q.key[q.heap[smallest]] {
			smallest = r
		}
		if smallest == i {
			return
		}
		a, b := q.heap[i], q.heap[smallest]
		q.set(i, b)
		q.set(smallest, a)
		i = smallest
	}
}

func (q *Queue) checkID(id int) {
	if id < 0 || id >= len(q.index) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIDRange, id, len(q.index)))
	}
}
