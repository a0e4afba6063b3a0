// Package pqueue defines sentinel errors for the indexable min-heap.
package pqueue

import "errors"

// Sentinel errors raised (via panic) on priority queue misuse. They mark
// caller logic errors, never expected runtime conditions.
var (
	// ErrUnderflow indicates ExtractMin on an empty queue.
	ErrUnderflow = errors.New("pqueue: heap underflow")

	// ErrKeyIncrease indicates DecreaseKey with a key larger than the current one.
	ErrKeyIncrease = errors.New("pqueue: new key is larger than current key")

	// ErrNotQueued indicates DecreaseKey on an id that is not in the heap.
	ErrNotQueued = errors.New("pqueue: id is not in the queue")

	// ErrDuplicate indicates Insert of an id that is already in the heap.
	ErrDuplicate = errors.New("pqueue: id is already in the queue")

	// ErrNotEmpty indicates Reset while items remain in the heap.
	ErrNotEmpty = errors.New("pqueue: queue is not empty")

	// ErrIDRange indicates an id outside the range given to Reset.
	ErrIDRange = errors.New("pqueue: id out of range")
)

// absent marks an id whose heap index is not a valid slot.
const absent = -1
