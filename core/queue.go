package core

// boundedQueue is a fixed-capacity FIFO that evicts its oldest element
// when full.
type boundedQueue[T any] struct {
	items []T
	cap   int
}

func newBoundedQueue[T any](capacity int) *boundedQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &boundedQueue[T]{items: make([]T, 0, capacity), cap: capacity}
}

func (q *boundedQueue[T]) Push(item T) {
	if len(q.items) == q.cap {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, item)
}

func (q *boundedQueue[T]) Len() int {
	return len(q.items)
}

func (q *boundedQueue[T]) Clear() {
	q.items = q.items[:0]
}

// Last returns the n most recent elements, oldest first. The returned
// slice aliases the queue and must not be held across pushes.
func (q *boundedQueue[T]) Last(n int) []T {
	if n >= len(q.items) {
		return q.items
	}
	return q.items[len(q.items)-n:]
}
