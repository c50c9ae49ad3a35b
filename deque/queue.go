package deque

// Queue is a first-in, first-out container backed by a Deque. It owns one
// deque instance and adds no state of its own, so it shares the reference
// binary layout.
type Queue[T any] struct {
	deque Deque[T]
}

// NewQueue returns an empty queue. Options are forwarded to the underlying
// deque.
func NewQueue[T any](opt ...Option) *Queue[T] {
	q := &Queue[T]{}
	q.deque = *New[T](opt...)

	return q
}

// Push appends elem at the back of the queue.
func (q *Queue[T]) Push(elem T) {
	q.deque.PushBack(elem)
}

// Pop removes and returns the oldest element, or false if the queue is
// empty.
func (q *Queue[T]) Pop() (T, bool) {
	return q.deque.PopFront()
}

// Top returns the oldest element without removing it, or false if the
// queue is empty.
func (q *Queue[T]) Top() (T, bool) {
	return q.deque.Front()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.deque.Len()
}

// IsEmpty reports whether the queue contains no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.deque.IsEmpty()
}

// Iter returns an iterator over the queue, oldest element first.
func (q *Queue[T]) Iter() Iterator[T] {
	return q.deque.Iter()
}

// Inner exposes the backing deque.
func (q *Queue[T]) Inner() *Deque[T] {
	return &q.deque
}

// Destroy returns the queue's storage to the allocator. The queue must not
// be used afterwards.
func (q *Queue[T]) Destroy() {
	q.deque.Destroy()
}

func (q *Queue[T]) String() string {
	return q.deque.String()
}
