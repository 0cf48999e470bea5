package list

// Element is an element in a linked list.
type Element[T any] struct {
	prev, next *Element[T]
	list       *List[T]

	Value T
}

// Next returns the next element in the list, or nil at the back.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// Prev returns the previous element in the list, or nil at the front.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List implements a generic linked list based off of container/list. This
// contains the minimum functionality required for the cache segments.
type List[T any] struct {
	root Element[T]
	len  int
}

// New creates a new linked list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init initializes the list with no elements.
func (l *List[T]) Init() {
	l.root = Element[T]{}
	l.root.prev = &l.root
	l.root.next = &l.root
	l.len = 0
}

// Len is the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element in the list.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element in the list.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushFront adds a new value to the front of the list.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value, list: l}
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
	l.len++
	return e
}

// MoveToFront moves the given element to the front of the list.
func (l *List[T]) MoveToFront(e *Element[T]) {
	if l.root.next == e { // Already at front
		return
	}

	// Remove
	e.prev.next = e.next
	e.next.prev = e.prev

	// Push front
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}

// Remove removes the given element from the list.
func (l *List[T]) Remove(e *Element[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
	return e.Value
}
