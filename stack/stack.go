// Package stack implements a generic last-in-first-out container.
//
// A Stack owns its backing storage: the number of elements is observable,
// the elements themselves only through the top of the stack. Removing from
// an empty stack is reported through ErrEmpty, never through a zero value,
// because a zero value of the element type may be legitimately stored.
//
// A Stack is not safe for concurrent use.
package stack

import (
	"encoding/json"
	"errors"

	"github.com/samber/mo"
)

// ErrEmpty is returned when an element is requested from an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a LIFO container of elements of type T.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity elements before it grows.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element. On an empty stack it returns ErrEmpty.
func (s *Stack[T]) Pop() (item T, err error) {
	n := len(s.items)
	if n == 0 {
		return item, ErrEmpty
	}

	item = s.items[n-1]

	// drop the reference so popped pointers can be collected
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (item T, err error) {
	if len(s.items) == 0 {
		return item, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// TryPop is Pop for callers that treat emptiness as absence rather than failure.
func (s *Stack[T]) TryPop() mo.Option[T] {
	item, err := s.Pop()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(item)
}

// PopResult is Pop folded into a single result value.
func (s *Stack[T]) PopResult() mo.Result[T] {
	return mo.TupleToResult(s.Pop())
}

// MustPop is Pop for callers that have already checked Len. It panics with ErrEmpty.
func (s *Stack[T]) MustPop() T {
	item, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return item
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// MarshalJSON encodes the stack as an array ordered from bottom to top.
func (s *Stack[T]) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON restores a stack encoded by MarshalJSON, replacing the current contents.
func (s *Stack[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	s.items = items
	return nil
}
