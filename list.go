package linkedlist

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	Value T
	Next  *node[T]
}

func newNode[T any](value T, next *node[T]) *node[T] {
	return &node[T]{
		Value: value,
		Next:  next,
	}
}

// List is an ordered singly-linked list. Zero value is an empty list ready to use.
// List is not safe for concurrent use.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// New returns new empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Size returns the number of values stored in the list.
func (l *List[T]) Size() int {
	return l.count
}

// Clear removes all the values from the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.count = 0
}

// Add appends value to the end of the list.
func (l *List[T]) Add(value T) {
	n := newNode[T](value, nil)
	if l.count == 0 {
		l.head = n
		l.tail = n
		l.count = 1
		return
	}

	l.tail.Next = n
	l.tail = n
	l.count++
}

// Insert puts value at index, shifting the value previously stored there and all the following ones by one position.
// Index must point to an existing value, so inserting at Size() fails. Use Add to append.
func (l *List[T]) Insert(value T, index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	if index == 0 {
		l.head = newNode[T](value, l.head)
		l.count++
		return nil
	}

	prev := l.nodeAt(index - 1)
	prev.Next = newNode[T](value, prev.Next)
	l.count++
	return nil
}

// Delete removes value stored at index, shifting all the following values by one position.
func (l *List[T]) Delete(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	if index == 0 {
		l.head = l.head.Next
		l.count--
	} else {
		prev := l.nodeAt(index - 1)
		if prev.Next == l.tail {
			prev.Next = nil
			l.tail = prev
		} else {
			prev.Next = prev.Next.Next
		}
		l.count--
	}

	if l.count == 0 {
		l.head = nil
		l.tail = nil
	}
	return nil
}

// Get returns value stored at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var v T
		return v, err
	}
	return l.nodeAt(index).Value, nil
}

// Values returns copy of the stored values, in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.Next {
		values = append(values, n.Value)
	}
	return values
}

// String returns the size of the list in the first line followed by one line per stored value.
func (l *List[T]) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "LinkedList: size = %d\n", l.count)
	for n := l.head; n != nil; n = n.Next {
		fmt.Fprintf(b, "%v\n", n.Value)
	}
	return b.String()
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.count {
		return newIndexOutOfRangeError(index, l.count)
	}
	return nil
}

// nodeAt expects index to be already validated.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.Next
	}
	return n
}
