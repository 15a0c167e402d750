package platform

import (
	"fmt"
	errors "linked-list/internal/platform/error"
	"linked-list/internal/platform/helper"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	EqFunc[T any] func(a, b T) bool

	node[T any] struct {
		val  T
		next *node[T]
	}

	// LinkedList is a singly linked list that only grows and shrinks at its
	// head. It is not safe for concurrent use.
	//
	// The zero value is not ready to use; create lists with NewLinkedList or
	// NewLinkedListFunc.
	LinkedList[T any] struct {
		id     uuid.UUID
		head   *node[T]
		count  int
		equals EqFunc[T]
	}
)

// NewLinkedList returns an empty list comparing values with ==.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return NewLinkedListFunc(func(a, b T) bool {
		return a == b
	})
}

// NewLinkedListFunc returns an empty list whose Search uses equals.
func NewLinkedListFunc[T any](equals EqFunc[T]) *LinkedList[T] {
	if equals == nil {
		panic("linked list: nil equality function")
	}
	return &LinkedList[T]{
		id:     uuid.New(),
		head:   nil,
		equals: equals,
	}
}

func (l *LinkedList[T]) ID() uuid.UUID {
	return l.id
}

func (l *LinkedList[T]) Count() int {
	return l.count
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *LinkedList[T]) InsertAtHead(val T) {
	l.head = &node[T]{
		val:  val,
		next: l.head,
	}
	l.count++
	helper.Log.WithFields(l.fields()).Trace("inserted at head")
}

// DeleteAtHead removes the first node and returns its value.
// It fails with an *errors.EmptyCollectionError if the list is empty.
func (l *LinkedList[T]) DeleteAtHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.NewEmptyCollectionError(l.id, "delete at head")
	}

	removed := l.head
	l.head = removed.next
	removed.next = nil
	l.count--
	helper.Log.WithFields(l.fields()).Trace("deleted at head")
	return removed.val, nil
}

func (l *LinkedList[T]) Search(target T) bool {
	if l.equals == nil {
		panic("linked list: not initialized, use NewLinkedList")
	}
	for n := l.head; n != nil; n = n.next {
		if l.equals(n.val, target) {
			return true
		}
	}
	return false
}

// Values returns a snapshot of the stored values, head first.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.val)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	parts := make([]string, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprint(n.val))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l *LinkedList[T]) fields() logrus.Fields {
	return logrus.Fields{
		"list":  l.id,
		"count": l.count,
	}
}
