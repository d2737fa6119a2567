/*
Package boos declares the capabilities of the kernel data-structure substrate.

Containers, iterators and hardware resources never panic on a recoverable
condition. Fallible operations report failure in band: a false result, a -1
index, a nil handle or the container's illegal value.
*/
package boos

import "github.com/ericyao2013/boos-core.rev2/buffer"

// Illegal is implemented by containers that return a designated illegal
// value in place of an element that cannot be located.
type Illegal[V any] interface {
	// Illegal returns the value returned on lookup failure.
	Illegal() V
	// SetIllegal replaces the value returned on lookup failure.
	SetIllegal(value V)
	// IsIllegal reports whether value equals the illegal value.
	IsIllegal(value V) bool
}

// Collection is the base capability of every element container.
type Collection[V any] interface {
	Illegal[V]

	// Add appends value and reports whether it was stored.
	Add(value V) bool
	// Clear removes every element.
	Clear()
	// Len returns the number of elements.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// ToArray copies the elements into a new buffer owned by the caller,
	// or returns nil if there is nothing to copy or no memory.
	ToArray() *buffer.Buffer[V]
}

// Iterable is a collection that can hand out iterators.
//
// The returned iterator is owned by the caller, who must Release it.
type Iterable[V any] interface {
	Iterator() Iterator[V]
}

// Queue is a FIFO view of a collection.
type Queue[V any] interface {
	Collection[V]

	// Remove removes the head element.
	Remove() bool
	// Element returns the head element without removing it.
	Element() V
}

// List is an index-addressed view of a collection.
type List[V any] interface {
	Collection[V]
	Iterable[V]

	Insert(index int, value V) bool
	RemoveAt(index int) bool
	RemoveElement(value V) bool
	RemoveFirst() bool
	RemoveLast() bool
	Get(index int) V
	GetFirst() V
	GetLast() V
	IndexOf(value V) int
	IsIndex(index int) bool
	ListIterator(index int) ListIterator[V]
}

// Iterator is a forward cursor over a collection.
type Iterator[V any] interface {
	HasNext() bool
	// Next returns the next element, or the illegal value if there is none
	// or the collection was structurally modified behind the iterator.
	Next() V
	// Remove removes the element last returned by Next or Previous.
	Remove() bool
	// Release detaches the iterator from its collection.
	Release()
}

// ListIterator is a bidirectional cursor over a list.
type ListIterator[V any] interface {
	Iterator[V]

	HasPrevious() bool
	Previous() V
	NextIndex() int
	PreviousIndex() int
	// Set replaces the element last returned by Next or Previous.
	Set(value V) bool
	// Add inserts value immediately before the element Next would return.
	Add(value V) bool
}

// Timer is a hardware timer resource.
type Timer interface {
	IsConstructed() bool
	// Count returns the counter register.
	Count() int64
	// Period returns the period register.
	Period() int64
	SetCount(count int64)
	// SetPeriod sets the period in microseconds. Zero selects the maximum period.
	SetPeriod(us int64)
	Start()
	Stop()
	// Number returns the hardware timer number, or -1.
	Number() int
}
