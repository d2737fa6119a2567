/*
Package list implements an allocator-aware circular doubly linked list with
list and queue access.

Lists are not safe for concurrent use; callers serialize access.
*/
package list

import (
	"fmt"
	"unsafe"

	boos "github.com/ericyao2013/boos-core.rev2"
	"github.com/ericyao2013/boos-core.rev2/alloc"
	"github.com/ericyao2013/boos-core.rev2/buffer"
)

// IteratorFactory creates a list iterator positioned at index.
// It returns nil if index is out of range.
type IteratorFactory[V comparable] func(index int) boos.ListIterator[V]

// AbstractLinkedList is the core of linked collections. It keeps its nodes in
// a single circular chain anchored at the tail; the head is the tail's next.
//
// Iteration is left to the concrete collection, which supplies an
// IteratorFactory.
//
// All methods are safe on a nil receiver, which behaves as a collection that
// was never constructed: mutators fail and accessors return the zero value.
type AbstractLinkedList[V comparable] struct {
	arena     arena[V]
	alloc     alloc.Allocator
	iterators IteratorFactory[V]
	illegal   V
	nodeSize  uintptr
	last      handle
	count     int
	mods      uint64
}

// NewAbstract creates an empty list whose iterators are made by factory.
func NewAbstract[V comparable](factory IteratorFactory[V], opts ...Option) (*AbstractLinkedList[V], error) {
	l := &AbstractLinkedList[V]{}
	if err := l.init(factory, opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *AbstractLinkedList[V]) init(factory IteratorFactory[V], opts ...Option) error {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	if o.allocator == nil {
		return ErrNoAllocator
	}

	var illegal V
	if o.illegal != nil {
		v, ok := o.illegal.(V)
		if !ok {
			return fmt.Errorf("%w: got %T, want %T", ErrIllegalType, o.illegal, illegal)
		}
		illegal = v
	}

	*l = AbstractLinkedList[V]{
		alloc:     o.allocator,
		iterators: factory,
		illegal:   illegal,
		nodeSize:  unsafe.Sizeof(node[V]{}),
		last:      nilHandle,
	}

	return nil
}

// IsConstructed reports whether l is usable.
func (l *AbstractLinkedList[V]) IsConstructed() bool {
	return l != nil && l.alloc != nil
}

// Add inserts value at the end of the list.
func (l *AbstractLinkedList[V]) Add(value V) bool {
	return l.Insert(l.Len(), value)
}

// Insert inserts value at index, 0 <= index <= Len().
// It fails without modifying the list if index is out of range or no node
// can be allocated.
func (l *AbstractLinkedList[V]) Insert(index int, value V) bool {
	if !l.IsConstructed() || index < 0 || index > l.count {
		return false
	}

	h, ok := l.newNode(value)
	if !ok {
		return false
	}

	if l.last == nilHandle {
		l.last = h
		l.count++
		l.mods++
		return true
	}

	if index > 0 {
		after := l.nodeAt(index - 1)
		if after == nilHandle {
			l.freeNode(h)
			return false
		}
		l.arena.linkAfter(after, h)
		if after == l.last {
			l.last = h
		}
	} else {
		before := l.nodeAt(0)
		if before == nilHandle {
			l.freeNode(h)
			return false
		}
		l.arena.linkBefore(before, h)
	}

	l.count++
	l.mods++

	return true
}

// Clear removes every element, tail first.
func (l *AbstractLinkedList[V]) Clear() {
	if !l.IsConstructed() {
		return
	}

	for l.last != nilHandle {
		l.removeNode(l.last)
	}

	l.arena = arena[V]{}
}

// Release clears the list and detaches it from its allocator.
// A released list is no longer constructed.
func (l *AbstractLinkedList[V]) Release() {
	if !l.IsConstructed() {
		return
	}

	l.Clear()
	l.alloc = nil
	l.iterators = nil
}

// Remove removes the head element of the queue.
func (l *AbstractLinkedList[V]) Remove() bool {
	return l.RemoveAt(0)
}

// RemoveFirst removes the first element.
func (l *AbstractLinkedList[V]) RemoveFirst() bool {
	return l.RemoveAt(0)
}

// RemoveLast removes the last element.
func (l *AbstractLinkedList[V]) RemoveLast() bool {
	return l.RemoveAt(l.Len() - 1)
}

// RemoveAt removes the element at index.
func (l *AbstractLinkedList[V]) RemoveAt(index int) bool {
	if !l.IsConstructed() {
		return false
	}
	return l.removeNode(l.nodeAt(index))
}

// RemoveElement removes the first occurrence of value.
func (l *AbstractLinkedList[V]) RemoveElement(value V) bool {
	if !l.IsConstructed() {
		return false
	}
	return l.removeNode(l.nodeOf(value))
}

// Element returns the head element of the queue.
func (l *AbstractLinkedList[V]) Element() V {
	return l.Get(0)
}

// GetFirst returns the first element.
func (l *AbstractLinkedList[V]) GetFirst() V {
	return l.Get(0)
}

// GetLast returns the last element.
func (l *AbstractLinkedList[V]) GetLast() V {
	return l.Get(l.Len() - 1)
}

// Get returns the element at index or the illegal value.
func (l *AbstractLinkedList[V]) Get(index int) V {
	v, _ := l.At(index)
	return v
}

// At returns the element at index. If there is none, it returns the illegal
// value and false.
func (l *AbstractLinkedList[V]) At(index int) (V, bool) {
	if !l.IsConstructed() {
		return l.Illegal(), false
	}

	h := l.nodeAt(index)
	if h == nilHandle {
		return l.illegal, false
	}

	return l.arena.value(h), true
}

// Len returns the number of elements.
func (l *AbstractLinkedList[V]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list has no elements.
func (l *AbstractLinkedList[V]) IsEmpty() bool {
	return l.Len() == 0
}

// IndexOf returns the index of the first occurrence of value or -1.
func (l *AbstractLinkedList[V]) IndexOf(value V) int {
	if !l.IsConstructed() {
		return -1
	}

	h := l.nodeOf(value)
	if h == nilHandle {
		return -1
	}

	return l.arena.position(h, l.head())
}

// IsIndex reports whether index addresses an element.
func (l *AbstractLinkedList[V]) IsIndex(index int) bool {
	return 0 <= index && index < l.Len()
}

// Illegal returns the value returned on lookup failure.
func (l *AbstractLinkedList[V]) Illegal() V {
	if l == nil {
		var zero V
		return zero
	}
	return l.illegal
}

// SetIllegal replaces the value returned on lookup failure.
func (l *AbstractLinkedList[V]) SetIllegal(value V) {
	if l.IsConstructed() {
		l.illegal = value
	}
}

// IsIllegal reports whether value is the illegal value.
func (l *AbstractLinkedList[V]) IsIllegal(value V) bool {
	return l.IsConstructed() && l.illegal == value
}

// ToArray copies the elements, head to tail, into a new buffer.
// It returns nil if the list is empty or the buffer cannot be allocated.
// The caller owns the buffer and must release it.
func (l *AbstractLinkedList[V]) ToArray() *buffer.Buffer[V] {
	if !l.IsConstructed() || l.count == 0 {
		return nil
	}

	buf, err := buffer.New(l.alloc, l.count, l.illegal)
	if err != nil {
		return nil
	}

	i := 0
	l.Do(func(v V) bool {
		buf.Set(i, v)
		i++
		return true
	})

	return buf
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *AbstractLinkedList[V]) Do(f func(value V) bool) {
	if !l.IsConstructed() || l.last == nilHandle {
		return
	}

	h := l.head()
	for range l.count {
		if !f(l.arena.value(h)) {
			return
		}
		h = l.arena.next(h)
	}
}

// Iterator returns an iterator positioned at the head.
// The caller owns the iterator and must release it.
func (l *AbstractLinkedList[V]) Iterator() boos.Iterator[V] {
	return l.ListIterator(0)
}

// ListIterator returns a list iterator positioned at index,
// 0 <= index <= Len(). The caller owns the iterator and must release it.
func (l *AbstractLinkedList[V]) ListIterator(index int) boos.ListIterator[V] {
	if !l.IsConstructed() || l.iterators == nil {
		return nil
	}
	return l.iterators(index)
}

// ModCount returns the number of structural modifications made to l.
func (l *AbstractLinkedList[V]) ModCount() uint64 {
	if l == nil {
		return 0
	}
	return l.mods
}

func (l *AbstractLinkedList[V]) head() handle {
	if l.last == nilHandle {
		return nilHandle
	}
	return l.arena.next(l.last)
}

// newNode allocates a detached node holding value.
func (l *AbstractLinkedList[V]) newNode(value V) (handle, bool) {
	if l.arena.full() {
		return nilHandle, false
	}

	addr, err := l.alloc.Allocate(l.nodeSize)
	if err != nil {
		return nilHandle, false
	}
	return l.arena.put(value, addr), true
}

// freeNode releases a detached node.
func (l *AbstractLinkedList[V]) freeNode(h handle) {
	l.alloc.Release(l.arena.release(h))
}

// nodeAt returns the node at index, walking from the nearer end.
func (l *AbstractLinkedList[V]) nodeAt(index int) handle {
	if !l.IsIndex(index) {
		return nilHandle
	}

	if index == l.count-1 {
		return l.last
	}

	if index <= l.count/2 {
		h := l.head()
		for i := 0; i < index; i++ {
			h = l.arena.next(h)
		}
		return h
	}

	h := l.last
	for i := l.count - 1; i > index; i-- {
		h = l.arena.prev(h)
	}
	return h
}

// nodeOf returns the first node holding value.
func (l *AbstractLinkedList[V]) nodeOf(value V) handle {
	if l.last == nilHandle {
		return nilHandle
	}

	h := l.head()
	for range l.count {
		if l.arena.value(h) == value {
			return h
		}
		h = l.arena.next(h)
	}

	return nilHandle
}

// removeNode unlinks and frees a node.
func (l *AbstractLinkedList[V]) removeNode(h handle) bool {
	if h == nilHandle {
		return false
	}

	if h == l.last {
		if l.count == 1 {
			l.last = nilHandle
		} else {
			l.last = l.arena.prev(h)
		}
	}

	l.arena.unlink(h)
	l.freeNode(h)
	l.count--
	l.mods++

	return true
}
