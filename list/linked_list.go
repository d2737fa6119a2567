package list

import boos "github.com/ericyao2013/boos-core.rev2"

// LinkedList is a linked list with fail-fast list iterators.
type LinkedList[V comparable] struct {
	AbstractLinkedList[V]
}

var (
	_ boos.List[int]         = &LinkedList[int]{}
	_ boos.Queue[int]        = &LinkedList[int]{}
	_ boos.ListIterator[int] = &listIterator[int]{}
)

// New creates an empty linked list.
func New[V comparable](opts ...Option) (*LinkedList[V], error) {
	l := &LinkedList[V]{}
	if err := l.init(l.newIterator, opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LinkedList[V]) newIterator(index int) boos.ListIterator[V] {
	if index < 0 || index > l.count {
		return nil
	}

	next := nilHandle
	if index < l.count {
		next = l.nodeAt(index)
	}

	return &listIterator[V]{
		list:      &l.AbstractLinkedList,
		next:      next,
		nextIndex: index,
		lastRet:   nilHandle,
		expected:  l.mods,
		sentinel:  l.illegal,
	}
}

// listIterator is a bidirectional cursor. Structural changes to the list made
// other than through the iterator invalidate it.
type listIterator[V comparable] struct {
	list      *AbstractLinkedList[V]
	next      handle
	nextIndex int
	lastRet   handle
	expected  uint64
	// sentinel is the list's illegal value as last seen while attached.
	sentinel  V
}

// valid reports whether the iterator may still be used and detaches it if not.
func (it *listIterator[V]) valid() bool {
	if it.list == nil {
		return false
	}
	if !it.list.IsConstructed() || it.list.mods != it.expected {
		it.detach()
		return false
	}
	return true
}

func (it *listIterator[V]) detach() {
	if it.list != nil {
		it.sentinel = it.list.illegal
	}
	it.list = nil
	it.next = nilHandle
	it.lastRet = nilHandle
}

func (it *listIterator[V]) illegal() V {
	if it.list == nil {
		return it.sentinel
	}
	return it.list.illegal
}

func (it *listIterator[V]) HasNext() bool {
	return it.valid() && it.nextIndex < it.list.count
}

func (it *listIterator[V]) Next() V {
	if !it.HasNext() {
		return it.illegal()
	}

	it.lastRet = it.next
	it.nextIndex++
	if it.nextIndex < it.list.count {
		it.next = it.list.arena.next(it.next)
	} else {
		it.next = nilHandle
	}

	return it.list.arena.value(it.lastRet)
}

func (it *listIterator[V]) HasPrevious() bool {
	return it.valid() && it.nextIndex > 0
}

func (it *listIterator[V]) Previous() V {
	if !it.HasPrevious() {
		return it.illegal()
	}

	if it.next == nilHandle {
		it.next = it.list.last
	} else {
		it.next = it.list.arena.prev(it.next)
	}
	it.lastRet = it.next
	it.nextIndex--

	return it.list.arena.value(it.lastRet)
}

func (it *listIterator[V]) NextIndex() int {
	return it.nextIndex
}

func (it *listIterator[V]) PreviousIndex() int {
	return it.nextIndex - 1
}

func (it *listIterator[V]) Remove() bool {
	if !it.valid() || it.lastRet == nilHandle {
		return false
	}

	next := it.next
	if it.lastRet == it.next {
		// Removing the element returned by Previous.
		if it.lastRet == it.list.last {
			next = nilHandle
		} else {
			next = it.list.arena.next(it.lastRet)
		}
	} else {
		it.nextIndex--
	}

	it.list.removeNode(it.lastRet)

	it.next = next
	it.lastRet = nilHandle
	it.expected = it.list.mods

	return true
}

func (it *listIterator[V]) Set(value V) bool {
	if !it.valid() || it.lastRet == nilHandle {
		return false
	}

	it.list.arena.setValue(it.lastRet, value)

	return true
}

func (it *listIterator[V]) Add(value V) bool {
	if !it.valid() || !it.list.Insert(it.nextIndex, value) {
		return false
	}

	it.nextIndex++
	it.lastRet = nilHandle
	it.expected = it.list.mods

	return true
}

func (it *listIterator[V]) Release() {
	it.detach()
}
