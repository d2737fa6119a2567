package list

import (
	"math"

	"github.com/ericyao2013/boos-core.rev2/alloc"
)

// handle addresses a node in an arena.
type handle int32

const nilHandle handle = -1

// maxNodes is the number of slots a handle can address.
var maxNodes = math.MaxInt32

// node is a chain element. It owns a copy of the stored value and the
// allocator block that accounts for it.
type node[V any] struct {
	value      V
	next, prev handle
	addr       alloc.Addr
}

// arena owns the nodes of one collection. Released slots are reused.
type arena[V any] struct {
	nodes []node[V]
	free  []handle
}

// full reports whether put would need a slot no handle can address.
func (a *arena[V]) full() bool {
	return len(a.free) == 0 && len(a.nodes) >= maxNodes
}

// put places a self-linked node holding v into the arena.
func (a *arena[V]) put(v V, addr alloc.Addr) handle {
	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[V]{})
		h = handle(len(a.nodes) - 1)
	}

	a.nodes[h] = node[V]{
		value: v,
		next:  h,
		prev:  h,
		addr:  addr,
	}

	return h
}

// release clears the slot of an unlinked node and returns its block address.
func (a *arena[V]) release(h handle) alloc.Addr {
	addr := a.nodes[h].addr
	a.nodes[h] = node[V]{next: nilHandle, prev: nilHandle}
	a.free = append(a.free, h)
	return addr
}

func (a *arena[V]) value(h handle) V {
	return a.nodes[h].value
}

func (a *arena[V]) setValue(h handle, v V) {
	a.nodes[h].value = v
}

func (a *arena[V]) next(h handle) handle {
	return a.nodes[h].next
}

func (a *arena[V]) prev(h handle) handle {
	return a.nodes[h].prev
}

// linkAfter inserts s after e.
func (a *arena[V]) linkAfter(e, s handle) {
	n := a.nodes[e].next
	a.nodes[e].next = s
	a.nodes[s].prev = e
	a.nodes[n].prev = s
	a.nodes[s].next = n
}

// linkBefore inserts s before e.
func (a *arena[V]) linkBefore(e, s handle) {
	a.linkAfter(a.nodes[e].prev, s)
}

// unlink removes e from its chain and links it to itself.
func (a *arena[V]) unlink(e handle) {
	p, n := a.nodes[e].prev, a.nodes[e].next
	a.nodes[p].next = n
	a.nodes[n].prev = p
	a.nodes[e].next = e
	a.nodes[e].prev = e
}

// position returns the ordinal of e counted forward from head,
// or -1 if e is not on head's chain.
func (a *arena[V]) position(e, head handle) int {
	pos := 0
	for p := e; p != head; p = a.nodes[p].prev {
		if pos >= len(a.nodes) {
			return -1
		}
		pos++
	}
	return pos
}
