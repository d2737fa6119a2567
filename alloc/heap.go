package alloc

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

const (
	// heapBase is the first address handed out by a heap.
	heapBase  = 0x1000
	alignment = 8

	// MaxBlockSize is the largest block a heap hands out, limit or not.
	MaxBlockSize = 1 << 30
)

// Stats is a snapshot of heap usage.
type Stats struct {
	Blocks      int
	InUse       uintptr
	Allocations int64
	Failures    int64
}

// Heap is a process-wide allocation facade.
// It is safe for concurrent use.
type Heap struct {
	blocks   *xsync.MapOf[Addr, []byte]
	allocs   *xsync.Counter
	failures *xsync.Counter
	log      logrus.FieldLogger
	brk      atomic.Uintptr
	inUse    atomic.Int64
	limit    uintptr
}

var _ Allocator = &Heap{}

// NewHeap creates an empty heap.
func NewHeap(opts ...Option) *Heap {
	o := newDefaultHeapOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	h := &Heap{
		blocks:   xsync.NewTypedMapOf[Addr, []byte](hashAddr),
		allocs:   xsync.NewCounter(),
		failures: xsync.NewCounter(),
		log:      o.logger,
		limit:    o.limit,
	}
	h.brk.Store(heapBase)

	return h
}

// Allocate reserves a zeroed block of size bytes.
func (h *Heap) Allocate(size uintptr) (Addr, error) {
	if size > MaxBlockSize || !h.reserve(size) {
		h.failures.Inc()
		h.log.WithFields(logrus.Fields{
			"size":  size,
			"inUse": h.inUse.Load(),
			"limit": h.limit,
		}).Debug("alloc: heap exhausted")

		return Nil, fmt.Errorf("alloc: allocate %d bytes: %w", size, ErrOutOfMemory)
	}

	span := align(size)
	addr := Addr(h.brk.Add(span) - span)

	h.blocks.Store(addr, make([]byte, size))
	h.allocs.Inc()

	return addr, nil
}

// Release returns a block to the heap.
func (h *Heap) Release(addr Addr) {
	if addr == Nil {
		return
	}

	block, ok := h.blocks.LoadAndDelete(addr)
	if !ok {
		h.log.WithField("addr", fmt.Sprintf("%#x", uintptr(addr))).Warn("alloc: release of unknown block")
		return
	}

	h.inUse.Add(-int64(len(block)))
}

// Bytes returns the memory of a live block or nil.
func (h *Heap) Bytes(addr Addr) []byte {
	block, ok := h.blocks.Load(addr)
	if !ok {
		return nil
	}
	return block
}

// Stats returns the current heap usage.
func (h *Heap) Stats() Stats {
	return Stats{
		Blocks:      h.blocks.Size(),
		InUse:       uintptr(h.inUse.Load()),
		Allocations: h.allocs.Value(),
		Failures:    h.failures.Value(),
	}
}

// reserve accounts size bytes against the limit.
func (h *Heap) reserve(size uintptr) bool {
	for {
		used := h.inUse.Load()
		next := used + int64(size)
		if next < used || (h.limit > 0 && uintptr(next) > h.limit) {
			return false
		}
		if h.inUse.CompareAndSwap(used, next) {
			return true
		}
	}
}

// align rounds size up to the heap alignment. Zero-sized blocks still get a
// unique address.
func align(size uintptr) uintptr {
	if size == 0 {
		return alignment
	}
	return (size + alignment - 1) &^ (alignment - 1)
}

func hashAddr(seed maphash.Seed, addr Addr) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(addr))
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
