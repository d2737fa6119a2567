package alloc_test

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ericyao2013/boos-core.rev2/alloc"
	. "github.com/ericyao2013/boos-core.rev2/internal/testing"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestHeapAllocateRelease(t *testing.T) {
	g := NewWithT(t)

	h := alloc.NewHeap(alloc.WithLogger(quietLogger()))

	a, err := h.Allocate(16)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(a).NotTo(Equal(alloc.Nil))
	g.Expect(h.Bytes(a)).To(HaveLen(16))

	b, err := h.Allocate(3)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(b).NotTo(Equal(a))
	g.Expect(uintptr(b) % 8).To(BeZero())

	g.Expect(h.Stats()).To(Equal(alloc.Stats{
		Blocks:      2,
		InUse:       19,
		Allocations: 2,
	}))

	h.Release(a)
	h.Release(b)

	g.Expect(h.Bytes(a)).To(BeNil())
	AssertNoLeaks(t, h)
}

func TestHeapZeroSizeBlocksAreUnique(t *testing.T) {
	g := NewWithT(t)

	h := alloc.NewHeap(alloc.WithLogger(quietLogger()))

	a, err := h.Allocate(0)
	g.Expect(err).NotTo(HaveOccurred())
	b, err := h.Allocate(0)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(a).NotTo(Equal(b))

	h.Release(a)
	h.Release(b)
	AssertNoLeaks(t, h)
}

func TestHeapLimit(t *testing.T) {
	g := NewWithT(t)

	h := alloc.NewHeap(alloc.WithLimit(32), alloc.WithLogger(quietLogger()))

	a, err := h.Allocate(32)
	g.Expect(err).NotTo(HaveOccurred())

	addr, err := h.Allocate(1)
	g.Expect(addr).To(Equal(alloc.Nil))
	g.Expect(errors.Is(err, alloc.ErrOutOfMemory)).To(BeTrue())
	g.Expect(h.Stats().Failures).To(Equal(int64(1)))

	h.Release(a)

	_, err = h.Allocate(1)
	g.Expect(err).NotTo(HaveOccurred())
}

func TestHeapOversizedBlock(t *testing.T) {
	for _, size := range []uintptr{alloc.MaxBlockSize + 1, 1 << 50, ^uintptr(0)} {
		g := NewWithT(t)

		h := alloc.NewHeap(alloc.WithLogger(quietLogger()))

		var (
			addr alloc.Addr
			err  error
		)
		g.Expect(func() {
			addr, err = h.Allocate(size)
		}).NotTo(Panic())

		g.Expect(addr).To(Equal(alloc.Nil))
		g.Expect(err).To(MatchError(alloc.ErrOutOfMemory))
		g.Expect(h.Stats()).To(Equal(alloc.Stats{Failures: 1}))
	}
}

func TestHeapReleaseTolerance(t *testing.T) {
	g := NewWithT(t)

	h := alloc.NewHeap(alloc.WithLogger(quietLogger()))

	a, err := h.Allocate(8)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(func() {
		h.Release(alloc.Nil)
		h.Release(a)
		h.Release(a)
	}).NotTo(Panic())

	AssertNoLeaks(t, h)
}

func TestHeapConcurrentAllocate(t *testing.T) {
	g := NewWithT(t)

	h := alloc.NewHeap(alloc.WithLogger(quietLogger()))

	const (
		workers = 8
		perWork = 100
	)

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		addrs = map[alloc.Addr]bool{}
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWork {
				a, err := h.Allocate(24)
				if err != nil {
					continue
				}
				mu.Lock()
				addrs[a] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	g.Expect(addrs).To(HaveLen(workers * perWork))
	g.Expect(h.Stats().Blocks).To(Equal(workers * perWork))

	for a := range addrs {
		h.Release(a)
	}
	AssertNoLeaks(t, h)
}

func TestDefaultHeap(t *testing.T) {
	g := NewWithT(t)

	g.Expect(alloc.Default()).To(BeIdenticalTo(alloc.Default()))
}

func TestFaulty(t *testing.T) {
	t.Run("fails only the nth call", func(t *testing.T) {
		g := NewWithT(t)

		h := alloc.NewHeap(alloc.WithLogger(quietLogger()))
		f := alloc.NewFaulty(h, 2, false)

		a, err := f.Allocate(8)
		g.Expect(err).NotTo(HaveOccurred())

		_, err = f.Allocate(8)
		g.Expect(err).To(MatchError(alloc.ErrOutOfMemory))

		b, err := f.Allocate(8)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(f.Calls()).To(Equal(3))

		f.Release(a)
		f.Release(b)
		AssertNoLeaks(t, h)
	})

	t.Run("sticky", func(t *testing.T) {
		g := NewWithT(t)

		h := alloc.NewHeap(alloc.WithLogger(quietLogger()))
		f := alloc.NewFaulty(h, 1, true)

		for range 3 {
			addr, err := f.Allocate(8)
			g.Expect(addr).To(Equal(alloc.Nil))
			g.Expect(err).To(MatchError(alloc.ErrOutOfMemory))
		}
		AssertNoLeaks(t, h)
	})

	t.Run("disabled", func(t *testing.T) {
		g := NewWithT(t)

		h := alloc.NewHeap(alloc.WithLogger(quietLogger()))
		f := alloc.NewFaulty(h, 0, true)

		a, err := f.Allocate(8)
		g.Expect(err).NotTo(HaveOccurred())
		f.Release(a)
		AssertNoLeaks(t, h)
	})
}
