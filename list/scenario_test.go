package list_test

import (
	"github.com/ericyao2013/boos-core.rev2/alloc"
	"github.com/ericyao2013/boos-core.rev2/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("a linked list", func() {
	var (
		h *alloc.Heap
		l *list.LinkedList[string]
	)

	BeforeEach(func() {
		h = newHeap()

		var err error
		l, err = list.New[string](list.WithAllocator(h), list.WithIllegal("illegal"))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		l.Release()
		Expect(h.Stats().Blocks).To(BeZero())
	})

	When("A, B and C are inserted at indices 0, 1 and 2", func() {
		BeforeEach(func() {
			Expect(l.Insert(0, "A")).To(BeTrue())
			Expect(l.Insert(1, "B")).To(BeTrue())
			Expect(l.Insert(2, "C")).To(BeTrue())
		})

		Specify("they are stored in order", func() {
			Expect(l.Len()).To(Equal(3))
			Expect(elements(l)).To(Equal([]string{"A", "B", "C"}))
		})

		When("Z is inserted at index 0", func() {
			BeforeEach(func() {
				Expect(l.Insert(0, "Z")).To(BeTrue())
			})

			Specify("it becomes the head and the tail is unchanged", func() {
				Expect(elements(l)).To(Equal([]string{"Z", "A", "B", "C"}))
				Expect(l.GetLast()).To(Equal("C"))
			})

			When("the tail is removed", func() {
				BeforeEach(func() {
					Expect(l.RemoveAt(3)).To(BeTrue())
				})

				Specify("its predecessor becomes the tail", func() {
					Expect(elements(l)).To(Equal([]string{"Z", "A", "B"}))
					Expect(l.GetLast()).To(Equal("B"))
				})

				Specify("B is found at index 2", func() {
					Expect(l.IndexOf("B")).To(Equal(2))
				})
			})
		})
	})

	When("the list is empty", func() {
		Specify("RemoveFirst fails", func() {
			Expect(l.RemoveFirst()).To(BeFalse())
			Expect(l.Len()).To(BeZero())
		})

		Specify("ToArray returns nil without allocating", func() {
			Expect(l.ToArray()).To(BeNil())
			Expect(h.Stats().Allocations).To(BeZero())
		})

		Specify("accessors return the illegal value", func() {
			Expect(l.Get(0)).To(Equal("illegal"))
			Expect(l.Element()).To(Equal("illegal"))
			Expect(l.GetLast()).To(Equal("illegal"))
			Expect(l.IndexOf("A")).To(Equal(-1))
		})
	})

	DescribeTable("inserting at the ends",
		func(index func() int, value string, expected []string) {
			Expect(l.Add("a")).To(BeTrue())
			Expect(l.Add("b")).To(BeTrue())

			Expect(l.Insert(index(), value)).To(BeTrue())
			Expect(elements(l)).To(Equal(expected))
		},
		Entry("index 0 prepends", func() int { return 0 }, "z", []string{"z", "a", "b"}),
		Entry("index Len() appends", func() int { return l.Len() }, "z", []string{"a", "b", "z"}),
	)

	DescribeTable("out of range indices",
		func(index int) {
			Expect(l.Add("a")).To(BeTrue())

			Expect(l.Insert(index, "x")).To(BeFalse())
			Expect(l.RemoveAt(index)).To(BeFalse())
			Expect(l.Get(index)).To(Equal("illegal"))
			Expect(l.Len()).To(Equal(1))
		},
		Entry("negative", -1),
		Entry("past the end", 2),
	)
})
