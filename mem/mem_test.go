package mem_test

import (
	"testing"

	. "github.com/ericyao2013/boos-core.rev2/internal/testing"
	"github.com/ericyao2013/boos-core.rev2/mem"
	. "github.com/onsi/gomega"
)

func cstr(s string, size int) []byte {
	b := make([]byte, size)
	copy(b, s)
	return b
}

func TestCopy(t *testing.T) {
	t.Run("copies n bytes", func(t *testing.T) {
		dst := make([]byte, 4)
		AssertEqual(t, mem.Copy(dst, []byte("abcd"), 3), []byte{'a', 'b', 'c', 0})
	})

	t.Run("bounded by the shorter slice", func(t *testing.T) {
		dst := make([]byte, 2)
		AssertEqual(t, mem.Copy(dst, []byte("abcd"), 10), []byte("ab"))
	})

	t.Run("zero length", func(t *testing.T) {
		dst := []byte("xy")
		AssertEqual(t, mem.Copy(dst, []byte("ab"), 0), []byte("xy"))
	})
}

func TestFill(t *testing.T) {
	g := NewWithT(t)

	dst := make([]byte, 4)
	g.Expect(mem.Fill(dst, 0x1ff, 3)).To(Equal([]byte{0xff, 0xff, 0xff, 0}))
	g.Expect(mem.Fill(dst, 7, 100)).To(Equal([]byte{7, 7, 7, 7}))
}

func TestStrLen(t *testing.T) {
	g := NewWithT(t)

	g.Expect(mem.StrLen(cstr("boos", 8))).To(Equal(4))
	g.Expect(mem.StrLen([]byte("unterminated"))).To(Equal(12))
	g.Expect(mem.StrLen(nil)).To(BeZero())
}

func TestStrCpy(t *testing.T) {
	g := NewWithT(t)

	dst := cstr("zzzzzz", 6)
	g.Expect(mem.StrCpy(dst, cstr("abc", 8))).To(Equal([]byte{'a', 'b', 'c', 0, 'z', 'z'}))

	small := make([]byte, 3)
	g.Expect(mem.StrCpy(small, []byte("abcdef"))).To(Equal([]byte{'a', 'b', 0}))

	g.Expect(mem.StrCpy(nil, []byte("a"))).To(BeEmpty())
}

func TestStrCat(t *testing.T) {
	g := NewWithT(t)

	dst := cstr("ker", 8)
	mem.StrCat(dst, cstr("nel", 4))

	g.Expect(mem.StrLen(dst)).To(Equal(6))
	g.Expect(string(dst[:mem.StrLen(dst)])).To(Equal("kernel"))
}

func TestStrCmp(t *testing.T) {
	g := NewWithT(t)

	g.Expect(mem.StrCmp(cstr("abc", 4), cstr("abc", 8))).To(BeZero())
	g.Expect(mem.StrCmp(cstr("abc", 4), cstr("abd", 4))).To(Equal(-1))
	g.Expect(mem.StrCmp(cstr("abd", 4), cstr("abc", 4))).To(Equal(1))
	g.Expect(mem.StrCmp(cstr("ab", 4), cstr("abc", 4))).To(Equal(-int('c')))
	g.Expect(mem.StrCmp(nil, nil)).To(BeZero())
}
