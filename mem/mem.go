/*
Package mem implements raw memory and C string primitives over byte slices.

A C string ends at its first zero byte. A slice without a zero byte is treated
as terminated at its end.
*/
package mem

// Copy copies n bytes from src to dst and returns dst.
// The copy is bounded by the length of both slices.
func Copy(dst, src []byte, n int) []byte {
	n = min(n, len(dst), len(src))
	if n > 0 {
		copy(dst[:n], src[:n])
	}
	return dst
}

// Fill sets the first n bytes of dst to the low byte of val and returns dst.
func Fill(dst []byte, val int, n int) []byte {
	n = min(n, len(dst))
	b := byte(val)
	for i := 0; i < n; i++ {
		dst[i] = b
	}
	return dst
}

// StrLen returns the length of the C string s.
func StrLen(s []byte) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// StrCpy copies the C string src, terminator included, into dst and
// returns dst. The copy is truncated to fit dst; a truncated copy is still
// terminated.
func StrCpy(dst, src []byte) []byte {
	if len(dst) == 0 {
		return dst
	}

	n := min(StrLen(src), len(dst)-1)
	copy(dst[:n], src[:n])
	dst[n] = 0

	return dst
}

// StrCat appends the C string src to the C string in dst and returns dst.
func StrCat(dst, src []byte) []byte {
	StrCpy(dst[StrLen(dst):], src)
	return dst
}

// StrCmp compares two C strings. The result is the difference of the first
// pair of differing bytes, or zero if the strings are equal.
func StrCmp(a, b []byte) int {
	for i := 0; ; i++ {
		c1, c2 := at(a, i), at(b, i)
		if res := int(c1) - int(c2); c1 == 0 || res != 0 {
			return res
		}
	}
}

func at(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}
