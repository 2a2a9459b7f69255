package grammar

// Escape percent-encodes every byte of s for which shouldEscape returns true.
// A nil shouldEscape escapes everything outside [IsURIComponentUnreserved].
// Multi-byte UTF-8 sequences are escaped byte by byte.
func Escape[T ~string | ~[]byte](s T, shouldEscape func(c byte) bool) T {
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsURIComponentUnreserved(c) }
	}

	var n int
	for i := range len(s) {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := range len(s) {
		c := s[i]
		if shouldEscape(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
		} else {
			buf = append(buf, c)
		}
	}
	return T(buf)
}

// BackslashEscape prefixes every byte of s for which isSpecial returns true with a backslash.
func BackslashEscape[T ~string | ~[]byte](s T, isSpecial func(c byte) bool) T {
	var n int
	for i := range len(s) {
		if isSpecial(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := range len(s) {
		if isSpecial(s[i]) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return T(buf)
}
