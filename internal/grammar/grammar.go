// Package grammar holds character classes and escaping rules of the payload formats.
package grammar

const upperhex = "0123456789ABCDEF"

// IsURIComponentUnreserved reports whether c passes through URI component encoding untouched.
// The set matches ECMAScript encodeURIComponent: ALPHA / DIGIT / "-" / "_" / "." / "!" / "~" / "*" / "'" / "(" / ")".
func IsURIComponentUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// IsWiFiSpecial reports whether c must be backslash-escaped inside a WiFi QR field value.
func IsWiFiSpecial(c byte) bool {
	switch c {
	case '\\', ';', ',', ':', '"':
		return true
	}
	return false
}

// IsSMSSpecial reports whether c must be backslash-escaped inside an SMSTO field.
func IsSMSSpecial(c byte) bool { return c == '\\' || c == ':' }
