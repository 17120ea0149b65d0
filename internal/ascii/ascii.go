// Package ascii provides byte-level character classification and case
// mapping. All predicates are ASCII-semantic: bytes above 0x7f are never
// alphabetic, printable or whitespace.
package ascii

// Whitespace is the default separator/trim set: space, tab, newline,
// vertical tab, form feed and carriage return.
const Whitespace = " \t\n\v\f\r"

// IsSpace reports whether c is an ASCII whitespace byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return IsUpper(c) || IsLower(c)
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsPrint reports whether c is a printable ASCII byte, including space.
func IsPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// ToLower maps an uppercase ASCII letter to lowercase; other bytes pass
// through unchanged.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpper maps a lowercase ASCII letter to uppercase; other bytes pass
// through unchanged.
func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}
