package cstr

import "bytes"

// Compare returns -1, 0 or 1 ordering v against other lexicographically.
// The comparison is bounded by length, so embedded zero bytes participate
// like any other byte.
func (v *Value) Compare(other *Value) int {
	return bytes.Compare(v.data(), other.data())
}

// Equal reports whether v and other hold identical bytes.
func (v *Value) Equal(other *Value) bool {
	return bytes.Equal(v.data(), other.data())
}

// Less reports whether v orders before other.
func (v *Value) Less(other *Value) bool {
	return v.Compare(other) < 0
}
