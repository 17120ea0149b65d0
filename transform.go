package cstr

import (
	"strings"

	"github.com/dshills/cstr/internal/ascii"
)

func (v *Value) mapBytes(f func(byte) byte) *Value {
	n := v.Len()
	if n == 0 {
		return emptyValue
	}
	buf := make([]byte, n+1)
	for i := 0; i < n; i++ {
		buf[i] = f(v.buf[i])
	}
	return takeBuf(buf)
}

// Lower returns a copy with ASCII uppercase letters mapped to lowercase.
func (v *Value) Lower() *Value {
	return v.mapBytes(ascii.ToLower)
}

// Upper returns a copy with ASCII lowercase letters mapped to uppercase.
func (v *Value) Upper() *Value {
	return v.mapBytes(ascii.ToUpper)
}

// SwapCase returns a copy with the case of every ASCII letter flipped.
func (v *Value) SwapCase() *Value {
	return v.mapBytes(func(c byte) byte {
		if ascii.IsLower(c) {
			return ascii.ToUpper(c)
		}
		if ascii.IsUpper(c) {
			return ascii.ToLower(c)
		}
		return c
	})
}

// every reports whether the value is non-empty and every byte satisfies
// pred. The empty value always reports false.
func (v *Value) every(pred func(byte) bool) bool {
	data := v.data()
	if len(data) == 0 {
		return false
	}
	for _, c := range data {
		if !pred(c) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether the value is non-empty and every byte is an
// ASCII letter or digit.
func (v *Value) IsAlnum() bool { return v.every(ascii.IsAlnum) }

// IsAlpha reports whether the value is non-empty and every byte is an
// ASCII letter.
func (v *Value) IsAlpha() bool { return v.every(ascii.IsAlpha) }

// IsDigit reports whether the value is non-empty and every byte is an
// ASCII digit.
func (v *Value) IsDigit() bool { return v.every(ascii.IsDigit) }

// IsSpace reports whether the value is non-empty and every byte is ASCII
// whitespace.
func (v *Value) IsSpace() bool { return v.every(ascii.IsSpace) }

// IsPrintable reports whether the value is non-empty and every byte is
// printable ASCII.
func (v *Value) IsPrintable() bool { return v.every(ascii.IsPrint) }

// caseUniform reports whether the value contains at least one ASCII letter
// and every letter satisfies is. Non-alphabetic bytes are ignored.
func (v *Value) caseUniform(is func(byte) bool) bool {
	seen := false
	for _, c := range v.data() {
		if !ascii.IsAlpha(c) {
			continue
		}
		if !is(c) {
			return false
		}
		seen = true
	}
	return seen
}

// IsLower reports whether the value has at least one ASCII letter and no
// uppercase letters.
func (v *Value) IsLower() bool { return v.caseUniform(ascii.IsLower) }

// IsUpper reports whether the value has at least one ASCII letter and no
// lowercase letters.
func (v *Value) IsUpper() bool { return v.caseUniform(ascii.IsUpper) }

// Strip trims whitespace from both ends.
func (v *Value) Strip() *Value { return v.StripChars(ascii.Whitespace) }

// LStrip trims whitespace from the left end.
func (v *Value) LStrip() *Value { return v.LStripChars(ascii.Whitespace) }

// RStrip trims whitespace from the right end.
func (v *Value) RStrip() *Value { return v.RStripChars(ascii.Whitespace) }

// StripChars trims bytes belonging to cutset from both ends.
func (v *Value) StripChars(cutset string) *Value {
	data := v.data()
	start, end := 0, len(data)
	for start < end && strings.IndexByte(cutset, data[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(cutset, data[end-1]) >= 0 {
		end--
	}
	return FromBytes(data[start:end])
}

// LStripChars trims bytes belonging to cutset from the left end.
func (v *Value) LStripChars(cutset string) *Value {
	data := v.data()
	start := 0
	for start < len(data) && strings.IndexByte(cutset, data[start]) >= 0 {
		start++
	}
	return FromBytes(data[start:])
}

// RStripChars trims bytes belonging to cutset from the right end.
func (v *Value) RStripChars(cutset string) *Value {
	data := v.data()
	end := len(data)
	for end > 0 && strings.IndexByte(cutset, data[end-1]) >= 0 {
		end--
	}
	return FromBytes(data[:end])
}
