package cstr

// Builder is the single-owner handle for in-place string accumulation.
// It holds exclusive ownership of its accumulator until Value is called;
// at that point the accumulator becomes a shared immutable Value and the
// Builder is sealed. Appending through a sealed Builder is a caller
// contract violation and panics.
//
// Each append reallocates to the exact new size. Repeated appends are
// therefore O(n^2) overall; the trade-off (simplicity over amortized
// growth) is deliberate.
//
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	v      *Value
	sealed bool
}

func (b *Builder) grow(add []byte) {
	if b.sealed {
		panic("cstr: Append on a Builder whose value has been shared")
	}
	if b.v == nil {
		// Building from empty: a private copy of the addition, never a
		// shared reference, so later appends stay exclusively owned.
		b.v = newValue(add)
		return
	}
	old := b.v.Len()
	buf := make([]byte, old+len(add)+1)
	copy(buf, b.v.data())
	copy(buf[old:], add)
	b.v.buf = buf
	b.v.hash.Store(hashUnset)
}

// Append appends the bytes of v to the accumulator.
func (b *Builder) Append(v *Value) {
	b.grow(v.data())
}

// AppendString appends the bytes of s to the accumulator.
func (b *Builder) AppendString(s string) {
	b.grow([]byte(s))
}

// AppendBytes appends raw bytes to the accumulator.
func (b *Builder) AppendBytes(p []byte) {
	b.grow(p)
}

// Len returns the accumulated byte length.
func (b *Builder) Len() int {
	if b.v == nil {
		return 0
	}
	return b.v.Len()
}

// Value seals the Builder and returns the accumulator as a shared Value.
// A Builder that never accumulated anything yields the empty singleton.
func (b *Builder) Value() *Value {
	b.sealed = true
	if b.v == nil {
		return emptyValue
	}
	return b.v
}
