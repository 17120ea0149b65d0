// Package cstr provides a compact, byte-oriented string value type with the
// method surface of a conventional text type: comparison, hashing, slicing,
// searching, splitting, case conversion, trimming and concatenation.
//
// A Value is immutable once shared. Its buffer carries a trailing zero byte
// for interoperability with C-style consumers; the terminator is a layout
// invariant only — every algorithm is bounded by the explicit length, so
// values may contain embedded zero bytes.
//
// The one mutating operation is the in-place append fast path, which is
// restricted to the Builder type. A Builder exclusively owns its accumulator
// until Value is called; after that the accumulator is shared and further
// appends panic. This makes the single-owner rule a property of the API
// rather than a runtime reference count:
//
//	var b cstr.Builder
//	b.Append(cstr.FromString("hello"))
//	b.AppendString(", world")
//	v := b.Value() // sealed; b.Append would now panic
//
// Search, split and trim operations follow byte/ASCII semantics throughout.
// Negative indices count from the end, as do the start/end bounds accepted
// by the search family:
//
//	v := cstr.FromString("abcabc")
//	p, _ := v.RFind("bc", 0, cstr.End) // 4
//
// Zero-length construction returns a process-wide empty singleton; comparing
// against or slicing down to nothing never allocates.
//
// Thread safety: a shared *Value is safe for concurrent readers. A Builder
// is single-owner by design and must not be used from multiple goroutines.
package cstr
