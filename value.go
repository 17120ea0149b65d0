package cstr

import (
	"hash/fnv"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
)

// hashUnset is the sentinel cached-hash value meaning "not yet computed".
const hashUnset = -1

// Value is an immutable byte string. The buffer holds the data bytes plus a
// trailing zero terminator; Len never counts the terminator. All algorithms
// are bounded by the explicit length, so embedded zero bytes are preserved.
//
// Values are shared freely once constructed. The only mutation path is the
// Builder, which owns its accumulator exclusively until sealed.
type Value struct {
	buf  []byte       // data bytes plus trailing zero terminator
	hash atomic.Int64 // cached hash; hashUnset until first Hash call
}

// emptyValue is the process-wide empty string. Package initialization gives
// the single-initialization guarantee; the singleton is never torn down.
var emptyValue = newValue(nil)

// newValue copies b into a freshly terminated buffer.
func newValue(b []byte) *Value {
	v := &Value{buf: make([]byte, len(b)+1)}
	copy(v.buf, b)
	v.hash.Store(hashUnset)
	return v
}

// takeBuf wraps a freshly allocated buffer that already includes the
// terminator byte. The caller must not retain buf.
func takeBuf(buf []byte) *Value {
	v := &Value{buf: buf}
	v.hash.Store(hashUnset)
	return v
}

// data returns the byte content without the terminator. Callers must treat
// the slice as read-only.
func (v *Value) data() []byte {
	return v.buf[:len(v.buf)-1]
}

// Empty returns the shared empty value.
func Empty() *Value {
	return emptyValue
}

// FromString creates a Value from a string. Zero-length input returns the
// empty singleton.
func FromString(s string) *Value {
	if len(s) == 0 {
		return emptyValue
	}
	v := &Value{buf: make([]byte, len(s)+1)}
	copy(v.buf, s)
	v.hash.Store(hashUnset)
	return v
}

// FromBytes creates a Value by copying b. Zero-length input returns the
// empty singleton.
func FromBytes(b []byte) *Value {
	if len(b) == 0 {
		return emptyValue
	}
	return newValue(b)
}

// Byteser is implemented by buffer-like inputs that can expose their
// contents as a byte slice (bytes.Buffer, for example).
type Byteser interface {
	Bytes() []byte
}

// byteSource reads any accepted string-like argument as a byte slice.
// This is the single abstraction through which construction and the search
// family accept *Value, string, []byte and buffer-like inputs.
func byteSource(arg any) ([]byte, error) {
	switch s := arg.(type) {
	case *Value:
		return s.data(), nil
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	case Byteser:
		return s.Bytes(), nil
	}
	return nil, errors.Wrapf(ErrBadArgumentType, "%T", arg)
}

// New creates a Value from any string-like input. An existing *Value is
// returned as-is (construction is cheap for already-typed values); other
// inputs are copied. Unsupported types yield ErrBadArgumentType naming the
// offending type.
func New(arg any) (*Value, error) {
	if v, ok := arg.(*Value); ok {
		return v, nil
	}
	b, err := byteSource(arg)
	if err != nil {
		return nil, err
	}
	return FromBytes(b), nil
}

// Len returns the byte length, excluding the terminator.
func (v *Value) Len() int {
	return len(v.buf) - 1
}

// IsEmpty returns true if the value contains no bytes.
func (v *Value) IsEmpty() bool {
	return v.Len() == 0
}

// String returns the full content as a Go string.
func (v *Value) String() string {
	return string(v.data())
}

// Bytes returns a copy of the content. The copy keeps the underlying buffer
// immutable no matter what the caller does with the result.
func (v *Value) Bytes() []byte {
	c := make([]byte, v.Len())
	copy(c, v.data())
	return c
}

// GoString returns the quoted debug representation.
func (v *Value) GoString() string {
	return strconv.Quote(v.String())
}

// Hash returns the 64-bit FNV-1a hash of the full byte content. The result
// is computed lazily and cached; equal values hash equal. A computed hash
// that collides with the sentinel is remapped so the cache stays valid.
func (v *Value) Hash() int64 {
	if h := v.hash.Load(); h != hashUnset {
		return h
	}
	d := fnv.New64a()
	d.Write(v.data())
	h := int64(d.Sum64())
	if h == hashUnset {
		h = -2
	}
	v.hash.Store(h)
	return h
}
