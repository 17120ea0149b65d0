package cstr

import (
	"math"

	"github.com/dshills/cstr/internal/ascii"
)

// Split divides the value into fields.
//
// With a nil separator it splits on runs of whitespace: consecutive
// separator bytes merge into one delimiter, leading and trailing runs are
// dropped, and no empty fields are produced. With an explicit string-like
// separator it splits on every exact non-overlapping occurrence, so
// adjacent occurrences produce empty fields and the final remainder (even
// if empty) is always appended.
//
// maxsplit limits the number of split points; once reached, the remainder
// becomes the final field. A negative maxsplit means no limit. An explicit
// empty separator yields ErrEmptySeparator.
func (v *Value) Split(sep any, maxsplit int) ([]*Value, error) {
	if sep == nil {
		return v.splitWhitespace(maxsplit), nil
	}
	pat, err := byteSource(sep)
	if err != nil {
		return nil, err
	}
	if len(pat) == 0 {
		return nil, ErrEmptySeparator
	}
	return v.splitLiteral(pat, maxsplit), nil
}

func (v *Value) splitWhitespace(maxsplit int) []*Value {
	if maxsplit < 0 {
		maxsplit = math.MaxInt
	}
	data := v.data()
	n := len(data)
	var fields []*Value

	i := 0
	for i < n && ascii.IsSpace(data[i]) {
		i++
	}
	for i < n {
		if len(fields) == maxsplit {
			// Remainder as one final field, leading separators already
			// consumed above.
			fields = append(fields, FromBytes(data[i:]))
			return fields
		}
		j := i
		for j < n && !ascii.IsSpace(data[j]) {
			j++
		}
		fields = append(fields, FromBytes(data[i:j]))
		i = j
		for i < n && ascii.IsSpace(data[i]) {
			i++
		}
	}
	return fields
}

func (v *Value) splitLiteral(pat []byte, maxsplit int) []*Value {
	if maxsplit < 0 {
		maxsplit = math.MaxInt
	}
	data := v.data()
	n := len(data)
	var fields []*Value

	s := 0
	for len(fields) < maxsplit {
		p := v.findForward(window{start: s, end: n, needle: pat})
		if p < 0 {
			break
		}
		fields = append(fields, FromBytes(data[s:p]))
		s = p + len(pat)
	}
	return append(fields, FromBytes(data[s:]))
}

// Partition locates the first occurrence of sep and returns the triple
// (before, matched separator, after). When sep does not occur, the result
// is (v, empty, empty); the unmatched original is returned as a shared
// reference, not a copy.
func (v *Value) Partition(sep any) (before, match, after *Value, err error) {
	pat, perr := byteSource(sep)
	if perr != nil {
		return nil, nil, nil, perr
	}
	if len(pat) == 0 {
		return nil, nil, nil, ErrEmptySeparator
	}
	p := v.findForward(window{start: 0, end: v.Len(), needle: pat})
	if p < 0 {
		return v, emptyValue, emptyValue, nil
	}
	data := v.data()
	return FromBytes(data[:p]),
		FromBytes(data[p : p+len(pat)]),
		FromBytes(data[p+len(pat):]),
		nil
}

// RPartition locates the last occurrence of sep and returns the triple
// (before, matched separator, after). When sep does not occur, the result
// is (empty, empty, v), with the original shared rather than copied.
func (v *Value) RPartition(sep any) (before, match, after *Value, err error) {
	pat, perr := byteSource(sep)
	if perr != nil {
		return nil, nil, nil, perr
	}
	if len(pat) == 0 {
		return nil, nil, nil, ErrEmptySeparator
	}
	p := v.findBackward(window{start: 0, end: v.Len(), needle: pat})
	if p < 0 {
		return emptyValue, emptyValue, v, nil
	}
	data := v.data()
	return FromBytes(data[:p]),
		FromBytes(data[p : p+len(pat)]),
		FromBytes(data[p+len(pat):]),
		nil
}
