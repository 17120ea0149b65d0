package cstr

import (
	"iter"

	"github.com/pkg/errors"
)

// Join folds the elements of seq into one value, with v as the separator
// between consecutive elements. Every element must be a *Value; anything
// else is a type error naming the offending type. The fold uses the
// Builder append fast path: the accumulator is created on the first
// element and exclusively owned throughout.
//
// An empty sequence yields the empty singleton.
func (v *Value) Join(seq iter.Seq[any]) (*Value, error) {
	var b Builder
	first := true
	for elem := range seq {
		ev, ok := elem.(*Value)
		if !ok {
			return nil, errors.Wrapf(ErrBadArgumentType, "join element %T", elem)
		}
		if !first {
			b.Append(v)
		}
		b.Append(ev)
		first = false
	}
	return b.Value(), nil
}

// JoinValues joins already-typed values; it cannot fail.
func (v *Value) JoinValues(elems ...*Value) *Value {
	var b Builder
	for i, ev := range elems {
		if i > 0 {
			b.Append(v)
		}
		b.Append(ev)
	}
	return b.Value()
}
