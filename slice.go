package cstr

import (
	"math"

	"github.com/pkg/errors"
)

// Open marks an omitted slice bound. With a positive step it resolves to
// the start or end of the value; with a negative step, to the end or start.
const Open = math.MaxInt

// fixIndex normalizes a possibly negative index and clamps it into
// [0, n]. Used for search windows and slice bounds.
func fixIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}

// At returns the single byte at index i as a new length-1 Value. Negative
// indices count from the end. Out-of-range indices after normalization
// yield ErrIndexOutOfRange.
func (v *Value) At(i int) (*Value, error) {
	n := v.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, n)
	}
	return newValue(v.buf[idx : idx+1]), nil
}

// ByteAt returns the byte at offset i. Returns 0 and false if i is out of
// range; negative offsets are not accepted here.
func (v *Value) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	return v.buf[i], true
}

// Slice returns the substring [start, stop) with step 1. Bounds may be
// negative (counted from the end) and are clamped; Open means "to the end".
func (v *Value) Slice(start, stop int) *Value {
	n := v.Len()
	start = fixIndex(start, n)
	stop = fixIndex(stop, n)
	if start >= stop {
		return emptyValue
	}
	return FromBytes(v.data()[start:stop])
}

// SliceStep returns the strided substring [start, stop, step]. Bounds
// follow standard slice-index adjustment: negatives count from the end,
// out-of-range values clamp, Open selects the default bound for the step
// direction. A negative step walks backward (so SliceStep(Open, Open, -1)
// reverses the value). A zero step yields ErrZeroStep.
func (v *Value) SliceStep(start, stop, step int) (*Value, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	n := v.Len()

	if start == Open {
		if step > 0 {
			start = 0
		} else {
			start = n - 1
		}
	} else if start < 0 {
		start += n
		if start < 0 {
			if step < 0 {
				start = -1
			} else {
				start = 0
			}
		}
	} else if start >= n {
		if step < 0 {
			start = n - 1
		} else {
			start = n
		}
	}

	if stop == Open {
		if step > 0 {
			stop = n
		} else {
			stop = -1
		}
	} else if stop < 0 {
		stop += n
		if stop < 0 {
			if step < 0 {
				stop = -1
			} else {
				stop = 0
			}
		}
	} else if stop >= n {
		if step < 0 {
			stop = n - 1
		} else {
			stop = n
		}
	}

	var count int
	if step > 0 {
		if start < stop {
			count = (stop-start-1)/step + 1
		}
	} else {
		if stop < start {
			count = (start-stop-1)/(-step) + 1
		}
	}
	if count <= 0 {
		return emptyValue, nil
	}

	buf := make([]byte, count+1)
	src := start
	for i := 0; i < count; i++ {
		buf[i] = v.buf[src]
		src += step
	}
	return takeBuf(buf), nil
}

// Concat returns a new Value holding v followed by other. The result never
// aliases either operand's buffer.
func (v *Value) Concat(other *Value) *Value {
	buf := make([]byte, v.Len()+other.Len()+1)
	copy(buf, v.data())
	copy(buf[v.Len():], other.data())
	return takeBuf(buf)
}

// Repeat returns v tiled count times. Non-positive counts yield the empty
// singleton.
func (v *Value) Repeat(count int) *Value {
	n := v.Len()
	if count <= 0 || n == 0 {
		return emptyValue
	}
	buf := make([]byte, n*count+1)
	for i := 0; i < n*count; i += n {
		copy(buf[i:], v.data())
	}
	return takeBuf(buf)
}
