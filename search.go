package cstr

import "bytes"

// End marks "to the end of the value" for the start/end bounds accepted by
// the search family.
const End = Open

// window is the normalized [start, end) search region plus pattern bytes
// shared by the whole search family. Bounds are already clamped into
// [0, Len()].
type window struct {
	start, end int
	needle     []byte
}

// window builds a search window from user-supplied bounds (which may be
// negative, meaning from the end) and a string-like pattern.
func (v *Value) window(sub any, start, end int) (window, error) {
	needle, err := byteSource(sub)
	if err != nil {
		return window{}, err
	}
	n := v.Len()
	return window{
		start:  fixIndex(start, n),
		end:    fixIndex(end, n),
		needle: needle,
	}, nil
}

// findForward returns the offset of the first occurrence of w.needle whose
// span lies inside the window, or -1. The empty needle matches at the
// window start.
func (v *Value) findForward(w window) int {
	nl := len(w.needle)
	if nl == 0 {
		if w.start > w.end {
			return -1
		}
		return w.start
	}
	data := v.data()
	for i := w.start; i+nl <= w.end; i++ {
		if data[i] == w.needle[0] && bytes.Equal(data[i:i+nl], w.needle) {
			return i
		}
	}
	return -1
}

// findBackward returns the offset of the last occurrence of w.needle whose
// span lies inside the window, or -1. It scans backward for the needle's
// first byte and verifies the full match at each candidate.
func (v *Value) findBackward(w window) int {
	nl := len(w.needle)
	if nl == 0 {
		if w.start > w.end {
			return -1
		}
		return w.end
	}
	data := v.data()
	for i := w.end - nl; i >= w.start; i-- {
		if data[i] == w.needle[0] && bytes.Equal(data[i:i+nl], w.needle) {
			return i
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of sub within
// [start, end). Each match advances the cursor by the needle length. The
// empty needle counts one match per window position plus one.
func (v *Value) Count(sub any, start, end int) (int, error) {
	w, err := v.window(sub, start, end)
	if err != nil {
		return 0, err
	}
	nl := len(w.needle)
	if nl == 0 {
		if w.start > w.end {
			return 0, nil
		}
		return w.end - w.start + 1, nil
	}
	count := 0
	for cur := w.start; cur <= w.end; {
		p := v.findForward(window{start: cur, end: w.end, needle: w.needle})
		if p < 0 {
			break
		}
		count++
		cur = p + nl
	}
	return count, nil
}

// Find returns the offset of the first occurrence of sub within
// [start, end), or -1 if absent. A match whose end would exceed the window
// does not count.
func (v *Value) Find(sub any, start, end int) (int, error) {
	w, err := v.window(sub, start, end)
	if err != nil {
		return -1, err
	}
	return v.findForward(w), nil
}

// Index is Find with ErrNotFound instead of the -1 sentinel.
func (v *Value) Index(sub any, start, end int) (int, error) {
	p, err := v.Find(sub, start, end)
	if err != nil {
		return 0, err
	}
	if p < 0 {
		return 0, ErrNotFound
	}
	return p, nil
}

// RFind returns the offset of the last occurrence of sub within
// [start, end), or -1 if absent.
func (v *Value) RFind(sub any, start, end int) (int, error) {
	w, err := v.window(sub, start, end)
	if err != nil {
		return -1, err
	}
	return v.findBackward(w), nil
}

// RIndex is RFind with ErrNotFound instead of the -1 sentinel.
func (v *Value) RIndex(sub any, start, end int) (int, error) {
	p, err := v.RFind(sub, start, end)
	if err != nil {
		return 0, err
	}
	if p < 0 {
		return 0, ErrNotFound
	}
	return p, nil
}

// StartsWith reports whether the window begins with sub. The comparison is
// a raw byte compare over the explicit needle length, so embedded zero
// bytes are handled exactly.
func (v *Value) StartsWith(sub any, start, end int) (bool, error) {
	w, err := v.window(sub, start, end)
	if err != nil {
		return false, err
	}
	nl := len(w.needle)
	if w.end-w.start < nl {
		return false, nil
	}
	return bytes.Equal(v.data()[w.start:w.start+nl], w.needle), nil
}

// EndsWith reports whether the window ends with sub.
func (v *Value) EndsWith(sub any, start, end int) (bool, error) {
	w, err := v.window(sub, start, end)
	if err != nil {
		return false, err
	}
	nl := len(w.needle)
	if w.end-w.start < nl {
		return false, nil
	}
	return bytes.Equal(v.data()[w.end-nl:w.end], w.needle), nil
}

// Contains reports whether sub occurs anywhere in the value.
func (v *Value) Contains(sub any) (bool, error) {
	p, err := v.Find(sub, 0, End)
	if err != nil {
		return false, err
	}
	return p >= 0, nil
}
