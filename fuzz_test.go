package cstr

import (
	"strings"
	"testing"
)

// FuzzSplitJoinRoundTrip checks that an explicit-separator split followed
// by a join with the same separator reconstructs the original value.
func FuzzSplitJoinRoundTrip(f *testing.F) {
	f.Add("a,,b", ",")
	f.Add("a,b,c", ",")
	f.Add("", ",")
	f.Add("::a::::b::", "::")
	f.Add("no match", "|")
	f.Add("a\x00b", "\x00")

	f.Fuzz(func(t *testing.T, input, sep string) {
		if len(sep) == 0 {
			return
		}
		v := FromString(input)
		fields, err := v.Split(sep, -1)
		if err != nil {
			t.Fatalf("Split error: %v", err)
		}
		back := FromString(sep).JoinValues(fields...)
		if !back.Equal(v) {
			t.Errorf("round trip of %q with %q produced %q", input, sep, back.String())
		}
	})
}

// FuzzFindMatchesStdlib cross-checks the window-free forward search
// against the standard library.
func FuzzFindMatchesStdlib(f *testing.F) {
	f.Add("abcabc", "bc")
	f.Add("hello", "")
	f.Add("", "x")
	f.Add("aaaa", "aa")
	f.Add("a\x00b", "\x00")

	f.Fuzz(func(t *testing.T, haystack, needle string) {
		v := FromString(haystack)
		got, err := v.Find(needle, 0, End)
		if err != nil {
			t.Fatalf("Find error: %v", err)
		}
		want := strings.Index(haystack, needle)
		if got != want {
			t.Errorf("Find(%q, %q) = %d, stdlib says %d", haystack, needle, got, want)
		}
	})
}

// FuzzSliceStepReverse checks that a full reverse slice is an involution.
func FuzzSliceStepReverse(f *testing.F) {
	f.Add("hello")
	f.Add("")
	f.Add("a")
	f.Add("ab\x00cd")

	f.Fuzz(func(t *testing.T, s string) {
		v := FromString(s)
		r, err := v.SliceStep(Open, Open, -1)
		if err != nil {
			t.Fatalf("SliceStep error: %v", err)
		}
		rr, err := r.SliceStep(Open, Open, -1)
		if err != nil {
			t.Fatalf("SliceStep error: %v", err)
		}
		if !rr.Equal(v) {
			t.Errorf("double reverse of %q produced %q", s, rr.String())
		}
	})
}
