package cstr

import (
	"errors"
	"testing"
)

func joined(fields []*Value) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}

func equalFields(got []*Value, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].String() != want[i] {
			return false
		}
	}
	return true
}

func TestSplitWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxsplit int
		want     []string
	}{
		{"runs merge", "  a   b  ", -1, []string{"a", "b"}},
		{"no separators", "abc", -1, []string{"abc"}},
		{"empty input", "", -1, nil},
		{"all whitespace", " \t\n ", -1, nil},
		{"mixed whitespace", "a\tb\nc\vd\fe\rf", -1, []string{"a", "b", "c", "d", "e", "f"}},
		{"maxsplit dumps remainder", "a b c d", 1, []string{"a", "b c d"}},
		{"maxsplit remainder keeps tail spaces", "a b  c  ", 1, []string{"a", "b  c  "}},
		{"maxsplit zero", " a b", 0, []string{"a b"}},
		{"maxsplit beyond fields", "a b", 10, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := FromString(tt.input).Split(nil, tt.maxsplit)
			if err != nil {
				t.Fatalf("Split error: %v", err)
			}
			if !equalFields(fields, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.input, joined(fields), tt.want)
			}
		})
	}
}

func TestSplitLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		maxsplit int
		want     []string
	}{
		{"basic", "a,b,c", ",", -1, []string{"a", "b", "c"}},
		{"adjacent seps keep empties", "a,,b", ",", -1, []string{"a", "", "b"}},
		{"leading sep", ",a", ",", -1, []string{"", "a"}},
		{"trailing sep keeps empty tail", "a,", ",", -1, []string{"a", ""}},
		{"no occurrence", "abc", ",", -1, []string{"abc"}},
		{"empty input one field", "", ",", -1, []string{""}},
		{"multibyte sep", "a::b::c", "::", -1, []string{"a", "b", "c"}},
		{"maxsplit limits points", "a,b,c,d", ",", 2, []string{"a", "b", "c,d"}},
		{"maxsplit zero", "a,b", ",", 0, []string{"a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := FromString(tt.input).Split(tt.sep, tt.maxsplit)
			if err != nil {
				t.Fatalf("Split error: %v", err)
			}
			if !equalFields(fields, tt.want) {
				t.Errorf("Split(%q, %q) = %q, want %q",
					tt.input, tt.sep, joined(fields), tt.want)
			}
		})
	}
}

func TestSplitEmptySeparator(t *testing.T) {
	if _, err := FromString("abc").Split("", -1); !errors.Is(err, ErrEmptySeparator) {
		t.Errorf("Split with empty separator: %v, want ErrEmptySeparator", err)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{"a,,b", "a,b,c", ",", "", "no separators here", ",,,"}
	sep := FromString(",")

	for _, input := range inputs {
		fields, err := FromString(input).Split(",", -1)
		if err != nil {
			t.Fatalf("Split error: %v", err)
		}
		back := sep.JoinValues(fields...)
		if back.String() != input {
			t.Errorf("split/join round trip of %q produced %q", input, back.String())
		}
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		sep     string
		b, m, a string
	}{
		{"found", "key=value", "=", "key", "=", "value"},
		{"first occurrence", "a=b=c", "=", "a", "=", "b=c"},
		{"at start", "=x", "=", "", "=", "x"},
		{"at end", "x=", "=", "x", "=", ""},
		{"multibyte", "a::b", "::", "a", "::", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, match, after, err := FromString(tt.input).Partition(tt.sep)
			if err != nil {
				t.Fatalf("Partition error: %v", err)
			}
			if before.String() != tt.b || match.String() != tt.m || after.String() != tt.a {
				t.Errorf("Partition(%q, %q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.input, tt.sep,
					before.String(), match.String(), after.String(),
					tt.b, tt.m, tt.a)
			}
		})
	}
}

func TestPartitionNoMatch(t *testing.T) {
	v := FromString("abc")
	before, match, after, err := v.Partition("=")
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}
	if before != v {
		t.Error("unmatched Partition should share the original, not copy it")
	}
	if match != Empty() || after != Empty() {
		t.Error("unmatched Partition should return empty singletons")
	}
}

func TestRPartition(t *testing.T) {
	before, match, after, err := FromString("a=b=c").RPartition("=")
	if err != nil {
		t.Fatalf("RPartition error: %v", err)
	}
	if before.String() != "a=b" || match.String() != "=" || after.String() != "c" {
		t.Errorf("RPartition = (%q, %q, %q), want (\"a=b\", \"=\", \"c\")",
			before.String(), match.String(), after.String())
	}
}

func TestRPartitionNoMatch(t *testing.T) {
	v := FromString("abc")
	before, match, after, err := v.RPartition("=")
	if err != nil {
		t.Fatalf("RPartition error: %v", err)
	}
	if before != Empty() || match != Empty() {
		t.Error("unmatched RPartition should return empty singletons first")
	}
	if after != v {
		t.Error("unmatched RPartition should share the original in the last slot")
	}
}

func TestPartitionEmptySeparator(t *testing.T) {
	if _, _, _, err := FromString("abc").Partition(""); !errors.Is(err, ErrEmptySeparator) {
		t.Errorf("Partition empty separator: %v, want ErrEmptySeparator", err)
	}
	if _, _, _, err := FromString("abc").RPartition(""); !errors.Is(err, ErrEmptySeparator) {
		t.Errorf("RPartition empty separator: %v, want ErrEmptySeparator", err)
	}
}
