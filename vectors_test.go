package cstr

import (
	"os"
	"testing"

	"github.com/tidwall/gjson"
)

// The vector corpus exercises the search and split family against cases
// maintained in testdata/vectors.json.

func loadVectors(t *testing.T) gjson.Result {
	t.Helper()
	data, err := os.ReadFile("testdata/vectors.json")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatal("testdata/vectors.json is not valid JSON")
	}
	return gjson.ParseBytes(data)
}

func vectorBounds(c gjson.Result) (int, int) {
	start, end := 0, End
	if s := c.Get("start"); s.Exists() {
		start = int(s.Int())
	}
	if e := c.Get("end"); e.Exists() {
		end = int(e.Int())
	}
	return start, end
}

func TestFindVectors(t *testing.T) {
	vectors := loadVectors(t)

	vectors.Get("find").ForEach(func(_, c gjson.Result) bool {
		haystack := c.Get("haystack").String()
		needle := c.Get("needle").String()
		start, end := vectorBounds(c)
		want := int(c.Get("want").Int())

		got, err := FromString(haystack).Find(needle, start, end)
		if err != nil {
			t.Errorf("Find(%q, %q) error: %v", haystack, needle, err)
			return true
		}
		if got != want {
			t.Errorf("Find(%q, %q, %d, %d) = %d, want %d",
				haystack, needle, start, end, got, want)
		}
		return true
	})
}

func TestRFindVectors(t *testing.T) {
	vectors := loadVectors(t)

	vectors.Get("rfind").ForEach(func(_, c gjson.Result) bool {
		haystack := c.Get("haystack").String()
		needle := c.Get("needle").String()
		start, end := vectorBounds(c)
		want := int(c.Get("want").Int())

		got, err := FromString(haystack).RFind(needle, start, end)
		if err != nil {
			t.Errorf("RFind(%q, %q) error: %v", haystack, needle, err)
			return true
		}
		if got != want {
			t.Errorf("RFind(%q, %q, %d, %d) = %d, want %d",
				haystack, needle, start, end, got, want)
		}
		return true
	})
}

func TestCountVectors(t *testing.T) {
	vectors := loadVectors(t)

	vectors.Get("count").ForEach(func(_, c gjson.Result) bool {
		haystack := c.Get("haystack").String()
		needle := c.Get("needle").String()
		start, end := vectorBounds(c)
		want := int(c.Get("want").Int())

		got, err := FromString(haystack).Count(needle, start, end)
		if err != nil {
			t.Errorf("Count(%q, %q) error: %v", haystack, needle, err)
			return true
		}
		if got != want {
			t.Errorf("Count(%q, %q, %d, %d) = %d, want %d",
				haystack, needle, start, end, got, want)
		}
		return true
	})
}

func TestSplitVectors(t *testing.T) {
	vectors := loadVectors(t)

	vectors.Get("split").ForEach(func(_, c gjson.Result) bool {
		input := c.Get("input").String()

		var sep any
		if s := c.Get("sep"); s.Exists() {
			sep = s.String()
		}
		max := -1
		if m := c.Get("max"); m.Exists() {
			max = int(m.Int())
		}
		var want []string
		c.Get("want").ForEach(func(_, f gjson.Result) bool {
			want = append(want, f.String())
			return true
		})

		fields, err := FromString(input).Split(sep, max)
		if err != nil {
			t.Errorf("Split(%q) error: %v", input, err)
			return true
		}
		if !equalFields(fields, want) {
			t.Errorf("Split(%q, %v, %d) = %q, want %q",
				input, sep, max, joined(fields), want)
		}
		return true
	})
}
