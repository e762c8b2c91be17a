package buffer

import "testing"

func TestLineFromMetrics(t *testing.T) {
	cases := []struct {
		text  string
		size  int
		width int
	}{
		{"", 0, 0},
		{"hello", 5, 5},
		{"héllo", 5, 5},      // precomposed é
		{"é", 1, 1},         // combining acute: one grapheme, one column
		{"日本", 2, 4},    // CJK: two graphemes, four columns
		{"a日b", 3, 4},        // mixed narrow and wide
	}
	for _, c := range cases {
		l := LineFrom(c.text)
		if l.Size != c.size || l.Width != c.width {
			t.Fatalf("LineFrom(%q): size=%d width=%d, want size=%d width=%d",
				c.text, l.Size, l.Width, c.size, c.width)
		}
	}
}

func TestColumnIndices(t *testing.T) {
	l := LineFrom("hé日o")
	want := []ColumnIndex{
		{Byte: 0, Width: 1, Column: 0, Index: 0, Grapheme: "h"},
		{Byte: 1, Width: 1, Column: 1, Index: 1, Grapheme: "é"},
		{Byte: 3, Width: 2, Column: 2, Index: 2, Grapheme: "日"},
		{Byte: 6, Width: 1, Column: 4, Index: 3, Grapheme: "o"},
	}
	it := l.ColumnIndices()
	for i, w := range want {
		ci, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted at %d", i)
		}
		if ci != w {
			t.Fatalf("descriptor %d = %+v, want %+v", i, ci, w)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("iterator not exhausted after %d descriptors", len(want))
	}

	// A fresh iterator restarts from the first grapheme.
	ci, ok := l.ColumnIndices().Next()
	if !ok || ci != want[0] {
		t.Fatalf("restarted iterator = %+v, want %+v", ci, want[0])
	}
}

func TestLineInsertAdjustsMetrics(t *testing.T) {
	l := LineFrom("ab")
	l.Insert('日', 1)
	if l.Text != "a日b" || l.Size != 3 || l.Width != 4 {
		t.Fatalf("after insert: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
}

func TestLineInsertSkipsControlCharacters(t *testing.T) {
	l := LineFrom("ab")
	l.Insert('\x07', 1)
	if l.Text != "ab" || l.Size != 2 || l.Width != 2 {
		t.Fatalf("control insert mutated line: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
}

func TestLineInsertCombiningCountsOwnGrapheme(t *testing.T) {
	l := LineFrom("e")
	l.Insert('́', 1)
	if l.Text != "é" || l.Size != 2 || l.Width != 1 {
		t.Fatalf("after combining insert: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
	// A fresh decomposition of the same text merges the pair into one
	// cluster; the cached Size tracks inserts, not a recount.
	if fresh := LineFrom("é"); fresh.Size != 1 {
		t.Fatalf("fresh decomposition: size=%d, want 1", fresh.Size)
	}
}

func TestLineDeleteReturnsRemoved(t *testing.T) {
	l := LineFrom("héllo")
	got := l.Delete(1, 3)
	if got != "é" {
		t.Fatalf("deleted %q, want é", got)
	}
	if l.Text != "hllo" || l.Size != 4 || l.Width != 4 {
		t.Fatalf("after delete: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
}

func TestLineSplitConcatRoundTrip(t *testing.T) {
	l := LineFrom("ab日cd")
	tail := l.Split(2)
	if l.Text != "ab" || l.Size != 2 || l.Width != 2 {
		t.Fatalf("head after split: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
	if tail.Text != "日cd" || tail.Size != 3 || tail.Width != 4 {
		t.Fatalf("tail after split: %q size=%d width=%d", tail.Text, tail.Size, tail.Width)
	}

	l.Concat(tail)
	if l.Text != "ab日cd" || l.Size != 5 || l.Width != 6 {
		t.Fatalf("after concat: %q size=%d width=%d", l.Text, l.Size, l.Width)
	}
}

func TestLineReplaceReturnsPrevious(t *testing.T) {
	l := LineFrom("abc")
	prev := l.Replace('x', 1, 2)
	if prev != "b" || l.Text != "axc" {
		t.Fatalf("replace: prev=%q text=%q", prev, l.Text)
	}
	if l.Size != 3 || l.Width != 3 {
		t.Fatalf("metrics after replace: size=%d width=%d", l.Size, l.Width)
	}
}

func TestBoundaryLookup(t *testing.T) {
	text := "héllo"
	if got := nextBoundary(text, 0); got != 1 {
		t.Fatalf("nextBoundary(0) = %d, want 1", got)
	}
	if got := nextBoundary(text, 1); got != 3 {
		t.Fatalf("nextBoundary(1) = %d, want 3", got)
	}
	if got := nextBoundary(text, len(text)); got != -1 {
		t.Fatalf("nextBoundary(end) = %d, want -1", got)
	}
	if got := prevBoundary(text, 3); got != 1 {
		t.Fatalf("prevBoundary(3) = %d, want 1", got)
	}
	if got := prevBoundary(text, 1); got != 0 {
		t.Fatalf("prevBoundary(1) = %d, want 0", got)
	}
	if got := prevBoundary(text, 0); got != -1 {
		t.Fatalf("prevBoundary(0) = %d, want -1", got)
	}
}
