package buffer

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// widthCond is a pinned width condition so line metrics do not change with
// the user's locale.
var widthCond = &runewidth.Condition{}

// Line is one line of buffer text together with its cached metrics:
// Size is the number of grapheme clusters, Width the number of display
// columns the text occupies. Both always match the text's grapheme
// decomposition. All byte offsets passed to Line operations must sit on
// grapheme cluster boundaries.
type Line struct {
	Text  string
	Size  int
	Width int
}

func NewLine() *Line {
	return &Line{}
}

func LineFrom(s string) *Line {
	size, width := textMetrics(s)
	return &Line{Text: s, Size: size, Width: width}
}

// ColumnIndex describes one grapheme cluster of a line: where it starts in
// bytes, how many display columns it covers, the first column it occupies,
// its grapheme index, and the cluster text itself.
type ColumnIndex struct {
	Byte     int
	Width    int
	Column   int
	Index    int
	Grapheme string
}

// ColumnIter walks a line's grapheme clusters left to right, yielding a
// ColumnIndex per cluster. Obtain a fresh iterator from Line.ColumnIndices
// to restart.
type ColumnIter struct {
	rest   string
	state  int
	byte   int
	column int
	index  int
}

func (l *Line) ColumnIndices() *ColumnIter {
	return &ColumnIter{rest: l.Text, state: -1}
}

func (it *ColumnIter) Next() (ColumnIndex, bool) {
	if it.rest == "" {
		return ColumnIndex{}, false
	}
	cluster, rest, _, state := uniseg.StepString(it.rest, it.state)
	ci := ColumnIndex{
		Byte:     it.byte,
		Width:    graphemeWidth(cluster),
		Column:   it.column,
		Index:    it.index,
		Grapheme: cluster,
	}
	it.rest, it.state = rest, state
	it.byte += len(cluster)
	it.column += ci.Width
	it.index++
	return ci, true
}

func graphemeWidth(g string) int {
	return widthCond.StringWidth(g)
}

func textMetrics(s string) (size, width int) {
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.StepString(s, state)
		size++
		width += graphemeWidth(cluster)
	}
	return size, width
}

// widthDefined reports whether r has a defined display width. Control
// characters have none and are never inserted; width-zero combining
// characters are accepted and counted as a grapheme of their own.
func widthDefined(r rune) bool {
	return !unicode.IsControl(r)
}

// Insert places a single character at byte offset at. Characters with an
// undefined width are skipped. A width-zero combining character counts as a
// grapheme of its own here, even though resegmenting the text would merge
// it into the preceding cluster, so after such an insert Size can exceed a
// fresh decomposition's count; a Delete at the same offset removes exactly
// the inserted bytes either way.
func (l *Line) Insert(ch rune, at int) {
	if !widthDefined(ch) {
		return
	}
	s := string(ch)
	l.Text = l.Text[:at] + s + l.Text[at:]
	l.Size++
	l.Width += graphemeWidth(s)
}

// InsertText places a string at byte offset at, adjusting the metrics by
// the text's grapheme count and display width.
func (l *Line) InsertText(s string, at int) {
	l.Text = l.Text[:at] + s + l.Text[at:]
	size, width := textMetrics(s)
	l.Size += size
	l.Width += width
}

// Delete removes the byte range [start, end) and returns the removed text.
func (l *Line) Delete(start, end int) string {
	s := l.Text[start:end]
	l.Text = l.Text[:start] + l.Text[end:]
	size, width := textMetrics(s)
	l.Size -= size
	l.Width -= width
	return s
}

// Clear empties the line and returns its previous text.
func (l *Line) Clear() string {
	s := l.Text
	l.Text = ""
	l.Size = 0
	l.Width = 0
	return s
}

// Split truncates the line to [0, at) and returns a new Line holding the
// tail. Used when a line break is inserted.
func (l *Line) Split(at int) *Line {
	tail := LineFrom(l.Text[at:])
	l.Text = l.Text[:at]
	l.Size -= tail.Size
	l.Width -= tail.Width
	return tail
}

// Concat appends another line's text and merges its metrics. Used to join
// lines on forward-delete at line end.
func (l *Line) Concat(other *Line) {
	l.Text += other.Text
	l.Size += other.Size
	l.Width += other.Width
}

func (l *Line) ConcatText(s string) {
	l.Text += s
	size, width := textMetrics(s)
	l.Size += size
	l.Width += width
}

// Replace deletes [start, end) and inserts ch at start, returning the prior
// content of the range.
func (l *Line) Replace(ch rune, start, end int) string {
	s := l.Delete(start, end)
	l.Insert(ch, start)
	return s
}

// ReplaceText deletes [start, end) and inserts value at start, returning
// the prior content of the range.
func (l *Line) ReplaceText(value string, start, end int) string {
	s := l.Delete(start, end)
	l.InsertText(value, start)
	return s
}

// nextBoundary returns the byte offset of the grapheme boundary following
// at, or -1 when at is already at the end of text. at must itself be a
// boundary.
func nextBoundary(text string, at int) int {
	if at >= len(text) {
		return -1
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[at:], -1)
	return at + len(cluster)
}

// prevBoundary returns the byte offset of the grapheme boundary preceding
// at, or -1 when at is the start of text.
func prevBoundary(text string, at int) int {
	if at <= 0 {
		return -1
	}
	prev := 0
	state := -1
	var cluster string
	for s := text; s != ""; {
		cluster, s, _, state = uniseg.StepString(s, state)
		next := prev + len(cluster)
		if next >= at {
			break
		}
		prev = next
	}
	return prev
}
