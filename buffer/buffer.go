package buffer

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// LineEnding is the buffer-wide line terminator, fixed when the file is
// loaded.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

func (e LineEnding) Value() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

func (e LineEnding) String() string {
	if e == CRLF {
		return "CRLF"
	}
	return "LF"
}

// Buffer is an ordered, never-empty sequence of Lines plus the file
// metadata that belongs to it. It is the sole authority for applying an
// Edit and producing its inverse.
type Buffer struct {
	Path               string
	ReadOnly           bool
	Dirty              bool
	ExternallyModified bool // file changed on disk while the buffer was open

	lines    []*Line
	ending   LineEnding
	modified time.Time
}

func New(path string) *Buffer {
	return &Buffer{
		Path:     path,
		lines:    []*Line{NewLine()},
		ending:   LF,
		modified: time.Now(),
	}
}

// Load reads the file at path into a buffer. A missing file yields a fresh
// single-empty-line buffer, not an error. The line-ending style is detected
// from the first physical line and stripped from every line. When truncate
// is set an existing file is emptied before reading.
func Load(path string, readonly, truncate bool) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			b := New(path)
			b.ReadOnly = readonly
			return b, nil
		}
		return nil, err
	}

	if truncate {
		if err := os.Truncate(path, 0); err != nil {
			return nil, err
		}
		info, err = os.Stat(path)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	ending := LF
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		ending = CRLF
	}

	raw := strings.Split(content, "\n")
	// A trailing newline produces a final empty element, not a final line.
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]*Line, 0, len(raw))
	for _, s := range raw {
		lines = append(lines, LineFrom(strings.TrimSuffix(s, "\r")))
	}
	if len(lines) == 0 {
		lines = append(lines, NewLine())
	}

	writable := info.Mode().Perm()&0200 != 0

	return &Buffer{
		Path:     path,
		ReadOnly: readonly || !writable,
		lines:    lines,
		ending:   ending,
		modified: info.ModTime(),
	}, nil
}

func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Lines() []*Line {
	return b.lines
}

func (b *Buffer) Ending() LineEnding {
	return b.ending
}

func (b *Buffer) Modified() time.Time {
	return b.modified
}

// Content serializes the buffer with its fixed line ending.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i, line := range b.lines {
		sb.WriteString(line.Text)
		if i < len(b.lines)-1 {
			sb.WriteString(b.ending.Value())
		}
	}
	return sb.String()
}

// TextInRange serializes the bytes between two points without mutating the
// buffer, joining lines with the buffer's ending.
func (b *Buffer) TextInRange(l, r Point) string {
	var sb strings.Builder
	for y := l.Y; y <= r.Y; y++ {
		line := b.Line(y)
		if line == nil {
			break
		}
		from, to := 0, len(line.Text)
		if y == l.Y {
			from = l.X
		}
		if y == r.Y {
			to = r.X
		}
		sb.WriteString(line.Text[from:to])
		if y < r.Y {
			sb.WriteString(b.ending.Value())
		}
	}
	return sb.String()
}

// Execute applies edit and returns its inverse. ok is false when the edit
// had no effect; successful edits mark the buffer dirty.
func (b *Buffer) Execute(edit Edit) (inverse Edit, ok bool) {
	switch edit.Kind {
	case EditInsert:
		inverse, ok = b.execInsert(edit)
	case EditOverwrite:
		inverse, ok = b.execOverwrite(edit)
	case EditDelete:
		inverse, ok = b.execDelete(edit)
	case EditCut:
		inverse, ok = b.execCut(edit)
	case EditPaste:
		inverse, ok = b.execPaste(edit)
	case EditReplace:
		inverse, ok = b.execReplace(edit)
	default:
		panic(fmt.Sprintf("buffer: unknown edit kind %d", edit.Kind))
	}

	if ok {
		b.Dirty = true
	}
	if len(b.lines) == 0 {
		panic("buffer: line count dropped to zero")
	}
	return inverse, ok
}

func (b *Buffer) execInsert(edit Edit) (Edit, bool) {
	line := b.Line(edit.Pos.Y)
	if line == nil {
		return Edit{}, false
	}
	if edit.Ch == '\n' {
		head := edit.Pos.X
		tail := line.Split(head)
		b.insertLine(edit.Pos.Y+1, tail)
		// Undone by a forward delete at the end of the head, which joins
		// the two lines back together.
		return Delete(Point{X: head, Y: edit.Pos.Y}), true
	}
	if !widthDefined(edit.Ch) {
		return Edit{}, false
	}
	line.Insert(edit.Ch, edit.Pos.X)
	return Delete(edit.Pos), true
}

func (b *Buffer) execOverwrite(edit Edit) (Edit, bool) {
	line := b.Line(edit.Pos.Y)
	if line == nil {
		return Edit{}, false
	}
	if next := nextBoundary(line.Text, edit.Pos.X); next >= 0 {
		previous := line.Replace(edit.Ch, edit.Pos.X, next)
		r, _ := utf8.DecodeLastRuneInString(previous)
		return Overwrite(r, edit.Pos), true
	}
	// At line end an overwrite behaves as append.
	if !widthDefined(edit.Ch) {
		return Edit{}, false
	}
	line.Insert(edit.Ch, len(line.Text))
	return Delete(edit.Pos), true
}

func (b *Buffer) execDelete(edit Edit) (Edit, bool) {
	line := b.Line(edit.Pos.Y)
	if line == nil {
		return Edit{}, false
	}
	if next := nextBoundary(line.Text, edit.Pos.X); next >= 0 {
		removed := line.Delete(edit.Pos.X, next)
		r, _ := utf8.DecodeLastRuneInString(removed)
		return Insert(r, edit.Pos), true
	}
	// At line end: join the next line into this one.
	if edit.Pos.Y < len(b.lines)-1 {
		next := b.lines[edit.Pos.Y+1]
		joinAt := len(line.Text)
		line.Concat(next)
		b.removeLine(edit.Pos.Y + 1)
		return Insert('\n', Point{X: joinAt, Y: edit.Pos.Y}), true
	}
	// End of the final line: nothing to delete.
	return Edit{}, false
}

func (b *Buffer) execCut(edit Edit) (Edit, bool) {
	l, r := edit.Pos, edit.End
	var removed strings.Builder

	head := l
	for head.Y <= r.Y {
		line := b.Line(head.Y)
		if line == nil {
			break
		}
		limit := len(line.Text)
		if head.Y == r.Y {
			limit = r.X
		}
		take := limit - head.X
		var cut string
		if take >= len(line.Text) {
			cut = line.Clear()
		} else {
			cut = line.Delete(head.X, head.X+take)
		}
		removed.WriteString(cut)
		if head.Y < r.Y {
			removed.WriteString(b.ending.Value())
		}
		head.X = 0
		head.Y++
	}

	if l.Y != r.Y {
		// Concatenate the leftover head and tail, then drop the emptied
		// lines below the head. The head line itself always survives, even
		// empty: removing it would eat the newline before the cut range and
		// leave the Paste inverse pointing at a missing row.
		var tail string
		if line := b.Line(r.Y); line != nil {
			tail = line.Clear()
		}
		if line := b.Line(l.Y); line != nil {
			line.ConcatText(tail)
		}
		for i := min(r.Y, len(b.lines)-1); i > l.Y; i-- {
			if b.lines[i].Text == "" {
				b.removeLine(i)
			}
		}
	}

	return Paste(l, removed.String()), true
}

func (b *Buffer) execPaste(edit Edit) (Edit, bool) {
	line := b.Line(edit.Pos.Y)
	if line == nil {
		return Edit{}, false
	}
	segments := strings.Split(edit.Text, b.ending.Value())
	if len(segments) == 1 {
		line.InsertText(edit.Text, edit.Pos.X)
		return Cut(edit.Pos, Point{X: edit.Pos.X + len(edit.Text), Y: edit.Pos.Y}), true
	}

	tail := line.Split(edit.Pos.X)
	line.ConcatText(segments[0])

	inserted := make([]*Line, len(segments)-1)
	for i, s := range segments[1:] {
		inserted[i] = LineFrom(s)
	}
	last := inserted[len(inserted)-1]
	end := Point{X: len(last.Text), Y: edit.Pos.Y + len(inserted)}
	last.Concat(tail)

	rest := make([]*Line, len(b.lines)-edit.Pos.Y-1)
	copy(rest, b.lines[edit.Pos.Y+1:])
	b.lines = append(b.lines[:edit.Pos.Y+1], inserted...)
	b.lines = append(b.lines, rest...)

	return Cut(edit.Pos, end), true
}

func (b *Buffer) execReplace(edit Edit) (Edit, bool) {
	line := b.Line(edit.Pos.Y)
	if line == nil {
		return Edit{}, false
	}
	end := edit.Pos.X + edit.Length
	if end > len(line.Text) {
		end = len(line.Text)
	}
	previous := line.ReplaceText(edit.Text, edit.Pos.X, end)
	return Replace(edit.Pos, len(edit.Text), previous), true
}

func (b *Buffer) insertLine(at int, line *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = line
}

func (b *Buffer) removeLine(at int) {
	b.lines = append(b.lines[:at], b.lines[at+1:]...)
}

// Save writes the buffer back to its path. The on-disk modification time is
// compared against the last observed one; a newer file is rejected with a
// ConflictError unless overwrite is set. A failed save leaves the buffer
// untouched.
func (b *Buffer) Save(overwrite bool) (int, error) {
	n, err := b.writeTo(b.Path, overwrite)
	if err != nil {
		return 0, err
	}
	b.markSaved()
	return n, nil
}

// SaveAs writes the buffer to a new path, rejecting an existing target with
// a PathExistsError unless overwrite is set. On success the buffer adopts
// the new path.
func (b *Buffer) SaveAs(path string, overwrite bool) (int, error) {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return 0, &PathExistsError{Path: path}
	} else if err != nil && !os.IsNotExist(err) {
		return 0, err
	}
	n, err := b.writeTo(path, overwrite)
	if err != nil {
		return 0, err
	}
	b.Path = path
	b.markSaved()
	return n, nil
}

func (b *Buffer) markSaved() {
	b.Dirty = false
	b.ExternallyModified = false
	b.modified = time.Now()
}

func (b *Buffer) writeTo(path string, overwrite bool) (int, error) {
	if b.ReadOnly {
		return 0, ErrReadOnly
	}

	if info, err := os.Stat(path); err == nil {
		if info.ModTime().After(b.modified) && !overwrite {
			return 0, &ConflictError{Path: path, Modified: info.ModTime()}
		}
	} else if !os.IsNotExist(err) {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}

	data := []byte(b.Content())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return 0, err
	}
	// Opened without O_TRUNC; cut the file to the exact length produced.
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(data), nil
}
