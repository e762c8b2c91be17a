package buffer

import "fmt"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor maps one logical position against a Buffer across four coordinate
// systems: the display column, the byte offset and grapheme index within
// the current line, and the absolute byte offset within the buffer. The
// desired column is remembered across vertical moves so the cursor returns
// to it after crossing shorter lines.
type Cursor struct {
	Row    int // line index
	Column int // display column
	Byte   int // byte offset in the current line
	Index  int // grapheme index in the current line
	Offset int // byte offset in the whole buffer

	desiredColumn int
}

func NewCursor() Cursor {
	return Cursor{}
}

// FromPosition resolves a (column, row) display position against buf. The
// row is clamped to the buffer and the column mapped to the grapheme
// interval containing it, or to the end of the line beyond its last column.
func FromPosition(buf *Buffer, column, row int) Cursor {
	if row < 0 {
		row = 0
	}
	if row >= buf.LineCount() {
		row = buf.LineCount() - 1
	}
	line := buf.Line(row)
	ci := findColumn(line, column)
	return Cursor{
		Row:           row,
		Column:        ci.Column,
		Byte:          ci.Byte,
		Index:         ci.Index,
		Offset:        lineOffset(buf, row) + ci.Byte,
		desiredColumn: ci.Column,
	}
}

// FromPoint resolves a byte position, clamping it to the nearest grapheme
// boundary at or before the byte.
func FromPoint(buf *Buffer, pt Point) Cursor {
	if pt.Y < 0 {
		pt.Y = 0
	}
	if pt.Y >= buf.LineCount() {
		pt.Y = buf.LineCount() - 1
	}
	line := buf.Line(pt.Y)
	ci := lastIndex(line)
	if pt.X < len(line.Text) {
		ci = find(line, func(ci ColumnIndex) bool {
			return ci.Byte <= pt.X && pt.X < ci.Byte+len(ci.Grapheme)
		})
	}
	return Cursor{
		Row:           pt.Y,
		Column:        ci.Column,
		Byte:          ci.Byte,
		Index:         ci.Index,
		Offset:        lineOffset(buf, pt.Y) + ci.Byte,
		desiredColumn: ci.Column,
	}
}

// find scans the line's grapheme descriptors and returns the first one
// matched by f, or the last descriptor seen when none matches.
func find(line *Line, f func(ColumnIndex) bool) ColumnIndex {
	var previous ColumnIndex
	it := line.ColumnIndices()
	for ci, ok := it.Next(); ok; ci, ok = it.Next() {
		if f(ci) {
			return ci
		}
		previous = ci
	}
	return previous
}

// lastIndex is the end-of-line sentinel: one past the final grapheme.
func lastIndex(line *Line) ColumnIndex {
	return ColumnIndex{
		Byte:   len(line.Text),
		Column: line.Width,
		Index:  line.Size,
	}
}

func findColumn(line *Line, column int) ColumnIndex {
	if column >= line.Width {
		return lastIndex(line)
	}
	return find(line, func(ci ColumnIndex) bool {
		return ci.Column <= column && column < ci.Column+ci.Width
	})
}

func findIndex(line *Line, index int) ColumnIndex {
	if index >= line.Size {
		return lastIndex(line)
	}
	return find(line, func(ci ColumnIndex) bool {
		return ci.Index == index
	})
}

// lineOffset is the byte offset of the start of row within the buffer.
func lineOffset(buf *Buffer, row int) int {
	offset := 0
	for i := 0; i < row; i++ {
		offset += len(buf.Line(i).Text)
	}
	return offset
}

// checkBounds panics when any cursor invariant is violated; the buffer and
// cursor have already diverged at that point and recovery is not possible.
func (c *Cursor) checkBounds(buf *Buffer) {
	if c.Row >= buf.LineCount() {
		panic(fmt.Sprintf("cursor: row %d out of bounds (%d lines)", c.Row, buf.LineCount()))
	}
	line := buf.Line(c.Row)
	if c.Column > line.Width {
		panic(fmt.Sprintf("cursor: column %d out of bounds (width %d)", c.Column, line.Width))
	}
	if c.Byte > len(line.Text) {
		panic(fmt.Sprintf("cursor: byte %d out of bounds (length %d)", c.Byte, len(line.Text)))
	}
	if c.Index > line.Size {
		panic(fmt.Sprintf("cursor: index %d out of bounds (size %d)", c.Index, line.Size))
	}
}

// MoveCursor shifts the cursor steps positions in the given direction.
// Vertical moves re-resolve the remembered desired column against the new
// row; horizontal moves walk grapheme positions, crossing line boundaries
// on exhaustion, and update the desired column to the result.
func (c *Cursor) MoveCursor(buf *Buffer, direction Direction, steps int) {
	switch direction {
	case Up:
		if steps > c.Row {
			// Go to the start of the first line.
			c.Row = 0
			c.Byte = 0
			c.Index = 0
			c.Column = 0
		} else {
			c.Row -= steps
			ci := findColumn(buf.Line(c.Row), c.desiredColumn)
			c.Column = ci.Column
			c.Byte = ci.Byte
			c.Index = ci.Index
		}

	case Down:
		if steps+c.Row >= buf.LineCount() {
			// Go to the end of the last line.
			c.Row = buf.LineCount() - 1
			line := buf.Line(c.Row)
			c.Byte = len(line.Text)
			c.Index = line.Size
			c.Column = line.Width
		} else {
			c.Row += steps
			ci := findColumn(buf.Line(c.Row), c.desiredColumn)
			c.Column = ci.Column
			c.Byte = ci.Byte
			c.Index = ci.Index
		}

	case Left:
		remain := steps
		for remain > 0 {
			take := min(remain, c.Index)
			c.Index -= take
			remain -= take

			if c.Index <= 0 && remain > 0 {
				if c.Row == 0 {
					break
				}
				// One step is consumed crossing the line break.
				c.Row--
				c.Index = buf.Line(c.Row).Size
				remain--
			}
		}
		ci := findIndex(buf.Line(c.Row), c.Index)
		c.Column = ci.Column
		c.Byte = ci.Byte
		c.desiredColumn = ci.Column

	case Right:
		remain := steps
		for remain > 0 {
			line := buf.Line(c.Row)
			take := min(remain, line.Size-c.Index)
			c.Index += take
			remain -= take

			if c.Index >= line.Size && remain > 0 {
				if c.Row >= buf.LineCount()-1 {
					break
				}
				c.Row++
				c.Index = 0
				remain--
			}
		}
		ci := findIndex(buf.Line(c.Row), c.Index)
		c.Column = ci.Column
		c.Byte = ci.Byte
		c.desiredColumn = ci.Column
	}

	c.Offset = lineOffset(buf, c.Row) + c.Byte
	c.checkBounds(buf)
}

// StepCursor moves by a single grapheme using direct boundary lookup.
// Left at line start jumps to the end of the previous line; Right at line
// end jumps to the start of the next. Vertical steps delegate to
// MoveCursor.
func (c *Cursor) StepCursor(buf *Buffer, direction Direction) {
	switch direction {
	case Left:
		line := buf.Line(c.Row)
		if previous := prevBoundary(line.Text, c.Byte); previous >= 0 {
			s := line.Text[previous:c.Byte]
			c.Offset -= c.Byte - previous
			c.Column -= graphemeWidth(s)
			c.Byte = previous
			c.Index--
			c.desiredColumn = c.Column
		} else if c.Row > 0 {
			c.Row--
			c.End(buf)
		} else {
			c.Home(buf)
		}

	case Right:
		line := buf.Line(c.Row)
		if next := nextBoundary(line.Text, c.Byte); next >= 0 {
			s := line.Text[c.Byte:next]
			c.Offset += next - c.Byte
			c.Column += graphemeWidth(s)
			c.Byte = next
			c.Index++
			c.desiredColumn = c.Column
		} else if c.Row < buf.LineCount()-1 {
			c.Row++
			c.Home(buf)
		} else {
			c.End(buf)
		}

	default:
		c.MoveCursor(buf, direction, 1)
		return
	}

	c.checkBounds(buf)
}

// Home jumps to column 0 of the current line.
func (c *Cursor) Home(buf *Buffer) {
	c.Column = 0
	c.Byte = 0
	c.Index = 0
	c.Offset = lineOffset(buf, c.Row)
	c.desiredColumn = 0
}

// End jumps past the last grapheme of the current line.
func (c *Cursor) End(buf *Buffer) {
	line := buf.Line(c.Row)
	c.Column = line.Width
	c.Byte = len(line.Text)
	c.Index = line.Size
	c.Offset = lineOffset(buf, c.Row) + c.Byte
	c.desiredColumn = c.Column
}

// Top jumps to the start of the buffer.
func (c *Cursor) Top(buf *Buffer) {
	c.Row = 0
	c.Home(buf)
}

// Bottom jumps to the end of the buffer.
func (c *Cursor) Bottom(buf *Buffer) {
	c.Row = buf.LineCount() - 1
	c.End(buf)
}

// Point is the edit target under the cursor.
func (c *Cursor) Point() Point {
	return Point{X: c.Byte, Y: c.Row}
}
