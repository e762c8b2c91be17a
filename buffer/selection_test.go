package buffer

import "testing"

func cursorAt(b *Buffer, column, row int) Cursor {
	return FromPosition(b, column, row)
}

func TestNewSelectionOrdersByOffset(t *testing.T) {
	b := bufferFrom("hello")
	a := cursorAt(b, 3, 0)
	z := cursorAt(b, 1, 0)

	s := NewSelection(a, z)
	if s.Left.Offset != 1 || s.Right.Offset != 3 {
		t.Fatalf("selection [%d, %d], want [1, 3]", s.Left.Offset, s.Right.Offset)
	}
}

func TestExtendRightEdge(t *testing.T) {
	b := bufferFrom("hello")
	s := NewSelection(cursorAt(b, 1, 0), cursorAt(b, 2, 0))

	// Cursor on the right edge stepping right extends the selection.
	s.Extend(cursorAt(b, 2, 0), cursorAt(b, 3, 0))
	if s.Left.Offset != 1 || s.Right.Offset != 3 {
		t.Fatalf("extend right: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}

	// Stepping back shrinks the right edge.
	s.Extend(cursorAt(b, 3, 0), cursorAt(b, 2, 0))
	if s.Left.Offset != 1 || s.Right.Offset != 2 {
		t.Fatalf("shrink right: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}
}

func TestExtendLeftEdge(t *testing.T) {
	b := bufferFrom("hello")
	s := NewSelection(cursorAt(b, 2, 0), cursorAt(b, 3, 0))

	s.Extend(cursorAt(b, 2, 0), cursorAt(b, 1, 0))
	if s.Left.Offset != 1 || s.Right.Offset != 3 {
		t.Fatalf("extend left: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}

	s.Extend(cursorAt(b, 1, 0), cursorAt(b, 2, 0))
	if s.Left.Offset != 2 || s.Right.Offset != 3 {
		t.Fatalf("shrink left: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}
}

func TestExtendFlipsAcrossAnchor(t *testing.T) {
	b := bufferFrom("hello")

	// Right edge moving left past the left edge flips the anchor.
	s := NewSelection(cursorAt(b, 2, 0), cursorAt(b, 3, 0))
	s.Extend(cursorAt(b, 3, 0), cursorAt(b, 1, 0))
	if s.Left.Offset != 1 || s.Right.Offset != 2 {
		t.Fatalf("flip from right: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}

	// Left edge moving right past the right edge flips the other way.
	s = NewSelection(cursorAt(b, 2, 0), cursorAt(b, 3, 0))
	s.Extend(cursorAt(b, 2, 0), cursorAt(b, 4, 0))
	if s.Left.Offset != 3 || s.Right.Offset != 4 {
		t.Fatalf("flip from left: [%d, %d]", s.Left.Offset, s.Right.Offset)
	}
}

func TestExtendKeepsOrderingInvariant(t *testing.T) {
	b := bufferFrom("some text to wander over")
	cursor := cursorAt(b, 5, 0)
	s := NewSelection(cursor, cursor)

	steps := []Direction{Right, Right, Left, Left, Left, Left, Right, Left, Right, Right, Right}
	for i, d := range steps {
		before := cursor
		cursor.StepCursor(b, d)
		s.Extend(before, cursor)
		if s.Left.Offset > s.Right.Offset {
			t.Fatalf("step %d: ordering violated [%d, %d]", i, s.Left.Offset, s.Right.Offset)
		}
	}
}

func TestSelectionContains(t *testing.T) {
	b := bufferFrom("hello")
	s := NewSelection(cursorAt(b, 1, 0), cursorAt(b, 3, 0))

	if !s.Contains(1) || !s.Contains(2) {
		t.Fatalf("selection should contain offsets 1 and 2")
	}
	if s.Contains(0) || s.Contains(3) {
		t.Fatalf("selection should exclude offsets 0 and 3")
	}
}
