package buffer

// Selection is an ordered pair of cursor snapshots with
// Left.Offset <= Right.Offset.
type Selection struct {
	Left, Right Cursor
}

func NewSelection(a, b Cursor) *Selection {
	if a.Offset <= b.Offset {
		return &Selection{Left: a, Right: b}
	}
	return &Selection{Left: b, Right: a}
}

func (s *Selection) Empty() bool {
	return s.Left.Offset == s.Right.Offset
}

// Contains reports whether the absolute buffer offset lies inside the
// selected range.
func (s *Selection) Contains(offset int) bool {
	return s.Left.Offset <= offset && offset < s.Right.Offset
}

// Extend adjusts the selection for a cursor that stepped from before to
// after. The moving edge is whichever boundary equals before: stepping away
// from the other edge extends it, stepping inward shrinks it, and stepping
// past the opposite edge flips which boundary is anchored. The ordering
// invariant holds throughout.
func (s *Selection) Extend(before, after Cursor) {
	switch {
	case before.Offset == s.Right.Offset:
		if after.Offset < s.Left.Offset {
			s.Right = s.Left
			s.Left = after
		} else {
			s.Right = after
		}
	case before.Offset == s.Left.Offset:
		if after.Offset > s.Right.Offset {
			s.Left = s.Right
			s.Right = after
		} else {
			s.Left = after
		}
	default:
		// The cursor was not on an edge; restart from the step itself.
		*s = *NewSelection(before, after)
	}
}
