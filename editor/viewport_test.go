package editor

import (
	"strings"
	"testing"

	"nib/buffer"
)

func tallView(t *testing.T, rows int) *View {
	t.Helper()
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("x", 40)
	}
	return viewFrom(t, strings.Join(lines, "\n"))
}

func TestViewportFollowsCursorDown(t *testing.T) {
	v := tallView(t, 40)

	x, y := v.UpdateViewport(80, 10, 4)
	if x != 0 || y != 0 {
		t.Fatalf("initial origin (%d, %d), want (0, 0)", x, y)
	}

	v.Cursor = buffer.FromPosition(v.Buf, 0, 30)
	_, y = v.UpdateViewport(80, 10, 4)
	if y != 21 {
		t.Fatalf("scroll y = %d, want 21", y)
	}

	// A cursor already inside the window does not move the origin.
	v.Cursor = buffer.FromPosition(v.Buf, 0, 25)
	_, y = v.UpdateViewport(80, 10, 4)
	if y != 21 {
		t.Fatalf("scroll y moved to %d for a visible cursor", y)
	}

	v.Cursor = buffer.FromPosition(v.Buf, 0, 5)
	_, y = v.UpdateViewport(80, 10, 4)
	if y != 5 {
		t.Fatalf("scroll y = %d, want 5", y)
	}
}

func TestViewportKeepsColumnPadding(t *testing.T) {
	v := tallView(t, 2)

	v.Cursor = buffer.FromPosition(v.Buf, 30, 0)
	x, _ := v.UpdateViewport(20, 10, 4)
	if x != 15 {
		t.Fatalf("scroll x = %d, want 15", x)
	}

	// Moving left inside the padded band pulls the origin back minimally.
	v.Cursor = buffer.FromPosition(v.Buf, 17, 0)
	x, _ = v.UpdateViewport(20, 10, 4)
	if x != 13 {
		t.Fatalf("scroll x = %d, want 13", x)
	}

	v.Cursor = buffer.FromPosition(v.Buf, 0, 0)
	x, _ = v.UpdateViewport(20, 10, 4)
	if x != 0 {
		t.Fatalf("scroll x = %d, want 0", x)
	}
}

func TestViewportNarrowWindowDegradesPadding(t *testing.T) {
	v := tallView(t, 2)
	v.Cursor = buffer.FromPosition(v.Buf, 10, 0)

	x, _ := v.UpdateViewport(6, 10, 4)
	if v.Cursor.Column < x || v.Cursor.Column >= x+6 {
		t.Fatalf("cursor column %d not visible at origin %d", v.Cursor.Column, x)
	}
}

func TestScrollByClamps(t *testing.T) {
	v := tallView(t, 5)
	v.ScrollBy(-3, -3)
	if v.scrollX != 0 || v.scrollY != 0 {
		t.Fatalf("origin (%d, %d), want (0, 0)", v.scrollX, v.scrollY)
	}
	v.ScrollBy(0, 100)
	if v.scrollY != 4 {
		t.Fatalf("scroll y = %d, want 4", v.scrollY)
	}
}
