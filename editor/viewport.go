package editor

// UpdateViewport moves the scroll origin the minimum distance needed to keep
// the cursor inside a width-by-height text area, holding the cursor's column
// at least padding columns away from the left and right edges when the area
// is wide enough. The resulting origin is returned.
func (v *View) UpdateViewport(width, height, padding int) (x, y int) {
	if width <= 0 || height <= 0 {
		return v.scrollX, v.scrollY
	}

	if v.Cursor.Row < v.scrollY {
		v.scrollY = v.Cursor.Row
	}
	if v.Cursor.Row >= v.scrollY+height {
		v.scrollY = v.Cursor.Row - height + 1
	}

	pad := padding
	if width <= 2*pad {
		pad = (width - 1) / 2
	}
	if v.Cursor.Column < v.scrollX+pad {
		v.scrollX = v.Cursor.Column - pad
	}
	if v.Cursor.Column >= v.scrollX+width-pad {
		v.scrollX = v.Cursor.Column - width + pad + 1
	}
	if v.scrollX < 0 {
		v.scrollX = 0
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
	return v.scrollX, v.scrollY
}

// ScrollBy shifts the viewport origin directly, for mouse-wheel movement that
// does not carry the cursor with it.
func (v *View) ScrollBy(dx, dy int) {
	v.scrollX += dx
	v.scrollY += dy
	if v.scrollX < 0 {
		v.scrollX = 0
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
	if last := v.Buf.LineCount() - 1; v.scrollY > last {
		v.scrollY = last
	}
}
