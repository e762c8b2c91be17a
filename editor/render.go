package editor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// draw paints the active view: line-number gutter, text area with the
// selection highlighted, and the status bar on the bottom row.
func (e *Editor) draw() {
	e.screen.Clear()
	w, h := e.screen.Size()
	v := e.activeView()
	if v == nil || w <= 0 || h <= 1 {
		e.screen.Show()
		return
	}

	gutter := e.gutterWidth(v)
	textW, textH := w-gutter, h-1
	scrollX, scrollY := v.UpdateViewport(textW, textH, e.cfg.ScrollPadding)

	offset := 0
	for row := 0; row < scrollY; row++ {
		offset += len(v.Buf.Line(row).Text)
	}

	for row := scrollY; row < scrollY+textH && row < v.Buf.LineCount(); row++ {
		sy := row - scrollY
		if gutter > 0 {
			number := fmt.Sprintf("%*d ", gutter-1, row+1)
			e.puts(0, sy, number, e.theme.LineNumber)
		}
		e.drawLine(v, row, sy, gutter, textW, scrollX, offset)
		offset += len(v.Buf.Line(row).Text)
	}

	e.drawStatus(v, w, h-1)
	e.screen.ShowCursor(gutter+v.Cursor.Column-scrollX, v.Cursor.Row-scrollY)
	e.screen.Show()
}

// drawLine paints one buffer line clipped to the horizontal window. A wide
// grapheme straddling the left edge renders as '<' pads, one straddling the
// right edge as '>' pads.
func (e *Editor) drawLine(v *View, row, sy, gutter, textW, scrollX, offset int) {
	line := v.Buf.Line(row)
	it := line.ColumnIndices()
	for ci, ok := it.Next(); ok; ci, ok = it.Next() {
		right := ci.Column + ci.Width
		if right <= scrollX {
			continue
		}
		if ci.Column >= scrollX+textW {
			break
		}

		style := e.theme.Text
		if v.Selection != nil && v.Selection.Contains(offset+ci.Byte) {
			style = e.theme.Selection
		}

		if ci.Column < scrollX {
			for col := scrollX; col < right; col++ {
				e.screen.SetContent(gutter+col-scrollX, sy, '<', nil, e.theme.Clip)
			}
			continue
		}
		if right > scrollX+textW {
			for col := ci.Column; col < scrollX+textW; col++ {
				e.screen.SetContent(gutter+col-scrollX, sy, '>', nil, e.theme.Clip)
			}
			continue
		}

		runes := []rune(ci.Grapheme)
		e.screen.SetContent(gutter+ci.Column-scrollX, sy, runes[0], runes[1:], style)
	}
}

func (e *Editor) drawStatus(v *View, w, y int) {
	style := e.theme.StatusBar
	for x := 0; x < w; x++ {
		e.screen.SetContent(x, y, ' ', nil, style)
	}

	left := e.message
	if e.messageErr {
		style = e.theme.StatusErr
	}
	if left == "" {
		var sb strings.Builder
		sb.WriteString(" ")
		sb.WriteString(e.title(v))
		if v.Buf.Dirty {
			sb.WriteString(" *")
		}
		if v.Buf.ReadOnly {
			sb.WriteString(" [ro]")
		}
		if v.Buf.ExternallyModified {
			sb.WriteString(" [disk]")
		}
		left = sb.String()
	} else {
		left = " " + left
	}

	mode := "INS"
	if v.Overwriting() {
		mode = "OVR"
	}
	right := fmt.Sprintf("%d:%d | %s | %s | %d/%d ",
		v.Cursor.Row+1, v.Cursor.Column+1, v.Buf.Ending(), mode, e.active+1, len(e.views))

	e.puts(0, y, left, style)
	rightW := displayWidth(right)
	if rightW < w-displayWidth(left) {
		e.puts(w-rightW, y, right, e.theme.StatusBar)
	}
}

// puts writes a string of mostly-narrow text left to right, advancing by
// display width.
func (e *Editor) puts(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		e.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// gutterWidth is the line-number column width for the view, zero when line
// numbers are disabled.
func (e *Editor) gutterWidth(v *View) int {
	if !e.cfg.LineNumbers {
		return 0
	}
	digits := 1
	for n := v.Buf.LineCount(); n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}
