package editor

import (
	"strings"

	"nib/buffer"
	"nib/clipboardx"
)

// View is one editing session: a buffer plus the cursor, selection and undo
// history that belong to it. Every logical intent enters through a View
// method; the View owns pushing inverses onto the history and keeping the
// selection consistent with the rule that movement, edits and undo/redo all
// clear it.
type View struct {
	Buf       *buffer.Buffer
	Cursor    buffer.Cursor
	Selection *buffer.Selection
	History   *buffer.History

	scrollX   int
	scrollY   int
	overwrite bool
}

func NewView(buf *buffer.Buffer) *View {
	return &View{
		Buf:     buf,
		Cursor:  buffer.NewCursor(),
		History: buffer.NewHistory(),
	}
}

func (v *View) push(before buffer.Cursor, inverse buffer.Edit) {
	v.History.Push(buffer.Step{Cursor: before, Edit: inverse})
}

// Insert types one character at the cursor. In overwrite mode a printable
// character replaces the grapheme under the cursor instead; a newline always
// inserts.
func (v *View) Insert(ch rune) {
	v.Selection = nil
	before := v.Cursor

	edit := buffer.Insert(ch, v.Cursor.Point())
	if v.overwrite && ch != '\n' {
		edit = buffer.Overwrite(ch, v.Cursor.Point())
	}
	inverse, ok := v.Buf.Execute(edit)
	if !ok {
		return
	}
	v.Cursor.StepCursor(v.Buf, buffer.Right)
	v.push(before, inverse)
}

// InsertText types a run of characters, newlines included, as individual
// inserts so they group into a single undo step.
func (v *View) InsertText(text string) {
	for _, ch := range text {
		v.Insert(ch)
	}
}

// Backspace removes the grapheme before the cursor, joining with the
// previous line at a line start. With an active selection it removes the
// selected range instead.
func (v *View) Backspace() {
	if v.Selection != nil {
		v.DeleteSelection()
		return
	}
	before := v.Cursor
	v.Cursor.StepCursor(v.Buf, buffer.Left)
	if v.Cursor.Offset == before.Offset && v.Cursor.Row == before.Row {
		return
	}
	if inverse, ok := v.Buf.Execute(buffer.Delete(v.Cursor.Point())); ok {
		v.push(before, inverse)
	}
}

// Delete removes the grapheme under the cursor, joining the next line up at
// a line end. With an active selection it removes the selected range.
func (v *View) Delete() {
	if v.Selection != nil {
		v.DeleteSelection()
		return
	}
	before := v.Cursor
	if inverse, ok := v.Buf.Execute(buffer.Delete(v.Cursor.Point())); ok {
		v.push(before, inverse)
	}
}

// DeleteSelection cuts the selected range out of the buffer and leaves the
// cursor at its left boundary.
func (v *View) DeleteSelection() {
	sel := v.Selection
	v.Selection = nil
	if sel == nil {
		return
	}
	before := v.Cursor
	inverse, ok := v.Buf.Execute(buffer.Cut(sel.Left.Point(), sel.Right.Point()))
	if !ok {
		return
	}
	v.Cursor = buffer.FromPoint(v.Buf, sel.Left.Point())
	v.push(before, inverse)
}

func (v *View) Move(direction buffer.Direction, steps int) {
	v.Selection = nil
	v.Cursor.MoveCursor(v.Buf, direction, steps)
}

func (v *View) Step(direction buffer.Direction) {
	v.Selection = nil
	v.Cursor.StepCursor(v.Buf, direction)
}

func (v *View) Home() {
	v.Selection = nil
	v.Cursor.Home(v.Buf)
}

func (v *View) End() {
	v.Selection = nil
	v.Cursor.End(v.Buf)
}

func (v *View) Top() {
	v.Selection = nil
	v.Cursor.Top(v.Buf)
}

func (v *View) Bottom() {
	v.Selection = nil
	v.Cursor.Bottom(v.Buf)
}

// Select steps the cursor while growing or shrinking the selection from the
// moving edge. An empty result drops the selection entirely.
func (v *View) Select(direction buffer.Direction) {
	before := v.Cursor
	v.Cursor.StepCursor(v.Buf, direction)
	if v.Selection == nil {
		v.Selection = buffer.NewSelection(before, v.Cursor)
	} else {
		v.Selection.Extend(before, v.Cursor)
	}
	if v.Selection.Empty() {
		v.Selection = nil
	}
}

// Undo reverts the newest run of same-kind edits in one call. Each popped
// inverse is applied through the buffer; its own inverse moves to the redo
// stack together with the pre-undo cursor. An inverse that no longer applies
// abandons the rest of its group without reverting the steps already taken.
func (v *View) Undo() bool {
	if !v.History.CanUndo() {
		return false
	}
	top, _ := v.History.PeekUndo()
	v.Selection = nil
	kind := top.Edit.Kind
	for {
		next, ok := v.History.PeekUndo()
		if !ok || next.Edit.Kind != kind {
			break
		}
		step, _ := v.History.PopUndo()
		inverse, ok := v.Buf.Execute(step.Edit)
		if !ok {
			break
		}
		v.History.PushRedo(buffer.Step{Cursor: v.Cursor, Edit: inverse})
		v.Cursor = step.Cursor
	}
	return true
}

// Redo is the mirror image of Undo, replaying the newest undone group.
func (v *View) Redo() bool {
	if !v.History.CanRedo() {
		return false
	}
	top, _ := v.History.PeekRedo()
	v.Selection = nil
	kind := top.Edit.Kind
	for {
		next, ok := v.History.PeekRedo()
		if !ok || next.Edit.Kind != kind {
			break
		}
		step, _ := v.History.PopRedo()
		inverse, ok := v.Buf.Execute(step.Edit)
		if !ok {
			break
		}
		v.History.PushUndo(buffer.Step{Cursor: v.Cursor, Edit: inverse})
		v.Cursor = step.Cursor
	}
	return true
}

// SelectedText serializes the selected range without mutating the buffer.
func (v *View) SelectedText() string {
	if v.Selection == nil {
		return ""
	}
	return v.Buf.TextInRange(v.Selection.Left.Point(), v.Selection.Right.Point())
}

// Copy places the selected text on the clipboard, keeping the selection.
func (v *View) Copy() bool {
	text := v.SelectedText()
	if text == "" {
		return false
	}
	clipboardx.Write(text)
	return true
}

// CutSelection copies the selected text and then removes it.
func (v *View) CutSelection() bool {
	if !v.Copy() {
		return false
	}
	v.DeleteSelection()
	return true
}

// PasteClipboard inserts the clipboard contents at the cursor as a single
// undoable paste, normalized to the buffer's line ending. The cursor lands
// after the pasted text.
func (v *View) PasteClipboard() bool {
	text := clipboardx.Read()
	if text == "" {
		return false
	}
	v.Selection = nil
	text = normalizeEndings(text, v.Buf.Ending())

	before := v.Cursor
	inverse, ok := v.Buf.Execute(buffer.Paste(v.Cursor.Point(), text))
	if !ok {
		return false
	}
	// The inverse cut's end point is exactly where the pasted text stops.
	v.Cursor = buffer.FromPoint(v.Buf, inverse.End)
	v.push(before, inverse)
	return true
}

func (v *View) ToggleOverwrite() {
	v.overwrite = !v.overwrite
}

func (v *View) Overwriting() bool {
	return v.overwrite
}

// normalizeEndings rewrites foreign line endings in pasted text to the
// buffer's own convention.
func normalizeEndings(text string, ending buffer.LineEnding) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if ending == buffer.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}
