package editor

import (
	"github.com/gdamore/tcell/v2"

	"nib/buffer"
)

// handleKey decodes one key event into a logical intent. Ctrl+X starts a
// two-key chord for the file and buffer commands; everything else acts
// directly.
func (e *Editor) handleKey(ev *tcell.EventKey) {
	if e.chordPending {
		e.chordPending = false
		e.message = ""
		e.handleChord(ev)
		return
	}

	v := e.activeView()
	if v == nil {
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlX:
		e.chordPending = true
		e.setMessage("C-x -")

	case tcell.KeyCtrlQ:
		e.requestQuit()
	case tcell.KeyCtrlS:
		e.saveActive()

	case tcell.KeyCtrlZ:
		if !v.Undo() {
			e.setMessage("nothing to undo")
		}
	case tcell.KeyCtrlY:
		if !v.Redo() {
			e.setMessage("nothing to redo")
		}

	case tcell.KeyCtrlC:
		if !v.Copy() {
			e.setMessage("nothing selected")
		}
	case tcell.KeyCtrlK:
		if !v.CutSelection() {
			e.setMessage("nothing selected")
		}
	case tcell.KeyCtrlV:
		if !v.PasteClipboard() {
			e.setMessage("clipboard is empty")
		}

	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		e.handleArrow(v, ev)

	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			v.Top()
		} else {
			v.Home()
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			v.Bottom()
		} else {
			v.End()
		}

	case tcell.KeyPgUp:
		v.Move(buffer.Up, e.pageSize())
	case tcell.KeyPgDn:
		v.Move(buffer.Down, e.pageSize())

	case tcell.KeyInsert:
		v.ToggleOverwrite()

	case tcell.KeyEnter:
		v.Insert('\n')
	case tcell.KeyTab:
		for i := 0; i < e.cfg.TabSize; i++ {
			v.Insert(' ')
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.Backspace()
	case tcell.KeyDelete:
		v.Delete()

	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			v.Insert(ev.Rune())
		}
	}
}

func (e *Editor) handleArrow(v *View, ev *tcell.EventKey) {
	var direction buffer.Direction
	switch ev.Key() {
	case tcell.KeyUp:
		direction = buffer.Up
	case tcell.KeyDown:
		direction = buffer.Down
	case tcell.KeyLeft:
		direction = buffer.Left
	default:
		direction = buffer.Right
	}

	if ev.Modifiers()&tcell.ModShift != 0 {
		v.Select(direction)
		return
	}
	v.Step(direction)
}

func (e *Editor) handleChord(ev *tcell.EventKey) {
	v := e.activeView()
	if ev.Key() != tcell.KeyRune || v == nil {
		e.setMessage("C-x: unbound key")
		return
	}
	switch ev.Rune() {
	case 's':
		e.saveActive()
	case 'S':
		e.saveActiveAs()
	case 'o':
		e.openPrompt()
	case 'n':
		e.addView(buffer.New(""))
	case 'k':
		e.closeActive()
	case ',':
		e.prevView()
	case '.':
		e.nextView()
	case 'p':
		e.switchPrompt()
	case 'z':
		if !v.Undo() {
			e.setMessage("nothing to undo")
		}
	case 'y':
		if !v.Redo() {
			e.setMessage("nothing to redo")
		}
	case 'q':
		e.requestQuit()
	default:
		e.setMessage("C-x %c: unbound", ev.Rune())
	}
}

// handleMouse places the cursor on click and scrolls on wheel movement.
func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	v := e.activeView()
	if v == nil {
		return
	}
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		mx, my := ev.Position()
		col := mx - e.gutterWidth(v) + v.scrollX
		row := my + v.scrollY
		if col < 0 {
			col = 0
		}
		v.Selection = nil
		v.Cursor = buffer.FromPosition(v.Buf, col, row)
	case ev.Buttons()&tcell.WheelUp != 0:
		v.ScrollBy(0, -3)
	case ev.Buttons()&tcell.WheelDown != 0:
		v.ScrollBy(0, 3)
	}
}

// pageSize is the height of the text area, for page movement.
func (e *Editor) pageSize() int {
	if e.screen == nil {
		return 1
	}
	_, h := e.screen.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}
