package editor

import "github.com/gdamore/tcell/v2"

// prompt reads a line of text on the status row. Escape cancels, reporting
// no answer; the caller abandons whatever operation needed the input.
func (e *Editor) prompt(label, initial string) (string, bool) {
	input := []rune(initial)
	for {
		e.drawPrompt(label, string(input))
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(input), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyCtrlU:
				input = input[:0]
			case tcell.KeyRune:
				if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
					input = append(input, ev.Rune())
				}
			}
		case *tcell.EventResize:
			e.screen.Sync()
		}
	}
}

// confirm asks a yes/no question on the status row. Escape counts as no.
func (e *Editor) confirm(question string) bool {
	for {
		e.drawPrompt(question+" (y/n)", "")
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'y', 'Y':
					return true
				case 'n', 'N':
					return false
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false
			}
		case *tcell.EventResize:
			e.screen.Sync()
		}
	}
}

// drawPrompt repaints the frame and overlays the prompt on the status row,
// parking the terminal cursor at the end of the input.
func (e *Editor) drawPrompt(label, input string) {
	e.draw()
	w, h := e.screen.Size()
	if h < 1 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		e.screen.SetContent(x, y, ' ', nil, e.theme.StatusBar)
	}
	text := " " + label + input
	e.puts(0, y, text, e.theme.StatusBar)
	e.screen.ShowCursor(displayWidth(text), y)
	e.screen.Show()
}
