package buffer

// Step pairs the cursor position from before an edit with the edit that
// undoes it.
type Step struct {
	Cursor Cursor
	Edit   Edit
}

// History holds the undo and redo stacks for one editing session. The
// grouped undo/redo loops live on the session that owns the history; the
// stacks themselves only enforce that a new edit clears the redo side.
type History struct {
	undos []Step
	redos []Step
}

func NewHistory() *History {
	return &History{}
}

// Push records the inverse of a freshly executed edit. Any push clears the
// redo stack.
func (h *History) Push(s Step) {
	h.undos = append(h.undos, s)
	h.redos = h.redos[:0]
}

func (h *History) CanUndo() bool { return len(h.undos) > 0 }
func (h *History) CanRedo() bool { return len(h.redos) > 0 }

func (h *History) PeekUndo() (Step, bool) {
	if len(h.undos) == 0 {
		return Step{}, false
	}
	return h.undos[len(h.undos)-1], true
}

func (h *History) PeekRedo() (Step, bool) {
	if len(h.redos) == 0 {
		return Step{}, false
	}
	return h.redos[len(h.redos)-1], true
}

func (h *History) PopUndo() (Step, bool) {
	if len(h.undos) == 0 {
		return Step{}, false
	}
	s := h.undos[len(h.undos)-1]
	h.undos = h.undos[:len(h.undos)-1]
	return s, true
}

func (h *History) PopRedo() (Step, bool) {
	if len(h.redos) == 0 {
		return Step{}, false
	}
	s := h.redos[len(h.redos)-1]
	h.redos = h.redos[:len(h.redos)-1]
	return s, true
}

// PushRedo and PushUndo move steps between the stacks during undo/redo
// without disturbing the other side.
func (h *History) PushRedo(s Step) {
	h.redos = append(h.redos, s)
}

func (h *History) PushUndo(s Step) {
	h.undos = append(h.undos, s)
}
