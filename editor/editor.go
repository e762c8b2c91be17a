// Package editor wires buffers, views and the terminal together into an
// interactive session. One goroutine owns all editing state; every intent is
// processed to completion before the next event is read.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"nib/buffer"
	"nib/config"
)

const messageTimeout = 4 * time.Second

// Options carries the command-line file-opening flags.
type Options struct {
	ReadOnly bool
	Truncate bool
}

// Editor is the session: the ordered set of open views, the active index,
// and the transient status message.
type Editor struct {
	screen tcell.Screen
	cfg    *config.Config
	theme  config.Theme
	opts   Options

	views  []*View
	active int

	message    string
	messageErr bool
	messageAt  time.Time

	chordPending bool
	quit         bool

	watcher *fsnotify.Watcher
}

func New(cfg *config.Config, opts Options) *Editor {
	return &Editor{
		cfg:   cfg,
		theme: cfg.GetTheme(),
		opts:  opts,
	}
}

// Run opens the given paths and drives the event loop until quit. With no
// paths it restores the previous session for the working directory, falling
// back to a single scratch view.
func (e *Editor) Run(paths []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	e.screen = screen
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(e.theme.Text)

	if err := e.startWatcher(); err == nil {
		defer e.watcher.Close()
	}

	for _, p := range paths {
		if err := e.open(p); err != nil {
			e.setError("%v", err)
		}
	}
	if len(e.views) == 0 && e.cfg.RestoreSession {
		e.RestoreSession()
	}
	if len(e.views) == 0 {
		e.addView(buffer.New(""))
	}

	for !e.quit {
		e.draw()
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			e.handleKey(ev)
		case *tcell.EventMouse:
			e.handleMouse(ev)
		case *tcell.EventResize:
			e.screen.Sync()
		case *fileEvent:
			e.handleFileEvent(ev)
		}
		e.expireMessage()
	}

	if e.cfg.RestoreSession {
		e.SaveSession()
	}
	return nil
}

func (e *Editor) activeView() *View {
	if len(e.views) == 0 {
		return nil
	}
	return e.views[e.active]
}

func (e *Editor) addView(buf *buffer.Buffer) *View {
	v := NewView(buf)
	e.views = append(e.views, v)
	e.active = len(e.views) - 1
	return v
}

// open loads path into a new view, or switches to it when already open.
func (e *Editor) open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for i, v := range e.views {
		if v.Buf.Path == abs {
			e.active = i
			return nil
		}
	}
	buf, err := buffer.Load(abs, e.opts.ReadOnly, e.opts.Truncate)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.addView(buf)
	e.watchFile(abs)
	return nil
}

func (e *Editor) openPrompt() {
	path, ok := e.prompt("open: ", "")
	if !ok || path == "" {
		return
	}
	if err := e.open(path); err != nil {
		e.setError("%v", err)
	}
}

func (e *Editor) nextView() {
	if len(e.views) > 0 {
		e.active = (e.active + 1) % len(e.views)
	}
}

func (e *Editor) prevView() {
	if len(e.views) > 0 {
		e.active = (e.active + len(e.views) - 1) % len(e.views)
	}
}

// switchPrompt jumps to the first view whose file name starts with the
// entered prefix.
func (e *Editor) switchPrompt() {
	name, ok := e.prompt("switch to: ", "")
	if !ok || name == "" {
		return
	}
	for i, v := range e.views {
		if strings.HasPrefix(filepath.Base(v.Buf.Path), name) {
			e.active = i
			return
		}
	}
	e.setError("no buffer matching %q", name)
}

// closeActive drops the active view, asking before discarding unsaved
// changes. Closing the last view ends the session.
func (e *Editor) closeActive() {
	v := e.activeView()
	if v == nil {
		return
	}
	if v.Buf.Dirty && !e.confirm(fmt.Sprintf("discard changes to %s?", e.title(v))) {
		return
	}
	e.views = append(e.views[:e.active], e.views[e.active+1:]...)
	if e.active >= len(e.views) {
		e.active = len(e.views) - 1
	}
	if len(e.views) == 0 {
		e.quit = true
	}
}

func (e *Editor) requestQuit() {
	for _, v := range e.views {
		if v.Buf.Dirty {
			if !e.confirm("unsaved changes exist; quit anyway?") {
				return
			}
			break
		}
	}
	e.quit = true
}

// saveActive writes the active buffer back to its path, falling back to a
// save-as prompt for scratch buffers. A modification-time conflict asks
// before overwriting; declining leaves the buffer dirty and the file alone.
func (e *Editor) saveActive() {
	v := e.activeView()
	if v == nil {
		return
	}
	if v.Buf.Path == "" {
		e.saveActiveAs()
		return
	}

	n, err := v.Buf.Save(false)
	var conflict *buffer.ConflictError
	switch {
	case err == nil:
		e.setMessage("wrote %d bytes to %s", n, e.title(v))
	case errors.Is(err, buffer.ErrReadOnly):
		e.setError("%s is read-only", e.title(v))
	case errors.As(err, &conflict):
		if !e.confirm(fmt.Sprintf("%s changed on disk; overwrite?", e.title(v))) {
			e.setMessage("save aborted")
			return
		}
		if n, err := v.Buf.Save(true); err == nil {
			e.setMessage("wrote %d bytes to %s", n, e.title(v))
		} else {
			e.setError("save failed: %v", err)
		}
	default:
		e.setError("save failed: %v", err)
	}
}

// saveActiveAs prompts for a target path. An existing file asks before being
// overwritten; on success the buffer adopts the new path.
func (e *Editor) saveActiveAs() {
	v := e.activeView()
	if v == nil {
		return
	}
	path, ok := e.prompt("write to: ", v.Buf.Path)
	if !ok || path == "" {
		e.setMessage("save aborted")
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	n, err := v.Buf.SaveAs(path, false)
	var exists *buffer.PathExistsError
	switch {
	case err == nil:
		e.setMessage("wrote %d bytes to %s", n, e.title(v))
		e.watchFile(path)
	case errors.Is(err, buffer.ErrReadOnly):
		e.setError("%s is read-only", e.title(v))
	case errors.As(err, &exists):
		if !e.confirm(fmt.Sprintf("%s exists; overwrite?", path)) {
			e.setMessage("save aborted")
			return
		}
		if n, err := v.Buf.SaveAs(path, true); err == nil {
			e.setMessage("wrote %d bytes to %s", n, e.title(v))
			e.watchFile(path)
		} else {
			e.setError("save failed: %v", err)
		}
	default:
		e.setError("save failed: %v", err)
	}
}

// title is the short name shown for a view in the status bar and prompts.
func (e *Editor) title(v *View) string {
	if v.Buf.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(v.Buf.Path)
}

func (e *Editor) setMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageErr = false
	e.messageAt = time.Now()
}

func (e *Editor) setError(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageErr = true
	e.messageAt = time.Now()
}

func (e *Editor) expireMessage() {
	if e.message != "" && time.Since(e.messageAt) > messageTimeout {
		e.message = ""
	}
}
