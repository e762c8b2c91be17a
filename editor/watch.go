package editor

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// fileEvent carries an fsnotify notification into the tcell event loop so
// file changes are handled on the editing goroutine.
type fileEvent struct {
	tcell.EventTime
	path string
	op   fsnotify.Op
}

func newFileEvent(path string, op fsnotify.Op) *fileEvent {
	ev := &fileEvent{path: path, op: op}
	ev.SetEventNow()
	return ev
}

// startWatcher begins forwarding file-system notifications for watched
// paths into the event loop.
func (e *Editor) startWatcher() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	e.watcher = w
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				e.screen.PostEvent(newFileEvent(ev.Name, ev.Op))
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func (e *Editor) watchFile(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	e.watcher.Add(path)
}

// handleFileEvent flags buffers whose file changed on disk behind the
// editor's back. A write the editor itself just performed is recognized by
// its modification time and ignored.
func (e *Editor) handleFileEvent(ev *fileEvent) {
	for _, v := range e.views {
		if v.Buf.Path != ev.path {
			continue
		}
		if ev.op&(fsnotify.Remove|fsnotify.Rename) != 0 {
			v.Buf.ExternallyModified = true
			e.setError("%s was removed on disk", e.title(v))
			return
		}
		if ev.op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		info, err := os.Stat(ev.path)
		if err != nil || !info.ModTime().After(v.Buf.Modified()) {
			return
		}
		v.Buf.ExternallyModified = true
		e.setError("%s changed on disk", e.title(v))
		return
	}
}
