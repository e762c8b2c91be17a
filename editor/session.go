package editor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nib/buffer"
)

// SessionData records which files were open in a working directory, so the
// next run with no arguments resumes where the last one stopped.
type SessionData struct {
	WorkingDir string      `json:"working_dir"`
	Active     int         `json:"active"`
	Files      []FileState `json:"files"`
}

type FileState struct {
	Path    string `json:"path"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	ScrollX int    `json:"scroll_x"`
	ScrollY int    `json:"scroll_y"`
}

func sessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "nib", "sessions")
}

// sessionPath derives a stable per-directory file name from the directory
// path itself.
func sessionPath(workDir string) string {
	hash := sha256.Sum256([]byte(workDir))
	return filepath.Join(sessionDir(), fmt.Sprintf("%x.json", hash[:8]))
}

func (e *Editor) SaveSession() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	path := sessionPath(wd)

	session := SessionData{
		WorkingDir: wd,
		Active:     e.active,
	}
	for _, v := range e.views {
		if v.Buf.Path == "" {
			continue
		}
		session.Files = append(session.Files, FileState{
			Path:    v.Buf.Path,
			Row:     v.Cursor.Row,
			Column:  v.Cursor.Column,
			ScrollX: v.scrollX,
			ScrollY: v.scrollY,
		})
	}

	if len(session.Files) == 0 {
		// Nothing file-backed was open: drop any stale session file.
		os.Remove(path)
		return
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return
	}
	os.MkdirAll(sessionDir(), 0755)
	os.WriteFile(path, data, 0644)
}

func (e *Editor) RestoreSession() bool {
	wd, err := os.Getwd()
	if err != nil {
		return false
	}
	data, err := os.ReadFile(sessionPath(wd))
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return false
	}
	if session.WorkingDir != wd {
		return false
	}

	restored := false
	for _, fs := range session.Files {
		if _, err := os.Stat(fs.Path); err != nil {
			continue
		}
		if err := e.open(fs.Path); err != nil {
			continue
		}
		v := e.activeView()
		if v == nil || v.Buf.Path != fs.Path {
			continue
		}
		v.Cursor = buffer.FromPosition(v.Buf, fs.Column, fs.Row)
		v.scrollX = fs.ScrollX
		v.scrollY = fs.ScrollY
		restored = true
	}

	if restored && session.Active >= 0 && session.Active < len(e.views) {
		e.active = session.Active
	}
	return restored
}
