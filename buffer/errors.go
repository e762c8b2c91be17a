package buffer

import (
	"errors"
	"fmt"
	"time"
)

// ErrReadOnly is returned by Save and SaveAs on a read-only buffer.
var ErrReadOnly = errors.New("buffer is read-only")

// ConflictError reports that the file on disk changed after the buffer last
// observed it. Recoverable by saving again with overwrite set.
type ConflictError struct {
	Path     string
	Modified time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: file changed on disk at %s", e.Path, e.Modified.Format(time.Stamp))
}

// PathExistsError reports a save-as target that already exists without
// overwrite confirmation.
type PathExistsError struct {
	Path string
}

func (e *PathExistsError) Error() string {
	return e.Path + ": path already exists"
}
