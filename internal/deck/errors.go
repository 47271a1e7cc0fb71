package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck reports a source file that yields no usable prompts after
// filtering. Check with errors.Is.
var ErrEmptyDeck = errors.New("deck: no flashcards found")

// FileAccessError wraps a failure to open or read the source file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("deck: reading %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
