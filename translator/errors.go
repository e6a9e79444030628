package translator

import "fmt"

// Error is a translator failure pinned to the offending word number, the
// way the original compiler reports "в слове #N". It implements the error
// interface directly so it composes with github.com/pkg/errors' Wrap/Cause
// chain used elsewhere in this module.
type Error struct {
	WordNumber int
	Msg        string
}

func (e *Error) Error() string {
	return fmt.Sprintf("word #%d: %s", e.WordNumber, e.Msg)
}

func errAt(wordNumber int, format string, args ...interface{}) *Error {
	return &Error{WordNumber: wordNumber, Msg: fmt.Sprintf(format, args...)}
}
