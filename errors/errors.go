// Package errors defines error types with source positions for the bfkit
// toolchain.
//
// All malformed-input detection happens at parse time, so the only
// user-facing error type carrying a position is SyntaxError. Later stages
// treat malformed sequences as internal precondition violations and panic
// instead of returning an error.
package errors

import (
	"fmt"
	"strings"
)

// FriendlyError is an interface for errors that have a human friendly
// message in addition to the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// SyntaxError indicates that Brainfuck source failed to parse. It carries
// the byte offset of the offending bracket, or of end-of-input for an
// unterminated loop.
type SyntaxError struct {
	Message  string
	Offset   int    // 0-based byte offset into the source
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // the line of source containing the error
	Filename string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("syntax error: ")
	b.WriteString(e.Message)
	if e.Filename != "" {
		fmt.Fprintf(&b, "\n\nlocation: %s:%d:%d", e.Filename, e.Line, e.Column)
	} else {
		fmt.Fprintf(&b, "\n\nlocation: %d:%d", e.Line, e.Column)
	}
	fmt.Fprintf(&b, " (byte offset %d)", e.Offset)
	return b.String()
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *SyntaxError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e)
}

// NewSyntaxError creates a SyntaxError for the given source and byte
// offset, computing the line and column and capturing the source line.
func NewSyntaxError(source []byte, offset int, format string, args ...interface{}) *SyntaxError {
	e := &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Line:    1,
		Column:  1,
	}
	lineStart := 0
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			e.Line++
			lineStart = i + 1
		}
	}
	e.Column = offset - lineStart + 1
	lineEnd := len(source)
	for i := lineStart; i < len(source); i++ {
		if source[i] == '\n' {
			lineEnd = i
			break
		}
	}
	if lineStart < lineEnd {
		e.Source = string(source[lineStart:lineEnd])
	}
	return e
}
