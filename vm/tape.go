package vm

import "fmt"

// TapeSize is the canonical number of cells on the Brainfuck tape.
const TapeSize = 30000

// Tape is a fixed-size, zero-initialized byte buffer plus a cursor. Byte
// arithmetic wraps modulo 256. The interpreters bounds-check cursor
// movement and fail with an error when the cursor escapes the tape; the
// JIT backend uses unchecked arithmetic instead (see package jit).
type Tape struct {
	cells  [TapeSize]byte
	cursor int
}

// Move shifts the cursor by delta, failing if the result is out of range.
func (t *Tape) Move(delta int) error {
	cursor := t.cursor + delta
	if cursor < 0 || cursor >= TapeSize {
		return fmt.Errorf("tape cursor out of range: %d", cursor)
	}
	t.cursor = cursor
	return nil
}

// Add adds delta to the cell at the cursor, modulo 256.
func (t *Tape) Add(delta int32) {
	t.cells[t.cursor] += byte(delta)
}

// Read returns the cell at the cursor.
func (t *Tape) Read() byte {
	return t.cells[t.cursor]
}

// Write stores b into the cell at the cursor.
func (t *Tape) Write(b byte) {
	t.cells[t.cursor] = b
}

// Cursor returns the current cursor position.
func (t *Tape) Cursor() int {
	return t.cursor
}
