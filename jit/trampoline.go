//go:build cgo && amd64 && (linux || darwin)

package jit

/*
#include "trampoline.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/cloudcmds/bfkit/vm"
)

// runState carries the I/O endpoints for the run currently executing
// generated code. The exported callbacks below reach it through the
// package-level active pointer; runMutex serializes runs so there is
// never more than one.
type runState struct {
	in  io.Reader
	out io.Writer
	err error
}

var (
	runMutex sync.Mutex
	active   *runState
)

// Run allocates a zeroed tape, enters the generated code with the tape
// base and callback addresses, and blocks until the instruction stream
// ends. Generated code cannot unwind early, so after a callback failure
// the remaining callbacks become no-ops and the first error is returned
// once the program finishes.
func (p *Program) Run(in io.Reader, out io.Writer) error {
	if p.mem == nil {
		return errors.New("jit: program is closed")
	}
	if !p.executable {
		return errors.New("jit: program is not finalized")
	}

	runMutex.Lock()
	defer runMutex.Unlock()

	state := &runState{in: in, out: out}
	active = state
	defer func() { active = nil }()

	tape := make([]byte, vm.TapeSize)
	C.bfkitEnter(unsafe.Pointer(&p.mem[0]), (*C.uint8_t)(unsafe.Pointer(&tape[0])))
	return state.err
}

func (s *runState) writeByte(b byte) {
	if s.err != nil {
		return
	}
	if _, err := s.out.Write([]byte{b}); err != nil {
		s.err = fmt.Errorf("jit: failed to write byte to output: %w", err)
	}
}

// readByte pulls one byte from the source, applying the shared
// end-of-input policy: EOF yields 0.
func (s *runState) readByte() byte {
	if s.err != nil {
		return 0
	}
	var buf [1]byte
	n, err := io.ReadFull(s.in, buf[:])
	if n == 1 {
		return buf[0]
	}
	if err != io.EOF && err != io.ErrUnexpectedEOF {
		s.err = fmt.Errorf("jit: failed to read byte from input: %w", err)
	}
	return 0
}

//export bfkitOutputByte
func bfkitOutputByte(b C.uint8_t) {
	active.writeByte(byte(b))
}

//export bfkitInputByte
func bfkitInputByte() C.uint8_t {
	return C.uint8_t(active.readByte())
}
