//go:build !cgo || !amd64 || (!linux && !darwin)

package jit

import (
	"errors"
	"io"

	"github.com/cloudcmds/bfkit/op"
)

// Supported reports whether the JIT backend is available on this
// platform and build.
const Supported = false

// ErrUnsupported is returned when the JIT backend is unavailable: it
// requires cgo and an x86-64 Linux or macOS host.
var ErrUnsupported = errors.New("jit: not supported on this platform")

// Program is an executable in-memory compilation artifact. On this
// platform it cannot be created.
type Program struct{}

// Compile is unavailable on this platform.
func Compile(program []op.Instruction, options ...Option) (*Program, error) {
	return nil, ErrUnsupported
}

// Run is unavailable on this platform.
func Run(program []op.Instruction, in io.Reader, out io.Writer, options ...Option) error {
	return ErrUnsupported
}

// ID returns the program's unique id.
func (p *Program) ID() string { return "" }

// Run is unavailable on this platform.
func (p *Program) Run(in io.Reader, out io.Writer) error { return ErrUnsupported }

// Close releases the Program's memory.
func (p *Program) Close() error { return nil }
