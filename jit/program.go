//go:build cgo && amd64 && (linux || darwin)

package jit

import (
	"errors"
	"io"

	"github.com/cloudcmds/bfkit/op"
	"github.com/gofrs/uuid"
	"golang.org/x/sys/unix"
)

// Supported reports whether the JIT backend is available on this
// platform and build.
const Supported = true

// Program is an executable in-memory compilation artifact: a page-aligned
// private mapping holding generated machine code, entered at offset zero.
// A Program backs exactly one run and must be closed afterwards.
type Program struct {
	id         string
	mem        []byte
	executable bool
}

// Compile generates machine code for the IR sequence and finalizes it
// into an executable Program. The returned Program must be closed by the
// caller after its one run.
func Compile(program []op.Instruction, options ...Option) (*Program, error) {
	opts := collectOptions(options)

	code := assemble(program)
	p := &Program{id: uuid.Must(uuid.NewV4()).String()}

	mem, err := unix.Mmap(-1, 0, len(code),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	p.mem = mem
	copy(p.mem, code)

	if err := p.finalize(); err != nil {
		p.Close()
		return nil, err
	}
	opts.logger.Debug().
		Str("program_id", p.id).
		Int("ir_len", len(program)).
		Int("code_bytes", len(code)).
		Msg("compiled program")
	return p, nil
}

// finalize flips the mapping from writable to read-and-execute. This is
// the only protection transition a Program ever makes: the code is never
// writable again.
func (p *Program) finalize() error {
	if p.executable {
		return errors.New("jit: program already finalized")
	}
	if err := unix.Mprotect(p.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return err
	}
	p.executable = true
	return nil
}

// ID returns the program's unique id, used for log correlation.
func (p *Program) ID() string {
	return p.id
}

// Close releases the Program's memory. Closing twice is a no-op.
func (p *Program) Close() error {
	if p.mem == nil {
		return nil
	}
	mem := p.mem
	p.mem = nil
	p.executable = false
	return unix.Munmap(mem)
}

// Run compiles the IR sequence, executes it once, and releases the
// Program. This is the whole JIT backend in one call.
func Run(program []op.Instruction, in io.Reader, out io.Writer, options ...Option) error {
	p, err := Compile(program, options...)
	if err != nil {
		return err
	}
	defer p.Close()
	return p.Run(in, out)
}
