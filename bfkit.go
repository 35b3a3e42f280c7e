// Package bfkit is a small compiler toolchain for the Brainfuck language,
// offering three execution backends of increasing sophistication: a naive
// interpreter over raw instructions, an interpreter over peephole-folded
// IR, and a JIT that compiles the IR to native x86-64 code.
//
// All three backends produce byte-identical output for the same program
// and input. Example:
//
//	var out bytes.Buffer
//	err := bfkit.Run([]byte("+++."),
//		bfkit.WithBackend(bfkit.BackendJIT),
//		bfkit.WithOutput(&out))
package bfkit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cloudcmds/bfkit/compiler"
	"github.com/cloudcmds/bfkit/jit"
	"github.com/cloudcmds/bfkit/op"
	"github.com/cloudcmds/bfkit/parser"
	"github.com/cloudcmds/bfkit/vm"
	"github.com/rs/zerolog"
)

// Backend selects one of the three execution engines.
type Backend int

const (
	// BackendRaw interprets raw instructions directly, matching loop
	// brackets by scanning at run time.
	BackendRaw Backend = iota
	// BackendIR interprets peephole-folded IR. The default.
	BackendIR
	// BackendJIT compiles the IR to native code before running it.
	// Requires cgo and an x86-64 Linux or macOS host.
	BackendJIT
)

// String returns the backend name as accepted by ParseBackend.
func (b Backend) String() string {
	switch b {
	case BackendRaw:
		return "raw"
	case BackendIR:
		return "ir"
	case BackendJIT:
		return "jit"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend converts a backend name to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "raw":
		return BackendRaw, nil
	case "ir":
		return BackendIR, nil
	case "jit":
		return BackendJIT, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (expected raw, ir, or jit)", name)
	}
}

// Option configures a bfkit run.
type Option func(*options)

type options struct {
	backend  Backend
	input    io.Reader
	output   io.Writer
	logger   zerolog.Logger
	filename string
}

// WithBackend selects the execution engine. The default is BackendIR.
func WithBackend(backend Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithInput sets the byte source read by the Input instruction. The
// default source is empty, so Input stores zeros.
func WithInput(in io.Reader) Option {
	return func(o *options) {
		o.input = in
	}
}

// WithOutput sets the byte sink written by the Output instruction. The
// default sink discards everything.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.output = out
	}
}

// WithLogger sets the logger used for compile metrics. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilename sets the filename reported in syntax errors.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

func collectOptions(opts ...Option) *options {
	o := &options{
		backend: BackendIR,
		input:   bytes.NewReader(nil),
		output:  io.Discard,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Compile parses and folds source into IR.
func Compile(source []byte, opts ...Option) ([]op.Instruction, error) {
	o := collectOptions(opts...)
	raw, err := parser.Parse(source, parser.WithFilename(o.filename))
	if err != nil {
		return nil, err
	}
	return compiler.Compile(raw), nil
}

// Run parses source and executes it on the selected backend, to
// completion or forever for non-terminating programs.
func Run(source []byte, opts ...Option) error {
	o := collectOptions(opts...)
	raw, err := parser.Parse(source, parser.WithFilename(o.filename))
	if err != nil {
		return err
	}
	switch o.backend {
	case BackendRaw:
		return vm.New(raw).Run(o.input, o.output)
	case BackendIR:
		return vm.NewIR(compiler.Compile(raw)).Run(o.input, o.output)
	case BackendJIT:
		return jit.Run(compiler.Compile(raw), o.input, o.output, jit.WithLogger(o.logger))
	default:
		return fmt.Errorf("unknown backend %s", o.backend)
	}
}
