// Package jit compiles IR into native x86-64 machine code and executes
// it directly.
//
// Compilation is two passes over the IR sequence. Pass one appends the
// machine-code encoding of each instruction to a buffer, reserving a
// fixed-width four-byte displacement placeholder for every loop branch so
// later patches never shift already-emitted offsets, and records the byte
// offset where each instruction's code begins. Pass two computes every
// branch displacement as (target offset - branch end offset) and
// overwrites the placeholders.
//
// The generated function follows the System V calling convention and
// receives the tape base address plus the output and input callback
// addresses. It pins all of its state in callee-saved registers — r12
// tape base, r13 cursor, r14 output callback, r15 input callback — so
// callback calls cannot clobber it. Cursor arithmetic is unchecked for
// speed, unlike the bounds-checked interpreters; this tradeoff is fixed
// per backend.
//
// Writing machine code into memory and then executing it is the single
// unsafe operation in the toolchain. It is confined to the Program type:
// code is copied into a private anonymous mapping while it is writable,
// the mapping is made read-and-execute exactly once before the first
// call, and it is unmapped exactly once when the Program is closed.
package jit

import "github.com/rs/zerolog"

// Option is a configuration function for JIT compilation.
type Option func(*compileOpts)

type compileOpts struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used to report compile metrics. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *compileOpts) {
		o.logger = logger
	}
}

func collectOptions(options []Option) *compileOpts {
	opts := &compileOpts{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}
	return opts
}
