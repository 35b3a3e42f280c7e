package jit

import "encoding/binary"

// assembler emits x86-64 machine code into a growable buffer. Only the
// handful of encodings the code generator needs are implemented. The
// register plan is fixed: r12 holds the tape base, r13 the cursor offset,
// r14 and r15 the output and input callback addresses. All four are
// callee-saved under System V, so the callback calls emitted for Output
// and Input leave them intact.
type assembler struct {
	code []byte
}

func (a *assembler) emit(bytes ...byte) {
	a.code = append(a.code, bytes...)
}

func (a *assembler) emitU32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	a.code = append(a.code, buf[:]...)
}

func (a *assembler) len() int {
	return len(a.code)
}

// patchRel32 overwrites the four placeholder bytes at pos with a signed
// little-endian displacement.
func (a *assembler) patchRel32(pos int, rel int32) {
	binary.LittleEndian.PutUint32(a.code[pos:pos+4], uint32(rel))
}

// prologue saves the callee-saved registers and loads the incoming
// arguments: rdi tape base -> r12, rsi output callback -> r14, rdx input
// callback -> r15. The cursor starts at zero. The five pushes also leave
// rsp 16-byte aligned at every emitted call.
func (a *assembler) prologue() {
	a.emit(0x55)             // push rbp
	a.emit(0x41, 0x54)       // push r12
	a.emit(0x41, 0x55)       // push r13
	a.emit(0x41, 0x56)       // push r14
	a.emit(0x41, 0x57)       // push r15
	a.emit(0x49, 0x89, 0xFC) // mov r12, rdi
	a.emit(0x45, 0x31, 0xED) // xor r13d, r13d
	a.emit(0x49, 0x89, 0xF6) // mov r14, rsi
	a.emit(0x49, 0x89, 0xD7) // mov r15, rdx
}

// epilogue restores the saved registers and returns. There is no halt
// instruction: generated code simply falls through here when the
// instruction stream ends.
func (a *assembler) epilogue() {
	a.emit(0x41, 0x5F) // pop r15
	a.emit(0x41, 0x5E) // pop r14
	a.emit(0x41, 0x5D) // pop r13
	a.emit(0x41, 0x5C) // pop r12
	a.emit(0x5D)       // pop rbp
	a.emit(0xC3)       // ret
}

// addCursor emits: add r13, imm32. A negative delta is encoded as its
// two's complement, so a single encoding covers both directions.
func (a *assembler) addCursor(delta int32) {
	a.emit(0x49, 0x81, 0xC5) // add r13, imm32
	a.emitU32(uint32(delta))
}

// addCell emits: add byte [r12+r13], imm8. The caller passes the delta
// already reduced modulo 256.
func (a *assembler) addCell(delta byte) {
	a.emit(0x43, 0x80, 0x04, 0x2C, delta)
}

// cmpCellZero emits: cmp byte [r12+r13], 0.
func (a *assembler) cmpCellZero() {
	a.emit(0x43, 0x80, 0x3C, 0x2C, 0x00)
}

// jumpIfZero emits: je rel32 with a placeholder displacement, returning
// the buffer position of the placeholder for pass-two patching.
func (a *assembler) jumpIfZero() int {
	a.emit(0x0F, 0x84)
	pos := a.len()
	a.emitU32(0)
	return pos
}

// jumpIfNotZero emits: jne rel32 with a placeholder displacement.
func (a *assembler) jumpIfNotZero() int {
	a.emit(0x0F, 0x85)
	pos := a.len()
	a.emitU32(0)
	return pos
}

// callOutput emits: movzx edi, byte [r12+r13]; call r14. The loaded cell
// lands in the first System V argument register before the output
// callback is invoked.
func (a *assembler) callOutput() {
	a.emit(0x43, 0x0F, 0xB6, 0x3C, 0x2C) // movzx edi, byte [r12+r13]
	a.emit(0x41, 0xFF, 0xD6)             // call r14
}

// callInput emits: call r15; mov [r12+r13], al. The input callback
// returns the byte in al, which is stored at the cursor.
func (a *assembler) callInput() {
	a.emit(0x41, 0xFF, 0xD7)       // call r15
	a.emit(0x43, 0x88, 0x04, 0x2C) // mov [r12+r13], al
}
