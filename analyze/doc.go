// Package analyze rebuilds a symbol report and recovers control transfer
// candidates from assembled manifest runs.
//
// The transfer scan is a byte pattern heuristic over undifferentiated run
// contents, not a disassembler. It looks for call/jmp style marker bytes
// followed by a 32-bit little-endian displacement, and drops matches whose
// displacement is implausibly large. The default markers are the x86 rel32
// CALL (0xE8) and JMP (0xE9) opcodes; they are unrelated to the Aurora JMP
// and CJMP opcodes (0x07, 0x08), so Aurora instruction words are only found
// when their bytes happen to match.
//
// A displacement of zero is reported as pending. Label operands are always
// encoded with a zero displacement, so a zero here usually means an
// unresolved reference, though it cannot be told apart from a real jump to
// the next instruction.
package analyze
