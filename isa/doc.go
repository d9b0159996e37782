// Package isa implements the instruction word codec for the Aurora minimal
// instruction set.
//
// Every instruction is a single 64-bit word. From the most significant byte
// down it holds the opcode, three 8-bit operands, and a 32-bit two's
// complement immediate. Operands are either register ids (r0-r7) or one of
// the operand sentinels that mark the slot as a label reference or an
// embedded immediate.
//
// Words are rendered into manifests as `bytes` literals, most significant
// byte first. Label operands are always packed with a zero displacement: the
// codec does not resolve labels to addresses, and nothing downstream patches
// them either.
package isa
