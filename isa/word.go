package isa

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Bit positions of the word fields.
const (
	SHIFT_OPCODE    = 56
	SHIFT_OPERAND_A = 48
	SHIFT_OPERAND_B = 40
	SHIFT_OPERAND_C = 32

	IMMEDIATE_MASK = 0xffff_ffff

	WORD_SIZE = 8 // Bytes per word.
)

// Word is a packed 64-bit instruction word.
type Word uint64

// Pack checks and packs the five word fields. Nothing is packed if any
// field is out of range.
func Pack(opcode, a, b, c int, immediate int64) (word Word, err error) {
	fields := [...]struct {
		name  string
		value int
	}{
		{"opcode", opcode},
		{"operand A", a},
		{"operand B", b},
		{"operand C", c},
	}

	for _, field := range fields {
		if field.value < 0 || field.value > 0xff {
			err = &ErrField{Field: field.name, Value: int64(field.value), Min: 0, Max: 0xff}
			return
		}
	}

	if immediate < math.MinInt32 || immediate > math.MaxInt32 {
		err = &ErrField{Field: "immediate", Value: immediate, Min: math.MinInt32, Max: math.MaxInt32}
		return
	}

	word = Word(uint64(opcode)<<SHIFT_OPCODE |
		uint64(a)<<SHIFT_OPERAND_A |
		uint64(b)<<SHIFT_OPERAND_B |
		uint64(c)<<SHIFT_OPERAND_C |
		uint64(uint32(int32(immediate))))

	return
}

// Opcode returns the opcode byte.
func (word Word) Opcode() Opcode {
	return Opcode((word >> SHIFT_OPCODE) & 0xff)
}

// OperandA returns the first operand byte.
func (word Word) OperandA() uint8 {
	return uint8(word >> SHIFT_OPERAND_A)
}

// OperandB returns the second operand byte.
func (word Word) OperandB() uint8 {
	return uint8(word >> SHIFT_OPERAND_B)
}

// OperandC returns the third operand byte.
func (word Word) OperandC() uint8 {
	return uint8(word >> SHIFT_OPERAND_C)
}

// Immediate returns the sign extended immediate.
func (word Word) Immediate() int32 {
	return int32(uint32(word & IMMEDIATE_MASK))
}

// Unpack returns all five fields.
func (word Word) Unpack() (opcode Opcode, a, b, c uint8, immediate int32) {
	return word.Opcode(), word.OperandA(), word.OperandB(), word.OperandC(), word.Immediate()
}

// Literal renders the word as a 16 digit hex literal, most significant
// byte first.
func (word Word) Literal() string {
	return fmt.Sprintf("0x%016X", uint64(word))
}

// Bytes returns the word in the order it is written in a literal. This is
// big-endian, unlike the little-endian u16/u32/u64 manifest scalars.
func (word Word) Bytes() []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(word))
}

// operand formats an operand slot for listings.
func (word Word) operand(slot uint8) string {
	switch {
	case slot < REGISTER_COUNT:
		return Register(slot).String()
	case slot == OPERAND_LABEL:
		return "<label>"
	case slot == OPERAND_IMMEDIATE:
		return fmt.Sprintf("#%d", word.Immediate())
	}
	return fmt.Sprintf("?%#02x", slot)
}

// String decodes the word into assembly text.
func (word Word) String() string {
	op, a, b, c, imm := word.Unpack()

	switch op {
	case OP_NOP, OP_RET, OP_HALT:
		return op.String()
	case OP_MOV:
		if b == OPERAND_LABEL {
			return fmt.Sprintf("mov %v, #addr(<label>)", word.operand(a))
		}
		return fmt.Sprintf("mov %v, %v", word.operand(a), word.operand(b))
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_REM:
		return fmt.Sprintf("%v %v, %v, %v", op, word.operand(a), word.operand(b), word.operand(c))
	case OP_CMP:
		return fmt.Sprintf("cmp %v, %v", word.operand(a), word.operand(b))
	case OP_JMP, OP_CALL:
		if a == OPERAND_LABEL {
			return fmt.Sprintf("%v <label>", op)
		}
		return fmt.Sprintf("%v %+d", op, imm)
	case OP_CJMP:
		return fmt.Sprintf("cjmp %v, %v", Cond(a), word.operand(b))
	case OP_SVC:
		return fmt.Sprintf("svc %v", Service(a))
	}

	return fmt.Sprintf(".word %v", word.Literal())
}
