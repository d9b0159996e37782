package isa

import (
	"fmt"
)

// Opcode is the instruction class held in the top byte of a word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0x00) // nop
	OP_MOV  = Opcode(0x01) // mov
	OP_ADD  = Opcode(0x04) // add
	OP_SUB  = Opcode(0x05) // sub
	OP_CMP  = Opcode(0x06) // cmp
	OP_JMP  = Opcode(0x07) // jmp
	OP_CJMP = Opcode(0x08) // cjmp
	OP_CALL = Opcode(0x09) // call
	OP_RET  = Opcode(0x0a) // ret
	OP_SVC  = Opcode(0x0b) // svc
	OP_HALT = Opcode(0x0c) // halt
	OP_MUL  = Opcode(0x0d) // mul
	OP_DIV  = Opcode(0x0e) // div
	OP_REM  = Opcode(0x0f) // rem
)

// Register is a general purpose register id.
type Register int

const (
	REG_R0 = Register(0) // r0, call and exit results
	REG_R1 = Register(1) // r1
	REG_R2 = Register(2) // r2
	REG_R3 = Register(3) // r3
	REG_R4 = Register(4) // r4
	REG_R5 = Register(5) // r5
	REG_R6 = Register(6) // r6
	REG_R7 = Register(7) // r7

	REGISTER_COUNT = 8
)

// Valid returns true if the register id fits the register file.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REGISTER_COUNT
}

func (reg Register) String() string {
	return fmt.Sprintf("r%d", int(reg))
}

// Operand sentinels. These distinguish the kind of an operand slot from a
// literal register id.
const (
	OPERAND_UNUSED    = 0x00
	OPERAND_LABEL     = 0xfe // Unresolved symbolic address.
	OPERAND_IMMEDIATE = 0xff // Slot carries the embedded immediate.
)

// Cond is a conditional jump condition.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_EQ = Cond(0x01) // eq
	COND_NE = Cond(0x02) // ne
	COND_LT = Cond(0x03) // lt
	COND_LE = Cond(0x04) // le
	COND_GT = Cond(0x05) // gt
	COND_GE = Cond(0x06) // ge
)

// Valid returns true for a defined condition.
func (cond Cond) Valid() bool {
	return cond >= COND_EQ && cond <= COND_GE
}

// Service is a service call code.
type Service int

//go:generate go tool stringer -linecomment -type=Service
const (
	SVC_WRITE = Service(0x01) // write
	SVC_EXIT  = Service(0x02) // exit
)
