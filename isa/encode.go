package isa

import (
	"fmt"
)

// Instruction is an encoded word with the assembly text it came from.
type Instruction struct {
	Word    Word
	Comment string
}

// Directive renders the instruction as a manifest `bytes` line.
func (in Instruction) Directive() string {
	if len(in.Comment) == 0 {
		return fmt.Sprintf("bytes %v", in.Word.Literal())
	}
	return fmt.Sprintf("bytes %v  # %v", in.Word.Literal(), in.Comment)
}

// checkRegisters validates register operands.
func checkRegisters(regs ...Register) (err error) {
	for _, reg := range regs {
		if !reg.Valid() {
			err = ErrRegister(reg)
			return
		}
	}
	return
}

// MovImm encodes `mov dst, #value`.
func MovImm(dst Register, value int64) (word Word, err error) {
	if err = checkRegisters(dst); err != nil {
		return
	}
	return Pack(int(OP_MOV), int(dst), OPERAND_IMMEDIATE, OPERAND_UNUSED, value)
}

// MovReg encodes `mov dst, src`.
func MovReg(dst, src Register) (word Word, err error) {
	if err = checkRegisters(dst, src); err != nil {
		return
	}
	return Pack(int(OP_MOV), int(dst), int(src), OPERAND_UNUSED, 0)
}

// MovLabel encodes `mov dst, #addr(label)`. The address is left as a zero
// placeholder.
func MovLabel(dst Register) (word Word, err error) {
	if err = checkRegisters(dst); err != nil {
		return
	}
	return Pack(int(OP_MOV), int(dst), OPERAND_LABEL, OPERAND_UNUSED, 0)
}

// arithRegReg encodes a three register arithmetic operation.
func arithRegReg(op Opcode, dst, lhs, rhs Register) (word Word, err error) {
	if err = checkRegisters(dst, lhs, rhs); err != nil {
		return
	}
	return Pack(int(op), int(dst), int(lhs), int(rhs), 0)
}

// arithRegImm encodes a register and immediate arithmetic operation.
func arithRegImm(op Opcode, dst, lhs Register, value int64) (word Word, err error) {
	if err = checkRegisters(dst, lhs); err != nil {
		return
	}
	return Pack(int(op), int(dst), int(lhs), OPERAND_IMMEDIATE, value)
}

// AddRegReg encodes `add dst, lhs, rhs`.
func AddRegReg(dst, lhs, rhs Register) (Word, error) {
	return arithRegReg(OP_ADD, dst, lhs, rhs)
}

// SubRegImm encodes `sub dst, lhs, #value`.
func SubRegImm(dst, lhs Register, value int64) (Word, error) {
	return arithRegImm(OP_SUB, dst, lhs, value)
}

// MulRegReg encodes `mul dst, lhs, rhs`.
func MulRegReg(dst, lhs, rhs Register) (Word, error) {
	return arithRegReg(OP_MUL, dst, lhs, rhs)
}

// DivRegReg encodes `div dst, lhs, rhs`.
func DivRegReg(dst, lhs, rhs Register) (Word, error) {
	return arithRegReg(OP_DIV, dst, lhs, rhs)
}

// RemRegReg encodes `rem dst, lhs, rhs`.
func RemRegReg(dst, lhs, rhs Register) (Word, error) {
	return arithRegReg(OP_REM, dst, lhs, rhs)
}

// CmpRegImm encodes `cmp lhs, #value`.
func CmpRegImm(lhs Register, value int64) (word Word, err error) {
	if err = checkRegisters(lhs); err != nil {
		return
	}
	return Pack(int(OP_CMP), int(lhs), OPERAND_IMMEDIATE, OPERAND_UNUSED, value)
}

// Cjmp encodes `cjmp cond, label` with a zero placeholder displacement.
func Cjmp(cond Cond) (word Word, err error) {
	if !cond.Valid() {
		err = &ErrField{Field: "condition", Value: int64(cond), Min: int64(COND_EQ), Max: int64(COND_GE)}
		return
	}
	return Pack(int(OP_CJMP), int(cond), OPERAND_LABEL, OPERAND_UNUSED, 0)
}

// CjmpEq encodes `cjmp eq, label`.
func CjmpEq() (Word, error) {
	return Cjmp(COND_EQ)
}

// Jmp encodes `jmp label` with a zero placeholder displacement.
func Jmp() (Word, error) {
	return Pack(int(OP_JMP), OPERAND_LABEL, OPERAND_UNUSED, OPERAND_UNUSED, 0)
}

// Halt encodes `halt`.
func Halt() (Word, error) {
	return Pack(int(OP_HALT), OPERAND_UNUSED, OPERAND_UNUSED, OPERAND_UNUSED, 0)
}

// svcWord holds the only two service call encodings.
var svcWord = map[Service]Word{
	SVC_WRITE: 0x0B01010000000000,
	SVC_EXIT:  0x0B02000000000000,
}

// Svc encodes a service call.
func Svc(svc Service) (word Word, err error) {
	word, ok := svcWord[svc]
	if !ok {
		err = ErrService(svc)
	}
	return
}
