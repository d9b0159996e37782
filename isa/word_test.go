package isa

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	assert := assert.New(t)

	word, err := Pack(0x01, 0x02, 0x03, 0x04, 0x05060708)
	assert.NoError(err)
	assert.Equal(Word(0x0102030405060708), word)
	assert.Equal("0x0102030405060708", word.Literal())
	assert.Equal([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, word.Bytes())

	word, err = Pack(0x0b, 0x02, 0, 0, 0)
	assert.NoError(err)
	assert.Equal("0x0B02000000000000", word.Literal())
}

func TestPackNegativeImmediate(t *testing.T) {
	assert := assert.New(t)

	word, err := Pack(int(OP_MOV), 1, OPERAND_IMMEDIATE, 0, -1)
	assert.NoError(err)
	assert.Equal("0x0101FF00FFFFFFFF", word.Literal())
	assert.Equal(int32(-1), word.Immediate())

	word, err = Pack(0, 0, 0, 0, math.MinInt32)
	assert.NoError(err)
	assert.Equal(Word(0x80000000), word)
	assert.Equal(int32(math.MinInt32), word.Immediate())
}

func TestPackRange(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		field   string
		opcode  int
		a, b, c int
		imm     int64
	}{
		{"opcode", 0x100, 0, 0, 0, 0},
		{"opcode", -1, 0, 0, 0, 0},
		{"operand A", 0, 256, 0, 0, 0},
		{"operand B", 0, 0, -5, 0, 0},
		{"operand C", 0, 0, 0, 0x1ff, 0},
		{"immediate", 0, 0, 0, 0, math.MaxInt32 + 1},
		{"immediate", 0, 0, 0, 0, math.MinInt32 - 1},
	}

	for _, entry := range table {
		word, err := Pack(entry.opcode, entry.a, entry.b, entry.c, entry.imm)
		assert.Equal(Word(0), word, entry.field)
		assert.True(errors.Is(err, ErrRange), entry.field)

		var field *ErrField
		if assert.True(errors.As(err, &field), entry.field) {
			assert.Equal(entry.field, field.Field)
		}
	}
}

func TestUnpack(t *testing.T) {
	assert := assert.New(t)

	word := Word(0x0D04010300000000)
	op, a, b, c, imm := word.Unpack()
	assert.Equal(OP_MUL, op)
	assert.Equal(uint8(4), a)
	assert.Equal(uint8(1), b)
	assert.Equal(uint8(3), c)
	assert.Equal(int32(0), imm)
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		word Word
		text string
	}{
		{0x0101FF0000000005, "mov r1, #5"},
		{0x0100020000000000, "mov r0, r2"},
		{0x0101FE0000000000, "mov r1, #addr(<label>)"},
		{0x0401010200000000, "add r1, r1, r2"},
		{0x050202FF00000001, "sub r2, r2, #1"},
		{0x0602FF0000000000, "cmp r2, #0"},
		{0x0801FE0000000000, "cjmp eq, <label>"},
		{0x07FE000000000000, "jmp <label>"},
		{0x0B01010000000000, "svc write"},
		{0x0B02000000000000, "svc exit"},
		{0x0C00000000000000, "halt"},
		{0xEE00000000000000, ".word 0xEE00000000000000"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.word.String())
	}
}

func FuzzPack(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), int32(0))
	f.Add(uint8(0xff), uint8(0xfe), uint8(0xff), uint8(7), int32(-1))
	f.Add(uint8(0x0b), uint8(2), uint8(0), uint8(0), int32(math.MinInt32))
	f.Add(uint8(0x01), uint8(1), uint8(0xff), uint8(0), int32(math.MaxInt32))

	f.Fuzz(func(t *testing.T, opcode, a, b, c uint8, imm int32) {
		assert := assert.New(t)

		word, err := Pack(int(opcode), int(a), int(b), int(c), int64(imm))
		assert.NoError(err)

		op, ra, rb, rc, rimm := word.Unpack()
		assert.Equal(Opcode(opcode), op)
		assert.Equal(a, ra)
		assert.Equal(b, rb)
		assert.Equal(c, rc)
		assert.Equal(imm, rimm)

		assert.Equal(opcode, word.Bytes()[0])
		assert.Len(word.Literal(), 18)
	})
}
