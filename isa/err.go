package isa

import (
	"errors"

	"github.com/ezrec/aurc/translate"
)

var f = translate.From

var (
	// Error categories
	ErrRange       = errors.New(f("out of range"))
	ErrFormat      = errors.New(f("malformed"))
	ErrUnsupported = errors.New(f("unsupported"))
)

// ErrField reports a word field that does not fit its bit width.
type ErrField struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (err *ErrField) Error() string {
	return f("%v %v out of range [%v, %v]", err.Field, err.Value, err.Min, err.Max)
}

func (err *ErrField) Unwrap() error {
	return ErrRange
}

// ErrRegister reports a register id outside of r0-r7.
type ErrRegister int

func (err ErrRegister) Error() string {
	return f("register r%v out of range [r0, r7]", int(err))
}

func (err ErrRegister) Unwrap() error {
	return ErrRange
}

// ErrService reports a service call code with no encoding.
type ErrService int

func (err ErrService) Error() string {
	return f("service code %#02x not supported", int(err))
}

func (err ErrService) Unwrap() error {
	return ErrUnsupported
}
