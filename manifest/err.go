package manifest

import (
	"errors"
	"fmt"

	"github.com/ezrec/aurc/translate"
)

var f = translate.From

var (
	// Error categories
	ErrRange       = errors.New(f("out of range"))
	ErrFormat      = errors.New(f("malformed"))
	ErrUnsupported = errors.New(f("unsupported"))

	// Literal errors
	ErrEmptyLiteral = fmt.Errorf("%w: %v", ErrFormat, f("empty literal"))
	ErrOddLength    = fmt.Errorf("%w: %v", ErrFormat, f("odd number of hex digits"))
)

// ErrSyntax locates an error in the manifest text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrDirective is an unrecognized directive name.
type ErrDirective string

func (err ErrDirective) Error() string {
	return f("unsupported directive '%v'", string(err))
}

func (err ErrDirective) Unwrap() error {
	return ErrUnsupported
}

// ErrArgs is a directive with the wrong number of arguments.
type ErrArgs struct {
	Directive Directive
	Got       int
}

func (err *ErrArgs) Error() string {
	return f("%v expects %v, got %d", err.Directive, err.Directive.Arity(), err.Got)
}

func (err *ErrArgs) Unwrap() error {
	return ErrFormat
}

// ErrHexPrefix is a numeric literal without the 0x prefix.
type ErrHexPrefix string

func (err ErrHexPrefix) Error() string {
	return f("'%v' must use a 0x prefix", string(err))
}

func (err ErrHexPrefix) Unwrap() error {
	return ErrFormat
}

// ErrParseHex is a literal with non-hex digits.
type ErrParseHex string

func (err ErrParseHex) Error() string {
	return f("'%v' is not a hex literal", string(err))
}

func (err ErrParseHex) Unwrap() error {
	return ErrFormat
}

// ErrParseString is a malformed ascii string.
type ErrParseString struct {
	Text   string
	Reason string
}

func (err *ErrParseString) Error() string {
	return f("%v is not a valid string: %v", err.Text, err.Reason)
}

func (err *ErrParseString) Unwrap() error {
	return ErrFormat
}

// ErrScalarRange is a scalar value too wide for its directive.
type ErrScalarRange struct {
	Directive Directive
	Literal   string
}

func (err *ErrScalarRange) Error() string {
	return f("%v does not fit in %v", err.Literal, err.Directive)
}

func (err *ErrScalarRange) Unwrap() error {
	return ErrRange
}

// ErrImageSize is an offset past the assembler's size limit.
type ErrImageSize struct {
	Offset uint64
	Limit  int
}

func (err *ErrImageSize) Error() string {
	return f("offset %#x exceeds image limit %#x", err.Offset, err.Limit)
}

func (err *ErrImageSize) Unwrap() error {
	return ErrRange
}

// ErrLabelDuplicate is a redeclared label under the reject policy.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' duplicated", string(err))
}

func (err ErrLabelDuplicate) Unwrap() error {
	return ErrFormat
}

// ErrLineSize is a manifest line longer than the given limit.
type ErrLineSize int

func (err ErrLineSize) Error() string {
	return f("line exceeds %v bytes", int(err))
}

func (err ErrLineSize) Unwrap() error {
	return ErrRange
}
