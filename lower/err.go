package lower

import (
	"errors"

	"github.com/ezrec/aurc/translate"
)

var f = translate.From

var (
	// Error categories
	ErrUnsupported = errors.New(f("unsupported program"))

	ErrProgramMissing = errors.New(f("script does not define 'program'"))
)

// ErrShape is a program description that cannot be lowered.
type ErrShape string

func (err ErrShape) Error() string {
	return f("unsupported program shape: %v", string(err))
}

func (err ErrShape) Unwrap() error {
	return ErrUnsupported
}

// ErrBinding is a reference to an unbound name.
type ErrBinding string

func (err ErrBinding) Error() string {
	return f("'%v' is not bound", string(err))
}

func (err ErrBinding) Unwrap() error {
	return ErrUnsupported
}

// ErrEncode locates a codec failure in the emitted instruction.
type ErrEncode struct {
	What string
	Err  error
}

func (err *ErrEncode) Error() string {
	return f("%v: %v", err.What, err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}
