package lower

import (
	"strings"
	"unicode"

	"github.com/ezrec/aurc/isa"
)

// Kind is the shape of a program.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_STRING_PRINT = Kind(1) // string_print
	KIND_LOOP_SUM     = Kind(2) // loop_sum
	KIND_PI_TEST      = Kind(3) // pi_test
)

// StringBinding is a named string literal loaded by address.
type StringBinding struct {
	Name     string
	Value    string
	Register isa.Register
}

// IntBinding is a named integer held in a register.
type IntBinding struct {
	Name     string
	Value    int64
	Register isa.Register
}

// ServiceCall is one service invocation. Argument names a string binding
// for SVC_WRITE and is empty for SVC_EXIT.
type ServiceCall struct {
	Service  isa.Service
	Argument string
}

// LoopSum is a counting loop that adds the counter into the accumulator
// until the counter reaches zero, then exits with the accumulator.
type LoopSum struct {
	Accumulator IntBinding
	Counter     IntBinding
}

// PiTest scales the numerator, divides by the denominator, and exits with
// the quotient.
type PiTest struct {
	Numerator   IntBinding
	Denominator IntBinding
	Scale       IntBinding
	Result      string
}

// Program is a validated program description.
type Program struct {
	Kind    Kind
	Strings []StringBinding
	Calls   []ServiceCall
	Exit    int64 // Exit service argument.
	Return  int64 // Value returned from main.
	LoopSum *LoopSum
	PiTest  *PiTest
}

// binding finds a string binding by name.
func (prog *Program) binding(name string) (binding StringBinding, ok bool) {
	for _, binding = range prog.Strings {
		if binding.Name == name {
			ok = true
			return
		}
	}
	return
}

// validLabel reports whether name can be emitted as a manifest label
// without colliding with the entry point.
func validLabel(name string) bool {
	if len(name) == 0 || name == "main" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == '#' || unicode.IsSpace(r)
	})
}

// checkInts validates a set of integer bindings.
func checkInts(bindings ...IntBinding) (err error) {
	seen := map[string]bool{}
	regs := map[isa.Register]bool{}
	for _, binding := range bindings {
		if len(binding.Name) == 0 {
			return ErrShape(f("unnamed integer binding"))
		}
		if seen[binding.Name] {
			return ErrShape(f("duplicate binding for '%v'", binding.Name))
		}
		seen[binding.Name] = true
		if !binding.Register.Valid() {
			return isa.ErrRegister(binding.Register)
		}
		if binding.Register == isa.REG_R0 {
			return ErrShape(f("r0 is reserved for the exit value"))
		}
		if regs[binding.Register] {
			return ErrShape(f("register %v bound twice", binding.Register))
		}
		regs[binding.Register] = true
	}
	return
}

// Validate checks that the program has a shape Lower supports.
func (prog *Program) Validate() (err error) {
	switch prog.Kind {
	case KIND_STRING_PRINT:
		if len(prog.Strings) == 0 {
			return ErrShape(f("no string bindings"))
		}
		seen := map[string]bool{}
		for _, binding := range prog.Strings {
			if !validLabel(binding.Name) {
				return ErrShape(f("'%v' is not a usable label", binding.Name))
			}
			if seen[binding.Name] {
				return ErrShape(f("duplicate binding for '%v'", binding.Name))
			}
			seen[binding.Name] = true
			if len(binding.Value) == 0 {
				return ErrShape(f("string '%v' is empty", binding.Name))
			}
			if binding.Register != isa.REG_R1 {
				return ErrShape(f("string '%v' must be held in r1", binding.Name))
			}
		}
		for _, call := range prog.Calls {
			switch call.Service {
			case isa.SVC_WRITE:
				if _, ok := prog.binding(call.Argument); !ok {
					return ErrBinding(call.Argument)
				}
			case isa.SVC_EXIT:
			default:
				return isa.ErrService(call.Service)
			}
		}
		if prog.Exit != prog.Return {
			return ErrShape(f("exit value %v and return value %v differ", prog.Exit, prog.Return))
		}
	case KIND_LOOP_SUM:
		loop := prog.LoopSum
		if loop == nil {
			return ErrShape(f("loop program without loop"))
		}
		if err = checkInts(loop.Accumulator, loop.Counter); err != nil {
			return
		}
		if loop.Accumulator.Register != isa.REG_R1 || loop.Counter.Register != isa.REG_R2 {
			return ErrShape(f("accumulator must be in r1 and counter in r2"))
		}
	case KIND_PI_TEST:
		pi := prog.PiTest
		if pi == nil {
			return ErrShape(f("pi program without bindings"))
		}
		if err = checkInts(pi.Numerator, pi.Denominator, pi.Scale); err != nil {
			return
		}
		if pi.Numerator.Register != isa.REG_R1 || pi.Denominator.Register != isa.REG_R2 || pi.Scale.Register != isa.REG_R3 {
			return ErrShape(f("numerator, denominator and scale must be in r1, r2 and r3"))
		}
		if pi.Denominator.Value == 0 {
			return ErrShape(f("denominator must be non-zero"))
		}
	default:
		return ErrShape(prog.Kind.String())
	}

	return
}
