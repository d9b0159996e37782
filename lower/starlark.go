package lower

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/aurc/isa"
)

// Loader evaluates program description scripts.
//
// A script calls one of the builtins below and assigns the result to the
// global `program`:
//
//	program = string_program({"msg": "Hello\n"}, prints = ["msg"], exit = 0)
//	program = loop_sum(accumulator = ("total", 0), counter = ("n", 10))
//	program = pi_test(numerator = ("num", 355), denominator = ("den", 113), scale = ("scale", 100))
type Loader struct {
	Logger *log.Logger // If set, receives script print() output.
}

// programValue carries a Program through the interpreter.
type programValue struct {
	prog *Program
}

var _ starlark.Value = (*programValue)(nil)

func (pv *programValue) String() string        { return fmt.Sprintf("<program %v>", pv.prog.Kind) }
func (pv *programValue) Type() string          { return "program" }
func (pv *programValue) Freeze()               {}
func (pv *programValue) Truth() starlark.Bool  { return starlark.True }
func (pv *programValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: program") }

// toInt64 converts a Starlark integer.
func toInt64(what string, v starlark.Value) (value int64, err error) {
	st_int, ok := v.(starlark.Int)
	if !ok {
		err = errors.New(f("%v: got %v, want int", what, v.Type()))
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = errors.New(f("%v: %v out of range", what, st_int))
		return
	}
	return
}

// toIntBinding converts a (name, value) tuple.
func toIntBinding(what string, v starlark.Value, reg isa.Register) (binding IntBinding, err error) {
	tuple, ok := v.(starlark.Tuple)
	if !ok || tuple.Len() != 2 {
		err = errors.New(f("%v: want (name, value) tuple", what))
		return
	}
	name, ok := starlark.AsString(tuple[0])
	if !ok {
		err = errors.New(f("%v: name must be a string", what))
		return
	}
	value, err := toInt64(what, tuple[1])
	if err != nil {
		return
	}
	binding = IntBinding{Name: name, Value: value, Register: reg}
	return
}

func builtinStringProgram(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var strings *starlark.Dict
	var prints *starlark.List
	var exit starlark.Value = starlark.MakeInt(0)
	var ret starlark.Value = starlark.None
	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"strings", &strings,
		"prints?", &prints,
		"exit?", &exit,
		"ret?", &ret)
	if err != nil {
		return nil, err
	}

	prog := &Program{Kind: KIND_STRING_PRINT}
	for _, item := range strings.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			return nil, errors.New(f("%v: binding names must be strings", b.Name()))
		}
		value, ok := starlark.AsString(item[1])
		if !ok {
			return nil, errors.New(f("%v: '%v' must be a string", b.Name(), name))
		}
		prog.Strings = append(prog.Strings, StringBinding{Name: name, Value: value, Register: isa.REG_R1})
	}

	if prints != nil {
		for i := range prints.Len() {
			name, ok := starlark.AsString(prints.Index(i))
			if !ok {
				return nil, errors.New(f("%v: prints must name string bindings", b.Name()))
			}
			prog.Calls = append(prog.Calls, ServiceCall{Service: isa.SVC_WRITE, Argument: name})
		}
	}

	prog.Exit, err = toInt64("exit", exit)
	if err != nil {
		return nil, err
	}
	prog.Calls = append(prog.Calls, ServiceCall{Service: isa.SVC_EXIT})

	prog.Return = prog.Exit
	if ret != starlark.None {
		prog.Return, err = toInt64("ret", ret)
		if err != nil {
			return nil, err
		}
	}

	return &programValue{prog: prog}, nil
}

func builtinLoopSum(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var acc, counter starlark.Value
	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"accumulator", &acc,
		"counter", &counter)
	if err != nil {
		return nil, err
	}

	loop := &LoopSum{}
	loop.Accumulator, err = toIntBinding("accumulator", acc, isa.REG_R1)
	if err != nil {
		return nil, err
	}
	loop.Counter, err = toIntBinding("counter", counter, isa.REG_R2)
	if err != nil {
		return nil, err
	}

	return &programValue{prog: &Program{Kind: KIND_LOOP_SUM, LoopSum: loop}}, nil
}

func builtinPiTest(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var num, den, scale starlark.Value
	result := "pi"
	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"numerator", &num,
		"denominator", &den,
		"scale", &scale,
		"result?", &result)
	if err != nil {
		return nil, err
	}

	pi := &PiTest{Result: result}
	pi.Numerator, err = toIntBinding("numerator", num, isa.REG_R1)
	if err != nil {
		return nil, err
	}
	pi.Denominator, err = toIntBinding("denominator", den, isa.REG_R2)
	if err != nil {
		return nil, err
	}
	pi.Scale, err = toIntBinding("scale", scale, isa.REG_R3)
	if err != nil {
		return nil, err
	}

	return &programValue{prog: &Program{Kind: KIND_PI_TEST, PiTest: pi}}, nil
}

// Load evaluates a script and returns the validated program it defines.
// src is passed to the Starlark interpreter, and may be a string, []byte,
// io.Reader, or nil to read filename.
func (ld *Loader) Load(filename string, src any) (prog *Program, err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if ld.Logger != nil {
				ld.Logger.Info(msg, "script", filename)
			}
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"string_program": starlark.NewBuiltin("string_program", builtinStringProgram),
		"loop_sum":       starlark.NewBuiltin("loop_sum", builtinLoopSum),
		"pi_test":        starlark.NewBuiltin("pi_test", builtinPiTest),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	st_prog, ok := dict["program"]
	if !ok {
		err = ErrProgramMissing
		return
	}
	pv, ok := st_prog.(*programValue)
	if !ok {
		err = errors.New(f("'program' is %v, not a program", st_prog.Type()))
		return
	}

	if err = pv.prog.Validate(); err != nil {
		return
	}

	prog = pv.prog
	return
}

// LoadStarlark evaluates a script with a default Loader.
func LoadStarlark(filename string, src any) (*Program, error) {
	ld := &Loader{}
	return ld.Load(filename, src)
}
