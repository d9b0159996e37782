package lower

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/aurc/isa"
)

// STRING_PAD is the count of zero bytes padding each string literal.
const STRING_PAD = 0x0010

// Manifest is the text of a manifest, one directive per line.
type Manifest []string

// String joins the manifest lines.
func (mf Manifest) String() string {
	var buff strings.Builder
	mf.WriteTo(&buff)
	return buff.String()
}

// WriteTo writes the manifest lines to w.
func (mf Manifest) WriteTo(w io.Writer) (n int64, err error) {
	for _, line := range mf {
		var count int
		count, err = fmt.Fprintln(w, line)
		n += int64(count)
		if err != nil {
			return
		}
	}
	return
}

// emitter accumulates manifest lines, stopping at the first error.
type emitter struct {
	out     Manifest
	pending isa.Instruction
	words   int
	err     error
}

func (em *emitter) directive(format string, args ...any) {
	if em.err != nil {
		return
	}
	em.out = append(em.out, fmt.Sprintf(format, args...))
}

// code emits an encoded word, commented with its disassembly.
func (em *emitter) code(word isa.Word, err error) *emitter {
	if em.err != nil {
		return em
	}
	em.words++
	if err != nil {
		em.err = &ErrEncode{What: f("instruction %v", em.words), Err: err}
		return em
	}
	em.pending = isa.Instruction{Word: word, Comment: word.String()}
	em.out = append(em.out, em.pending.Directive())
	return em
}

// note annotates the last emitted word.
func (em *emitter) note(format string, args ...any) {
	if em.err != nil || len(em.out) == 0 {
		return
	}
	em.pending.Comment += "  ; " + fmt.Sprintf(format, args...)
	em.out[len(em.out)-1] = em.pending.Directive()
}

// escape quotes a string for the `ascii` directive.
func escape(text string) string {
	var buff strings.Builder
	buff.WriteByte('"')
	for _, b := range []byte(text) {
		switch b {
		case '\\':
			buff.WriteString(`\\`)
		case '"':
			buff.WriteString(`\"`)
		case '\n':
			buff.WriteString(`\n`)
		case '\r':
			buff.WriteString(`\r`)
		case '\t':
			buff.WriteString(`\t`)
		case 0:
			buff.WriteString(`\0`)
		default:
			buff.WriteByte(b)
		}
	}
	buff.WriteByte('"')
	return buff.String()
}

// Lower validates the program and emits its manifest.
func Lower(prog *Program) (mf Manifest, err error) {
	if err = prog.Validate(); err != nil {
		return
	}

	em := &emitter{}
	em.directive("header minimal_isa")
	em.directive("org 0x0000")
	em.directive("label main")

	switch prog.Kind {
	case KIND_STRING_PRINT:
		lowerStringPrint(em, prog)
	case KIND_LOOP_SUM:
		lowerLoopSum(em, prog.LoopSum)
	case KIND_PI_TEST:
		lowerPiTest(em, prog.PiTest)
	}

	if em.err != nil {
		err = em.err
		return
	}

	mf = em.out
	return
}

func lowerStringPrint(em *emitter, prog *Program) {
	exited := false
	for _, call := range prog.Calls {
		switch call.Service {
		case isa.SVC_WRITE:
			binding, _ := prog.binding(call.Argument)
			em.code(isa.MovLabel(binding.Register)).note("%v", binding.Name)
			em.code(isa.Svc(isa.SVC_WRITE)).note("%v(stdout)", call.Argument)
		case isa.SVC_EXIT:
			em.code(isa.MovImm(isa.REG_R0, prog.Exit))
			em.code(isa.Svc(isa.SVC_EXIT))
			exited = true
		}
	}
	if !exited {
		em.code(isa.MovImm(isa.REG_R0, prog.Exit))
		em.code(isa.Svc(isa.SVC_EXIT))
	}
	em.directive("halt")

	for _, binding := range prog.Strings {
		em.directive("label %v", binding.Name)
		em.directive("ascii %v", escape(binding.Value))
		em.directive("pad 0x%04X", STRING_PAD)
	}
}

func lowerLoopSum(em *emitter, loop *LoopSum) {
	acc := loop.Accumulator
	counter := loop.Counter

	em.code(isa.MovImm(acc.Register, acc.Value)).note("%v", acc.Name)
	em.code(isa.MovImm(counter.Register, counter.Value)).note("%v", counter.Name)
	em.directive("label loop")
	em.code(isa.AddRegReg(acc.Register, acc.Register, counter.Register)).note("%v += %v", acc.Name, counter.Name)
	em.code(isa.SubRegImm(counter.Register, counter.Register, 1)).note("%v -= 1", counter.Name)
	em.code(isa.CmpRegImm(counter.Register, 0))
	em.code(isa.CjmpEq()).note("exit")
	em.code(isa.Jmp()).note("loop")
	em.directive("label exit")
	em.code(isa.MovReg(isa.REG_R0, acc.Register))
	em.code(isa.Svc(isa.SVC_EXIT))
	em.directive("halt")
}

func lowerPiTest(em *emitter, pi *PiTest) {
	const (
		scaled    = isa.REG_R4
		quotient  = isa.REG_R5
		remainder = isa.REG_R6
	)

	num := pi.Numerator
	den := pi.Denominator
	scale := pi.Scale

	em.code(isa.MovImm(num.Register, num.Value)).note("%v", num.Name)
	em.code(isa.MovImm(den.Register, den.Value)).note("%v", den.Name)
	em.code(isa.MovImm(scale.Register, scale.Value)).note("%v", scale.Name)
	em.code(isa.MulRegReg(scaled, num.Register, scale.Register))
	em.code(isa.RemRegReg(remainder, scaled, den.Register))
	em.code(isa.DivRegReg(quotient, scaled, den.Register)).note("%v", pi.Result)
	em.code(isa.MovReg(isa.REG_R0, quotient))
	em.code(isa.Svc(isa.SVC_EXIT))
	em.directive("halt")
}
