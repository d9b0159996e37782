package lower

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aurc/analyze"
	"github.com/ezrec/aurc/isa"
	"github.com/ezrec/aurc/manifest"
)

func helloProgram() *Program {
	return &Program{
		Kind: KIND_STRING_PRINT,
		Strings: []StringBinding{
			{Name: "msg", Value: "Hello\n", Register: isa.REG_R1},
		},
		Calls: []ServiceCall{
			{Service: isa.SVC_WRITE, Argument: "msg"},
			{Service: isa.SVC_EXIT},
		},
	}
}

func loopProgram() *Program {
	return &Program{
		Kind: KIND_LOOP_SUM,
		LoopSum: &LoopSum{
			Accumulator: IntBinding{Name: "total", Value: 0, Register: isa.REG_R1},
			Counter:     IntBinding{Name: "n", Value: 10, Register: isa.REG_R2},
		},
	}
}

func piProgram() *Program {
	return &Program{
		Kind: KIND_PI_TEST,
		PiTest: &PiTest{
			Numerator:   IntBinding{Name: "num", Value: 355, Register: isa.REG_R1},
			Denominator: IntBinding{Name: "den", Value: 113, Register: isa.REG_R2},
			Scale:       IntBinding{Name: "scale", Value: 100, Register: isa.REG_R3},
			Result:      "pi",
		},
	}
}

func assemble(t *testing.T, mf Manifest) *manifest.Image {
	t.Helper()

	asm := &manifest.Assembler{Policy: manifest.LABEL_REJECT}
	img, err := asm.Parse(strings.NewReader(mf.String()))
	if err != nil {
		t.Fatalf("assemble: %v\n%v", err, mf)
	}
	return img
}

func TestLowerStringPrint(t *testing.T) {
	assert := assert.New(t)

	mf, err := Lower(helloProgram())
	assert.NoError(err)
	assert.Equal(Manifest{
		"header minimal_isa",
		"org 0x0000",
		"label main",
		"bytes 0x0101FE0000000000  # mov r1, #addr(<label>)  ; msg",
		"bytes 0x0B01010000000000  # svc write  ; msg(stdout)",
		"bytes 0x0100FF0000000000  # mov r0, #0",
		"bytes 0x0B02000000000000  # svc exit",
		"halt",
		"label msg",
		`ascii "Hello\n"`,
		"pad 0x0010",
	}, mf)

	img := assemble(t, mf)
	assert.Equal("minimal_isa", img.Header)
	assert.Equal(map[string]int{"main": 0, "msg": 40}, img.Labels)
	assert.Equal(40+6+STRING_PAD, len(img.Bytes))
	assert.Equal([]byte("Hello\n"), img.Bytes[40:46])
}

func TestLowerStringPrintImplicitExit(t *testing.T) {
	assert := assert.New(t)

	prog := helloProgram()
	prog.Calls = prog.Calls[:1]
	prog.Exit = 3
	prog.Return = 3

	mf, err := Lower(prog)
	assert.NoError(err)
	assert.Contains(mf, "bytes 0x0100FF0000000003  # mov r0, #3")
	assert.Contains(mf, "bytes 0x0B02000000000000  # svc exit")
}

func TestLowerLoopSum(t *testing.T) {
	assert := assert.New(t)

	mf, err := Lower(loopProgram())
	assert.NoError(err)
	assert.Equal(Manifest{
		"header minimal_isa",
		"org 0x0000",
		"label main",
		"bytes 0x0101FF0000000000  # mov r1, #0  ; total",
		"bytes 0x0102FF000000000A  # mov r2, #10  ; n",
		"label loop",
		"bytes 0x0401010200000000  # add r1, r1, r2  ; total += n",
		"bytes 0x050202FF00000001  # sub r2, r2, #1  ; n -= 1",
		"bytes 0x0602FF0000000000  # cmp r2, #0",
		"bytes 0x0801FE0000000000  # cjmp eq, <label>  ; exit",
		"bytes 0x07FE000000000000  # jmp <label>  ; loop",
		"label exit",
		"bytes 0x0100010000000000  # mov r0, r1",
		"bytes 0x0B02000000000000  # svc exit",
		"halt",
	}, mf)

	img := assemble(t, mf)
	assert.Equal(map[string]int{"main": 0, "loop": 16, "exit": 56}, img.Labels)
	assert.Equal((9+1)*isa.WORD_SIZE, len(img.Bytes))
}

func TestLowerPiTest(t *testing.T) {
	assert := assert.New(t)

	mf, err := Lower(piProgram())
	assert.NoError(err)
	assert.Equal(Manifest{
		"header minimal_isa",
		"org 0x0000",
		"label main",
		"bytes 0x0101FF0000000163  # mov r1, #355  ; num",
		"bytes 0x0102FF0000000071  # mov r2, #113  ; den",
		"bytes 0x0103FF0000000064  # mov r3, #100  ; scale",
		"bytes 0x0D04010300000000  # mul r4, r1, r3",
		"bytes 0x0F06040200000000  # rem r6, r4, r2",
		"bytes 0x0E05040200000000  # div r5, r4, r2  ; pi",
		"bytes 0x0100050000000000  # mov r0, r5",
		"bytes 0x0B02000000000000  # svc exit",
		"halt",
	}, mf)

	img := assemble(t, mf)
	assert.Equal((8+1)*isa.WORD_SIZE, len(img.Bytes))
}

func TestLowerAnalyze(t *testing.T) {
	assert := assert.New(t)

	for _, prog := range []*Program{helloProgram(), loopProgram(), piProgram()} {
		mf, err := Lower(prog)
		assert.NoError(err, prog.Kind)
		img := assemble(t, mf)

		// Lowered code never contains the x86 style marker bytes.
		report := analyze.Analyze(img.Runs, img.Labels)
		assert.Empty(report.Transfers, prog.Kind)
		assert.Equal(len(img.Labels), len(report.Labels), prog.Kind)
	}
}

func TestLowerErrors(t *testing.T) {
	table := [...]struct {
		name   string
		modify func(prog *Program) *Program
		is     error
	}{
		{"kind", func(prog *Program) *Program { prog.Kind = Kind(9); return prog }, ErrUnsupported},
		{"no-strings", func(prog *Program) *Program { prog.Strings = nil; return prog }, ErrUnsupported},
		{"unbound", func(prog *Program) *Program { prog.Calls[0].Argument = "other"; return prog }, ErrUnsupported},
		{"register", func(prog *Program) *Program { prog.Strings[0].Register = isa.REG_R2; return prog }, ErrUnsupported},
		{"empty", func(prog *Program) *Program { prog.Strings[0].Value = ""; return prog }, ErrUnsupported},
		{"label", func(prog *Program) *Program { prog.Strings[0].Name = "main"; return prog }, ErrUnsupported},
		{"duplicate", func(prog *Program) *Program {
			prog.Strings = append(prog.Strings, prog.Strings[0])
			return prog
		}, ErrUnsupported},
		{"service", func(prog *Program) *Program { prog.Calls[1].Service = isa.Service(7); return prog }, isa.ErrUnsupported},
		{"exit-return", func(prog *Program) *Program { prog.Exit = 1; return prog }, ErrUnsupported},
		{"exit-range", func(prog *Program) *Program {
			prog.Exit = 1 << 40
			prog.Return = prog.Exit
			return prog
		}, isa.ErrRange},
		{"loop-missing", func(prog *Program) *Program { prog.Kind = KIND_LOOP_SUM; return prog }, ErrUnsupported},
		{"pi-missing", func(prog *Program) *Program { prog.Kind = KIND_PI_TEST; return prog }, ErrUnsupported},
		{"loop-registers", func(*Program) *Program {
			prog := loopProgram()
			prog.LoopSum.Counter.Register = isa.REG_R3
			return prog
		}, ErrUnsupported},
		{"loop-r0", func(*Program) *Program {
			prog := loopProgram()
			prog.LoopSum.Accumulator.Register = isa.REG_R0
			return prog
		}, ErrUnsupported},
		{"loop-invalid-register", func(*Program) *Program {
			prog := loopProgram()
			prog.LoopSum.Counter.Register = isa.Register(8)
			return prog
		}, isa.ErrRange},
		{"loop-range", func(*Program) *Program {
			prog := loopProgram()
			prog.LoopSum.Counter.Value = -1 << 33
			return prog
		}, isa.ErrRange},
		{"pi-zero", func(*Program) *Program {
			prog := piProgram()
			prog.PiTest.Denominator.Value = 0
			return prog
		}, ErrUnsupported},
		{"pi-names", func(*Program) *Program {
			prog := piProgram()
			prog.PiTest.Scale.Name = "num"
			return prog
		}, ErrUnsupported},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			mf, err := Lower(entry.modify(helloProgram()))
			assert.Nil(t, mf)
			assert.True(t, errors.Is(err, entry.is), "%v", err)
		})
	}
}

func TestLowerEncodeError(t *testing.T) {
	assert := assert.New(t)

	prog := loopProgram()
	prog.LoopSum.Counter.Value = 1 << 32

	_, err := Lower(prog)
	var encode *ErrEncode
	if assert.ErrorAs(err, &encode) {
		assert.Equal(f("instruction %v", 2), encode.What)
		assert.ErrorIs(encode, isa.ErrRange)
	}
}

func TestEscape(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(`"a\\b\"c\n\r\t\0"`, escape("a\\b\"c\n\r\t\x00"))

	// Escaped strings survive the assembler unchanged.
	mf := Manifest{"ascii " + escape("x # y\n\"z\"")}
	img := assemble(t, mf)
	assert.Equal([]byte("x # y\n\"z\""), img.Bytes)
}

func TestManifestWriteTo(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	n, err := Manifest{"org 0x0000", "halt"}.WriteTo(&buff)
	assert.NoError(err)
	assert.Equal(int64(16), n)
	assert.Equal("org 0x0000\nhalt\n", buff.String())
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("string_print", KIND_STRING_PRINT.String())
	assert.Equal("loop_sum", KIND_LOOP_SUM.String())
	assert.Equal("pi_test", KIND_PI_TEST.String())
	assert.Equal("Kind(0)", Kind(0).String())
}
