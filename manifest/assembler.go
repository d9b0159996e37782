// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package manifest

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// DEFAULT_MAX_SIZE is the image limit used when Assembler.MaxSize is zero.
	DEFAULT_MAX_SIZE = 16 << 20

	// lineSlack is the room a line may take beyond the hex digits of an
	// image-sized literal, for the directive name and a comment.
	lineSlack = 4096
)

// haltWord is the encoded HALT instruction emitted by the halt directive.
var haltWord = [8]byte{0x0c, 0, 0, 0, 0, 0, 0, 0}

// LabelPolicy selects how a redeclared label is handled: with
// LABEL_OVERWRITE the last declaration wins, with LABEL_REJECT a
// redeclaration is an error.
type LabelPolicy int

//go:generate go tool stringer -linecomment -type=LabelPolicy
const (
	LABEL_OVERWRITE = LabelPolicy(0) // overwrite
	LABEL_REJECT    = LabelPolicy(1) // reject
)

// ParseLabelPolicy parses a policy name.
func ParseLabelPolicy(name string) (policy LabelPolicy, err error) {
	switch name {
	case LABEL_OVERWRITE.String():
		policy = LABEL_OVERWRITE
	case LABEL_REJECT.String():
		policy = LABEL_REJECT
	default:
		err = fmt.Errorf("%w: label policy '%v'", ErrUnsupported, name)
	}
	return
}

// Assembler is a single pass manifest assembler. It holds configuration
// only, so one Assembler may parse any number of manifests.
type Assembler struct {
	Policy  LabelPolicy // Duplicate label handling.
	MaxSize int         // Image size limit, DEFAULT_MAX_SIZE if zero.
	Logger  *log.Logger // If set, traces each directive at debug level.
}

// pass is the state of one assembly.
type pass struct {
	*Assembler
	image  Image
	offset int
	lineno int
}

// Parse assembles a manifest. No image is returned on error.
func (asm *Assembler) Parse(input io.Reader) (img *Image, err error) {
	var line string

	state := &pass{
		Assembler: asm,
		image: Image{
			Labels: map[string]int{},
		},
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), state.maxLine())

	defer func() {
		if err != nil {
			img = nil
			err = &ErrSyntax{LineNo: state.lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		state.lineno += 1

		line = strings.TrimSpace(stripComment(text))
		if len(line) == 0 {
			continue
		}

		err = state.parseLine(line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The line that could not be read.
		state.lineno += 1
		line = ""
		if errors.Is(err, bufio.ErrTooLong) {
			err = ErrLineSize(state.maxLine())
		}
		return
	}

	img = &state.image
	if img.Bytes == nil {
		img.Bytes = []byte{}
	}

	return
}

// limit returns the image size limit.
func (state *pass) limit() int {
	if state.MaxSize > 0 {
		return state.MaxSize
	}
	return DEFAULT_MAX_SIZE
}

// maxLine returns the longest accepted manifest line, enough for a bytes
// literal covering the whole image.
func (state *pass) maxLine() int {
	return 2*state.limit() + lineSlack
}

// extend zero-extends the image up to size bytes.
func (state *pass) extend(size uint64) (err error) {
	if size > uint64(state.limit()) {
		err = &ErrImageSize{Offset: size, Limit: state.limit()}
		return
	}

	if grow := int(size) - len(state.image.Bytes); grow > 0 {
		state.image.Bytes = append(state.image.Bytes, make([]byte, grow)...)
	}

	return
}

// write places data at the current offset and records a run.
func (state *pass) write(data []byte) (err error) {
	err = state.extend(uint64(state.offset) + uint64(len(data)))
	if err != nil {
		return
	}

	copy(state.image.Bytes[state.offset:], data)
	state.image.Runs = append(state.image.Runs, Run{
		Offset: state.offset,
		Data:   data,
		LineNo: state.lineno,
	})
	state.offset += len(data)

	return
}

// hexDigits strips the mandatory 0x prefix.
func hexDigits(word string) (digits string, err error) {
	digits, ok := strings.CutPrefix(word, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(word, "0X")
	}
	if !ok {
		err = ErrHexPrefix(word)
		return
	}
	if len(digits) == 0 {
		err = ErrParseHex(word)
	}
	return
}

// valueOf parses a 0x prefixed unsigned hex value.
func valueOf(word string) (value uint64, err error) {
	digits, err := hexDigits(word)
	if err != nil {
		return
	}

	value, err = strconv.ParseUint(digits, 16, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = &ErrScalarRange{Directive: DIR_U64, Literal: word}
	} else if err != nil {
		err = ErrParseHex(word)
	}

	return
}

// bytesOf decodes a 0x prefixed hex byte string, in the order written.
func bytesOf(word string) (data []byte, err error) {
	digits, err := hexDigits(word)
	if err != nil {
		return
	}

	data, err = hex.DecodeString(digits)
	if errors.Is(err, hex.ErrLength) {
		err = ErrOddLength
	} else if err != nil {
		err = ErrParseHex(word)
	}

	return
}

// scalarOf serializes a hex value least significant byte first.
func scalarOf(dir Directive, word string) (data []byte, err error) {
	value, err := valueOf(word)
	if err != nil {
		return
	}

	size := dir.Size()
	if size < 8 && value>>(8*size) != 0 {
		err = &ErrScalarRange{Directive: dir, Literal: word}
		return
	}

	data = binary.LittleEndian.AppendUint64(nil, value)[:size]
	return
}

// parseLine evaluates a single comment-free, non-empty line.
func (state *pass) parseLine(line string) (err error) {
	name, rest := splitLine(line)

	dir, err := ParseDirective(name)
	if err != nil {
		return
	}

	if state.Logger != nil {
		state.Logger.Debug("directive", "line", state.lineno, "offset", fmt.Sprintf("%#04x", state.offset), "text", line)
	}

	args := strings.Fields(rest)

	switch dir {
	case DIR_HEADER:
		state.image.Header = strings.Join(args, " ")
		return
	case DIR_REF:
		return
	case DIR_ASCII:
		var data []byte
		data, err = parseString(rest)
		if err != nil {
			return
		}
		return state.write(data)
	case DIR_HALT:
		if len(args) != 0 {
			err = &ErrArgs{Directive: dir, Got: len(args)}
			return
		}
		return state.write(append([]byte(nil), haltWord[:]...))
	}

	if len(args) != 1 {
		err = &ErrArgs{Directive: dir, Got: len(args)}
		return
	}
	arg := args[0]

	switch dir {
	case DIR_ORG:
		var value uint64
		value, err = valueOf(arg)
		if err != nil {
			return
		}
		err = state.extend(value)
		if err != nil {
			return
		}
		state.offset = int(value)
	case DIR_PAD:
		var value uint64
		value, err = valueOf(arg)
		if err != nil {
			return
		}
		end := uint64(state.offset) + value
		if end < value {
			err = &ErrImageSize{Offset: value, Limit: state.limit()}
			return
		}
		err = state.extend(end)
		if err != nil {
			return
		}
		state.offset = int(end)
	case DIR_LABEL:
		_, exists := state.image.Labels[arg]
		if exists && state.Policy == LABEL_REJECT {
			err = ErrLabelDuplicate(arg)
			return
		}
		state.image.Labels[arg] = state.offset
	case DIR_BYTES:
		var data []byte
		data, err = bytesOf(arg)
		if err != nil {
			return
		}
		err = state.write(data)
	case DIR_U16, DIR_U32, DIR_U64:
		var data []byte
		data, err = scalarOf(dir, arg)
		if err != nil {
			return
		}
		err = state.write(data)
	}

	return
}
