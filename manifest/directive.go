package manifest

import (
	"strings"
	"unicode"
)

// Directive is a manifest directive kind.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIR_HEADER = Directive(0)  // header
	DIR_ORG    = Directive(1)  // org
	DIR_PAD    = Directive(2)  // pad
	DIR_LABEL  = Directive(3)  // label
	DIR_BYTES  = Directive(4)  // bytes
	DIR_U16    = Directive(5)  // u16
	DIR_U32    = Directive(6)  // u32
	DIR_U64    = Directive(7)  // u64
	DIR_REF    = Directive(8)  // ref
	DIR_ASCII  = Directive(9)  // ascii
	DIR_HALT   = Directive(10) // halt
)

// directiveMap maps directive names.
var directiveMap = func() map[string]Directive {
	dirs := map[string]Directive{}
	for dir := DIR_HEADER; dir <= DIR_HALT; dir++ {
		dirs[dir.String()] = dir
	}
	return dirs
}()

// ParseDirective looks up a directive by name.
func ParseDirective(name string) (dir Directive, err error) {
	dir, ok := directiveMap[name]
	if !ok {
		err = ErrDirective(name)
	}
	return
}

// Arity describes the arguments the directive takes.
func (dir Directive) Arity() string {
	switch dir {
	case DIR_HALT:
		return "no arguments"
	case DIR_ORG, DIR_PAD:
		return "one hex value"
	case DIR_LABEL:
		return "one name"
	case DIR_BYTES, DIR_U16, DIR_U32, DIR_U64:
		return "one hex literal"
	case DIR_ASCII:
		return "one quoted string"
	}
	return "any arguments"
}

// Size returns the width in bytes of a scalar directive, or zero.
func (dir Directive) Size() int {
	switch dir {
	case DIR_U16:
		return 2
	case DIR_U32:
		return 4
	case DIR_U64:
		return 8
	}
	return 0
}

// stripComment removes a trailing # comment, ignoring any # inside a
// double quoted string.
func stripComment(text string) string {
	quoted := false
	for n := 0; n < len(text); n++ {
		switch text[n] {
		case '\\':
			if quoted {
				n++
			}
		case '"':
			quoted = !quoted
		case '#':
			if !quoted {
				return text[:n]
			}
		}
	}
	return text
}

// splitLine returns the directive word and the remaining text.
func splitLine(line string) (word string, rest string) {
	n := strings.IndexFunc(line, unicode.IsSpace)
	if n < 0 {
		return line, ""
	}
	return line[:n], strings.TrimSpace(line[n:])
}

// parseString decodes an ascii directive string.
func parseString(text string) (data []byte, err error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		err = &ErrParseString{Text: text, Reason: f("missing quotes")}
		return
	}

	body := text[1 : len(text)-1]
	for n := 0; n < len(body); n++ {
		ch := body[n]
		switch ch {
		case '"':
			err = &ErrParseString{Text: text, Reason: f("unescaped quote")}
			return
		case '\\':
			n++
			if n == len(body) {
				err = &ErrParseString{Text: text, Reason: f("incomplete escape sequence")}
				return
			}
			switch body[n] {
			case '\\':
				ch = '\\'
			case '"':
				ch = '"'
			case 'n':
				ch = '\n'
			case 'r':
				ch = '\r'
			case 't':
				ch = '\t'
			case '0':
				ch = 0
			default:
				err = &ErrParseString{Text: text, Reason: f("unsupported escape \\%c", body[n])}
				return
			}
		}
		data = append(data, ch)
	}

	if len(data) == 0 {
		err = ErrEmptyLiteral
	}

	return
}
