package manifest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageRunAt(t *testing.T) {
	assert := assert.New(t)

	img := &Image{
		Bytes: make([]byte, 12),
		Runs: []Run{
			{Offset: 0, Data: []byte{1, 2, 3, 4}, LineNo: 3},
			{Offset: 8, Data: []byte{5, 6}, LineNo: 5},
		},
	}

	run, ok := img.RunAt(2)
	assert.True(ok)
	assert.Equal(3, run.LineNo)

	run, ok = img.RunAt(9)
	assert.True(ok)
	assert.Equal(5, run.LineNo)
	assert.Equal(10, run.End())

	_, ok = img.RunAt(5)
	assert.False(ok)

	_, ok = img.RunAt(10)
	assert.False(ok)
}

func TestImageWriteTo(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Bytes: []byte{0, 0, 0x0b, 0x02}}

	var buf bytes.Buffer
	n, err := img.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(4), n)
	assert.Equal([]byte{0, 0, 0x0b, 0x02}, buf.Bytes())
}

func TestDirectiveString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("u32", DIR_U32.String())
	assert.Equal(4, DIR_U32.Size())
	assert.Equal(0, DIR_BYTES.Size())
	assert.Equal("Directive(99)", Directive(99).String())

	dir, err := ParseDirective("halt")
	assert.NoError(err)
	assert.Equal(DIR_HALT, dir)

	_, err = ParseDirective("ascii8")
	assert.Equal(ErrDirective("ascii8"), err)
}
