package analyze

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aurc/manifest"
)

const sampleManifest = `header sample
org 0x0000
label main
bytes 0xE800000000
pad 0x0003
label target
bytes 0xE910000000
u32 0xE8000000
`

func sampleReport(t *testing.T) (*manifest.Image, *Report) {
	t.Helper()

	asm := &manifest.Assembler{}
	img, err := asm.Parse(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatal(err)
	}

	return img, Analyze(img.Runs, img.Labels)
}

func TestReportText(t *testing.T) {
	assert := assert.New(t)

	_, rep := sampleReport(t)

	var buf bytes.Buffer
	assert.NoError(rep.WriteText(&buf))

	expected := strings.Join([]string{
		"Labels:",
		"--------",
		"main                     0x0000",
		"target                   0x0008",
		"",
		"Control Transfers:",
		"-------------------",
		"0x0000 call pending",
		"0x0008 jmp  disp=0x00000010 (16)",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())
}

func TestReportJSON(t *testing.T) {
	assert := assert.New(t)

	img, rep := sampleReport(t)

	var buf bytes.Buffer
	assert.NoError(rep.WriteJSON(&buf, img.Header))

	var out JSONReport
	assert.NoError(json.Unmarshal(buf.Bytes(), &out))

	assert.Equal("sample", out.Header)
	assert.Equal([]JSONLabel{{Name: "main", Offset: 0}, {Name: "target", Offset: 8}}, out.Labels)
	if assert.Len(out.Transfers, 2) {
		assert.Equal("pending", out.Transfers[0].State)
		assert.Nil(out.Transfers[0].Target)
		assert.Equal(4, out.Transfers[0].Line)

		assert.Equal("resolved", out.Transfers[1].State)
		assert.Equal(int32(16), out.Transfers[1].Displacement)
		if assert.NotNil(out.Transfers[1].Target) {
			assert.Equal(29, *out.Transfers[1].Target)
		}
		assert.Nil(out.Transfers[1].TargetLabels)
	}
}

func TestReportJSONTargetLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &manifest.Assembler{}
	img, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"label main",
		"bytes 0xE903000000",
		"bytes 0x000000",
		"label next",
		"label also",
		"halt",
	}, "\n")))
	if !assert.NoError(err) {
		return
	}

	out := Analyze(img.Runs, img.Labels).JSON(img.Header)
	if assert.Len(out.Transfers, 1) {
		if assert.NotNil(out.Transfers[0].Target) {
			assert.Equal(8, *out.Transfers[0].Target)
		}
		assert.Equal([]string{"also", "next"}, out.Transfers[0].TargetLabels)
	}
}

func TestReportEmptyJSON(t *testing.T) {
	assert := assert.New(t)

	rep := Analyze(nil, nil)

	var buf bytes.Buffer
	assert.NoError(rep.WriteJSON(&buf, ""))
	assert.JSONEq(`{"labels": [], "transfers": []}`, buf.String())
}

func TestSchema(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(Schema())
	assert.NoError(err)
	assert.Contains(string(data), `"transfers"`)
	assert.Contains(string(data), `"pending"`)
}
