package analyze

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/ezrec/aurc/manifest"
)

// Report is the result of analyzing one assembled manifest.
type Report struct {
	Labels    []Label
	Transfers []Transfer
}

// Analyze sorts the label table and scans the runs for transfers.
func (sc *Scanner) Analyze(runs []manifest.Run, labels map[string]int) *Report {
	return &Report{
		Labels:    Labels(labels),
		Transfers: sc.Scan(runs),
	}
}

// Analyze analyzes with the default markers and limit.
func Analyze(runs []manifest.Run, labels map[string]int) *Report {
	sc := &Scanner{}
	return sc.Analyze(runs, labels)
}

// WriteText writes the label block followed by the transfer block.
func (rep *Report) WriteText(w io.Writer) (err error) {
	pr := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pr("Labels:\n--------\n")
	for _, label := range rep.Labels {
		pr("%-24s 0x%04X\n", label.Name, label.Offset)
	}

	pr("\nControl Transfers:\n-------------------\n")
	for _, tr := range rep.Transfers {
		pr("0x%04X %-4s %v\n", tr.Offset, tr.Mnemonic, tr.Status())
	}

	return
}

// JSONLabel is a label entry of the JSON report.
type JSONLabel struct {
	Name   string `json:"name" jsonschema:"title=Name,description=Label name"`
	Offset int    `json:"offset" jsonschema:"title=Offset,description=Image offset of the label,minimum=0"`
}

// JSONTransfer is a transfer entry of the JSON report.
type JSONTransfer struct {
	Offset       int      `json:"offset" jsonschema:"title=Offset,description=Image offset of the marker byte,minimum=0"`
	Mnemonic     string   `json:"mnemonic" jsonschema:"title=Mnemonic"`
	State        string   `json:"state" jsonschema:"title=State,enum=pending,enum=resolved"`
	Displacement int32    `json:"displacement" jsonschema:"title=Displacement,description=Signed 32-bit displacement"`
	Target       *int     `json:"target,omitempty" jsonschema:"title=Target,description=Destination offset of a resolved transfer"`
	TargetLabels []string `json:"target_labels,omitempty" jsonschema:"title=Target Labels,description=Labels naming the destination offset"`
	Line         int      `json:"line,omitempty" jsonschema:"title=Line,description=Manifest line of the run holding the transfer"`
}

// JSONReport is the machine readable report.
type JSONReport struct {
	Header    string         `json:"header,omitempty" jsonschema:"title=Header,description=Manifest header name"`
	Labels    []JSONLabel    `json:"labels" jsonschema:"title=Labels,description=Labels ascending by offset"`
	Transfers []JSONTransfer `json:"transfers" jsonschema:"title=Control Transfers,description=Transfer candidates in scan order"`
}

// JSON converts the report for encoding.
func (rep *Report) JSON(header string) (out JSONReport) {
	out = JSONReport{
		Header:    header,
		Labels:    make([]JSONLabel, 0, len(rep.Labels)),
		Transfers: make([]JSONTransfer, 0, len(rep.Transfers)),
	}

	for _, label := range rep.Labels {
		out.Labels = append(out.Labels, JSONLabel{Name: label.Name, Offset: label.Offset})
	}

	for _, tr := range rep.Transfers {
		entry := JSONTransfer{
			Offset:       tr.Offset,
			Mnemonic:     tr.Mnemonic,
			State:        tr.State.String(),
			Displacement: tr.Displacement,
			Line:         tr.LineNo,
		}
		if target, ok := tr.Target(); ok {
			entry.Target = &target
			entry.TargetLabels = LabelAt(rep.Labels, target)
		}
		out.Transfers = append(out.Transfers, entry)
	}

	return
}

// WriteJSON writes the report as indented JSON.
func (rep *Report) WriteJSON(w io.Writer, header string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep.JSON(header))
}

// Schema returns the JSON schema of JSONReport.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	return reflector.Reflect(&JSONReport{})
}
