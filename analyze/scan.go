package analyze

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/aurc/internal"
	"github.com/ezrec/aurc/manifest"
)

const (
	// DEFAULT_LIMIT is the largest displacement magnitude accepted as a
	// real transfer.
	DEFAULT_LIMIT = 0x100000

	// transferSize is the marker byte plus the 32-bit displacement.
	transferSize = 5
)

// Marker is a byte value that starts a transfer candidate.
type Marker struct {
	Byte     byte
	Mnemonic string
}

// DefaultMarkers are the rel32 call and jmp opcodes.
var DefaultMarkers = []Marker{
	{Byte: 0xe8, Mnemonic: "call"},
	{Byte: 0xe9, Mnemonic: "jmp"},
}

// State tags whether a transfer displacement is known.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_PENDING  = State(0) // pending
	STATE_RESOLVED = State(1) // resolved
)

// Transfer is a control transfer candidate.
type Transfer struct {
	Offset       int    // Image offset of the marker byte.
	Mnemonic     string // Marker mnemonic.
	Displacement int32  // Signed displacement following the marker.
	State        State  // Pending if the displacement is zero.
	LineNo       int    // Manifest line of the run holding the marker.
}

// Target returns the destination offset of a resolved transfer, relative
// to the end of the candidate.
func (tr Transfer) Target() (target int, ok bool) {
	if tr.State != STATE_RESOLVED {
		return
	}
	return tr.Offset + transferSize + int(tr.Displacement), true
}

// Status is the report text for the displacement.
func (tr Transfer) Status() string {
	if tr.State == STATE_PENDING {
		return "pending"
	}
	return fmt.Sprintf("disp=0x%08X (%d)", uint32(tr.Displacement), tr.Displacement)
}

// Scanner finds transfer candidates in manifest runs.
type Scanner struct {
	Markers []Marker // Marker bytes, DefaultMarkers if nil.
	Limit   int64    // Largest accepted |displacement|, DEFAULT_LIMIT if zero.
}

// table builds the marker lookup.
func (sc *Scanner) table() (table [256]string) {
	markers := sc.Markers
	if markers == nil {
		markers = DefaultMarkers
	}
	for _, marker := range markers {
		table[marker.Byte] = marker.Mnemonic
	}
	return
}

// limit returns the displacement magnitude limit.
func (sc *Scanner) limit() int64 {
	if sc.Limit > 0 {
		return sc.Limit
	}
	return DEFAULT_LIMIT
}

// runTransfers iterates over the candidates in one run.
func runTransfers(table *[256]string, limit int64, run manifest.Run) iter.Seq[Transfer] {
	return func(yield func(Transfer) bool) {
		data := run.Data
		for i := 0; i < len(data); {
			mnemonic := table[data[i]]
			if len(mnemonic) == 0 {
				i++
				continue
			}

			if i+4 >= len(data) {
				// Too short for a displacement, and so is the rest.
				return
			}

			disp := int32(binary.LittleEndian.Uint32(data[i+1 : i+transferSize]))
			if magnitude := int64(disp); magnitude > limit || -magnitude > limit {
				// Most likely an immediate that happens to hold a
				// marker byte. Resume at the very next byte.
				i++
				continue
			}

			state := STATE_RESOLVED
			if disp == 0 {
				state = STATE_PENDING
			}

			transfer := Transfer{
				Offset:       run.Offset + i,
				Mnemonic:     mnemonic,
				Displacement: disp,
				State:        state,
				LineNo:       run.LineNo,
			}
			if !yield(transfer) {
				return
			}

			i += transferSize
		}
	}
}

// Transfers iterates over the candidates in each run, in run order. Only
// the bytes of a run are scanned; gaps left by org and pad never are.
func (sc *Scanner) Transfers(runs []manifest.Run) iter.Seq[Transfer] {
	table := sc.table()
	limit := sc.limit()

	return internal.FlatMap(slices.Values(runs), func(run manifest.Run) iter.Seq[Transfer] {
		return runTransfers(&table, limit, run)
	})
}

// Scan returns all candidates in the runs.
func (sc *Scanner) Scan(runs []manifest.Run) []Transfer {
	return slices.Collect(sc.Transfers(runs))
}
