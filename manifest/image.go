package manifest

import (
	"io"
	"slices"
)

// Run is the content written by one directive.
type Run struct {
	Offset int    // Image offset of the first byte.
	Data   []byte // Bytes as written.
	LineNo int    // Manifest line of the directive.
}

// End returns the offset just past the run.
func (run Run) End() int {
	return run.Offset + len(run.Data)
}

// Image is the result of assembling one manifest.
type Image struct {
	Header string         // Name given by the header directive.
	Bytes  []byte         // Zero-extended image contents.
	Labels map[string]int // Label offsets.
	Runs   []Run          // Content runs, in manifest order.
}

// RunAt finds the last run covering offset. Later runs win, matching the
// image contents when an org moves backwards and overwrites.
func (img *Image) RunAt(offset int) (run Run, ok bool) {
	for _, candidate := range slices.Backward(img.Runs) {
		if offset >= candidate.Offset && offset < candidate.End() {
			run = candidate
			ok = true
			break
		}
	}

	return
}

// WriteTo writes the raw image.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	written, err := w.Write(img.Bytes)
	n = int64(written)
	return
}
