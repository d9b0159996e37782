// Package manifest implements the assembler for Aurora manifests.
//
// A manifest is a line oriented list of directives that lays out a byte
// image: `org` and `pad` move the current offset, `bytes`, `ascii`, `halt`
// and the little-endian `u16`/`u32`/`u64` scalars write content, and `label`
// names the current offset. A `#` starts a comment.
//
// Assembly is a single pass and all-or-nothing. On success the assembler
// returns an Image holding the zero-extended bytes, the label table, and one
// Run per content-producing directive; on failure it returns only the error,
// which names the offending line.
package manifest
