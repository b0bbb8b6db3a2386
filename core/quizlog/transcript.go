// Package quizlog reads and writes recorded quiz sessions.
//
// File layout (little-endian):
//
//	MAGIC "RCQZ" (4) | VERSION (2) | FLAGS (2) | BODY_LEN (4) | BODY
//
// BODY is the canonical CBOR encoding of a Transcript, so equal transcripts
// always produce identical bytes and identical BLAKE2b-256 digests.
package quizlog

import (
	"github.com/aledsdavies/rescode/core/colorcode"
)

const (
	// Magic is the file magic number "RCQZ" (4 bytes)
	Magic = "RCQZ"

	// Version is the format version (uint16, little-endian)
	Version uint16 = 0x0001
)

// Transcript is one recorded quiz session.
type Transcript struct {
	Version uint16  `cbor:"version"`
	Mode    string  `cbor:"mode"`
	Seed    int64   `cbor:"seed"`
	Entries []Entry `cbor:"entries"`
}

// Entry is one answered round.
type Entry struct {
	Round    int            `cbor:"round"`
	Prompt   string         `cbor:"prompt"`
	Answer   string         `cbor:"answer"`
	Correct  bool           `cbor:"correct"`
	Required colorcode.Spec `cbor:"required"`
	Entered  colorcode.Spec `cbor:"entered"`
}

// Score returns the number of correct entries and the number of entries.
func (t *Transcript) Score() (correct, total int) {
	for _, e := range t.Entries {
		if e.Correct {
			correct++
		}
	}
	return correct, len(t.Entries)
}
