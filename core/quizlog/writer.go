package quizlog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// preambleLen is MAGIC(4) + VERSION(2) + FLAGS(2) + BODY_LEN(4).
const preambleLen = 12

// Write writes t to w and returns the BLAKE2b-256 digest of the body.
// The Version field is always written as the current Version.
func Write(w io.Writer, t *Transcript) ([32]byte, error) {
	body, err := marshalBody(t)
	if err != nil {
		return [32]byte{}, err
	}
	if uint64(len(body)) > math.MaxUint32 {
		return [32]byte{}, fmt.Errorf("body length %d exceeds maximum %d", len(body), uint32(math.MaxUint32))
	}

	digest := blake2b.Sum256(body)

	var preamble bytes.Buffer
	preamble.Grow(preambleLen)
	preamble.WriteString(Magic)
	if err := binary.Write(&preamble, binary.LittleEndian, Version); err != nil {
		return [32]byte{}, err
	}
	if err := binary.Write(&preamble, binary.LittleEndian, uint16(0)); err != nil {
		return [32]byte{}, err
	}
	if err := binary.Write(&preamble, binary.LittleEndian, uint32(len(body))); err != nil {
		return [32]byte{}, err
	}

	if _, err := w.Write(preamble.Bytes()); err != nil {
		return [32]byte{}, fmt.Errorf("write preamble: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return [32]byte{}, fmt.Errorf("write body: %w", err)
	}
	return digest, nil
}

// marshalBody produces the deterministic CBOR encoding of t.
func marshalBody(t *Transcript) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	body := *t
	body.Version = Version
	data, err := encMode.Marshal(&body)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}
