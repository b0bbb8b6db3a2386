package quizlog

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// maxBodyLen bounds the body allocation; a thousand rounds fit in well
// under 256KB.
const maxBodyLen = 4 * 1024 * 1024

// Read reads a transcript from r and returns it with the BLAKE2b-256
// digest of its body.
func Read(r io.Reader) (*Transcript, [32]byte, error) {
	var preamble [preambleLen]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read preamble: %w", err)
	}

	magic := string(preamble[0:4])
	if magic != Magic {
		return nil, [32]byte{}, fmt.Errorf("invalid magic: got %q, expected %q", magic, Magic)
	}

	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, [32]byte{}, fmt.Errorf("unsupported version: got 0x%04x, expected 0x%04x", version, Version)
	}

	flags := binary.LittleEndian.Uint16(preamble[6:8])
	if flags != 0 {
		return nil, [32]byte{}, fmt.Errorf("unsupported flags: 0x%04x", flags)
	}

	bodyLen := binary.LittleEndian.Uint32(preamble[8:12])
	if bodyLen > maxBodyLen {
		return nil, [32]byte{}, fmt.Errorf("body length %d exceeds maximum %d", bodyLen, maxBodyLen)
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read body: %w", err)
	}

	decMode, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: 1 << 16,
	}.DecMode()
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("failed to create CBOR decoder: %w", err)
	}

	var t Transcript
	if err := decMode.Unmarshal(body, &t); err != nil {
		return nil, [32]byte{}, fmt.Errorf("parse body: %w", err)
	}
	if t.Version != version {
		return nil, [32]byte{}, fmt.Errorf("body version 0x%04x does not match preamble 0x%04x", t.Version, version)
	}

	return &t, blake2b.Sum256(body), nil
}
