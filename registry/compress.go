package registry

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the 4-byte frame magic every zstd stream starts with.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// CompressBinary wraps a compiled registry body (the output of
// WriteBinary) in a zstd frame. `registry compile` may choose to emit
// this form for .sldr/.slpr/.slsr bodies; readers magic-sniff rather
// than requiring a flag, so compressed and uncompressed files are
// interchangeable on disk.
func CompressBinary(body []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(body, nil), nil
}

// DecompressIfNeeded inspects data for the zstd frame magic and, if
// present, decompresses it. Uncompressed registry bodies (which begin
// with one of the SPDR/SPPR/SPSR magics) pass through unchanged.
func DecompressIfNeeded(data []byte) ([]byte, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], zstdMagic) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}
