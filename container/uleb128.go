package container

import "fmt"

// MaxULEB128Bytes bounds ULEB128 encodings to 5 bytes (32-bit values),
// any longer encoding, or any value exceeding
// u32, is rejected rather than silently widened.
const MaxULEB128Bytes = 5

// AppendULEB128 appends value to out in unsigned LEB128 form. The Go
// idiom (byte-slice builder with an explicit continuation-bit test)
// follows wippyai-wasm-runtime's linker/internal/wasm/encoding.go
// EncodeULEB128; the exact bit-shape matches
// original_source/.../container.rs write_uleb128.
func AppendULEB128(out []byte, value uint64) []byte {
	for {
		b := byte(value & 0x7F)
		value >>= 7
		if value != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if value == 0 {
			break
		}
	}
	return out
}

// ReadULEB128 decodes a ULEB128 value from the front of data. It
// returns the decoded value and the number of bytes consumed.
// Encodings longer than MaxULEB128Bytes, or values that would exceed
// uint32, are rejected — this codec's ULEB128 use is bounded to 32-bit
// lengths and counts.
func ReadULEB128(data []byte) (uint64, int, error) {
	var result uint64
	var shift uint

	for i := 0; i < len(data); i++ {
		if i >= MaxULEB128Bytes {
			return 0, 0, fmt.Errorf("ULEB128 exceeds %d bytes (max u32)", MaxULEB128Bytes)
		}
		b := data[i]
		result |= uint64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			if result > 0xFFFFFFFF {
				return 0, 0, fmt.Errorf("ULEB128 value exceeds u32 range")
			}
			return result, i + 1, nil
		}
	}

	return 0, 0, fmt.Errorf("truncated ULEB128")
}
