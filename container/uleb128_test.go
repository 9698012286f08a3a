package container

import "testing"

func TestULEB128RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 127, 128, 300, 16384, 0xFFFFFFFF}
	for _, v := range values {
		encoded := AppendULEB128(nil, v)
		decoded, consumed, err := ReadULEB128(encoded)
		if err != nil {
			t.Fatalf("ReadULEB128(%d) failed: %v", v, err)
		}
		if decoded != v {
			t.Errorf("round trip mismatch: encoded %d, got %d", v, decoded)
		}
		if consumed != len(encoded) {
			t.Errorf("consumed %d bytes, want %d", consumed, len(encoded))
		}
	}
}

func TestULEB128SingleByteForSmallValues(t *testing.T) {
	encoded := AppendULEB128(nil, 42)
	if len(encoded) != 1 {
		t.Fatalf("expected 1 byte for value 42, got %d: %v", len(encoded), encoded)
	}
	if encoded[0] != 42 {
		t.Errorf("got %#x, want 0x2a", encoded[0])
	}
}

func TestULEB128RejectsOverlongEncoding(t *testing.T) {
	// Six bytes, the first five with the continuation bit set — exceeds MaxULEB128Bytes.
	overlong := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, _, err := ReadULEB128(overlong); err == nil {
		t.Fatal("expected error for 6-byte ULEB128 encoding, got nil")
	}
}

func TestULEB128RejectsValueAboveU32(t *testing.T) {
	// 5 bytes decoding to a value just above u32::MAX.
	tooLarge := AppendULEB128(nil, 0x100000000)
	if _, _, err := ReadULEB128(tooLarge); err == nil {
		t.Fatal("expected error for value exceeding u32, got nil")
	}
}

func TestULEB128RejectsTruncatedInput(t *testing.T) {
	truncated := []byte{0x80, 0x80}
	if _, _, err := ReadULEB128(truncated); err == nil {
		t.Fatal("expected error for truncated ULEB128, got nil")
	}
}
