package container

import (
	"bytes"
	"testing"
)

func TestBuildAndParseHeaderRoundTrip(t *testing.T) {
	opts := HeaderOptions{
		HasLipi:     true,
		Interleaved: true,
	}
	built := BuildHeader(opts)

	if len(built) != HeaderLen {
		t.Fatalf("expected %d-byte header with no extended header, got %d", HeaderLen, len(built))
	}
	if !bytes.Equal(built[0:4], Magic[:]) {
		t.Errorf("bad magic: %v", built[0:4])
	}

	header, consumed, err := ParseHeader(built)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if consumed != HeaderLen {
		t.Errorf("consumed %d, want %d", consumed, HeaderLen)
	}
	if !header.HasLipi() || !header.Interleaved() {
		t.Errorf("flags not round-tripped: %+v", header)
	}
	if header.HasMeta() || header.Vedic() || header.Vya() {
		t.Errorf("unset flags should read false: %+v", header)
	}
}

func TestHeaderVersionSelectsNumeralExtension(t *testing.T) {
	withoutNumeral := BuildHeader(HeaderOptions{})
	header, _, err := ParseHeader(withoutNumeral)
	if err != nil {
		t.Fatal(err)
	}
	if header.Version != VersionBase {
		t.Errorf("expected VersionBase, got %v", header.Version)
	}

	withNumeral := BuildHeader(HeaderOptions{Numeral: true})
	header, _, err = ParseHeader(withNumeral)
	if err != nil {
		t.Fatal(err)
	}
	if header.Version != VersionNumeral {
		t.Errorf("expected VersionNumeral, got %v", header.Version)
	}
}

func TestHeaderModeDerivation(t *testing.T) {
	cases := []struct {
		name string
		opts HeaderOptions
		want Mode
	}{
		{"no lipi -> bhasha canonical", HeaderOptions{HasLipi: false}, ModeBhashaCanonical},
		{"lipi without vya -> patha", HeaderOptions{HasLipi: true}, ModePatha},
		{"lipi with vya -> vyakhya", HeaderOptions{HasLipi: true, Vya: true}, ModeVyakhya},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header, _, err := ParseHeader(BuildHeader(tc.opts))
			if err != nil {
				t.Fatal(err)
			}
			if got := header.Mode(); got != tc.want {
				t.Errorf("Mode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHeaderWithExtendedHeader(t *testing.T) {
	ext := []byte{0xAA, 0xBB, 0xCC}
	built := BuildHeader(HeaderOptions{ExtendedHeader: ext})

	if len(built) != HeaderLen+len(ext) {
		t.Fatalf("expected %d bytes, got %d", HeaderLen+len(ext), len(built))
	}

	header, consumed, err := ParseHeader(built)
	if err != nil {
		t.Fatal(err)
	}
	if header.ExtendedHeaderLen != uint16(len(ext)) {
		t.Errorf("ExtendedHeaderLen = %d, want %d", header.ExtendedHeaderLen, len(ext))
	}
	if consumed != HeaderLen+len(ext) {
		t.Errorf("consumed = %d, want %d", consumed, HeaderLen+len(ext))
	}
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	built := BuildHeader(HeaderOptions{})
	built[0] = 'X'
	if _, _, err := ParseHeader(built); err == nil {
		t.Fatal("expected error for corrupted magic, got nil")
	}
}

func TestParseHeaderRejectsTruncatedInput(t *testing.T) {
	if _, _, err := ParseHeader([]byte{'S', 'L', 'B'}); err == nil {
		t.Fatal("expected error for truncated header, got nil")
	}
}

func TestParseHeaderRejectsUnsupportedVersion(t *testing.T) {
	built := BuildHeader(HeaderOptions{})
	built[7] = 0x0A
	if _, _, err := ParseHeader(built); err == nil {
		t.Fatal("expected error for unsupported major version, got nil")
	}
}

func TestParseHeaderRejectsNonZeroReservedBytes(t *testing.T) {
	built := BuildHeader(HeaderOptions{})
	built[9] = 0x01
	if _, _, err := ParseHeader(built); err == nil {
		t.Fatal("expected error for non-zero reserved bytes 8-10, got nil")
	}
}

func TestParseHeaderRejectsNonZeroReservedFlagBits(t *testing.T) {
	built := BuildHeader(HeaderOptions{})
	built[11] |= 0b0000_0001
	if _, _, err := ParseHeader(built); err == nil {
		t.Fatal("expected error for non-zero reserved flag bits, got nil")
	}
}

func TestParseHeaderRejectsOverlongExtendedHeader(t *testing.T) {
	built := BuildHeader(HeaderOptions{})
	// Claim a 100-byte extended header that isn't actually present.
	built[12] = 100
	built[13] = 0
	if _, _, err := ParseHeader(built); err == nil {
		t.Fatal("expected error for extended header length exceeding file size, got nil")
	}
}
