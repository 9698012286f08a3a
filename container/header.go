package container

import (
	"encoding/binary"
	"fmt"
)

// Magic is the fixed 4-byte file signature "SLBC".
var Magic = [4]byte{'S', 'L', 'B', 'C'}

// VersionBase is the version stamped on a stream with no numeral
// (SAṄKHYĀ) span.
var VersionBase = [4]byte{0x00, 0x00, 0x00, 0x08}

// VersionNumeral is the version stamped on a stream containing at least
// one SAṄKHYĀ span (the "numeral extension").
var VersionNumeral = [4]byte{0x00, 0x00, 0x00, 0x09}

// HeaderLen is the fixed header size in bytes.
const HeaderLen = 14

// Flag bits occupying header byte 11.
const (
	FlagHasLipi     byte = 0b1000_0000
	FlagHasMeta     byte = 0b0100_0000
	FlagInterleaved byte = 0b0010_0000
	FlagVedic       byte = 0b0001_0000
	FlagVya         byte = 0b0000_1000

	// reservedFlagMask covers the low 3 bits of the flags byte, which
	// must be zero (spec.md §6's flags field leaves only bits 7-3 assigned).
	reservedFlagMask byte = 0b0000_0111
)

// Header is a parsed .slbc file header.
type Header struct {
	Version           [4]byte
	Flags             byte
	ExtendedHeaderLen uint16
}

func (h Header) HasLipi() bool     { return h.Flags&FlagHasLipi != 0 }
func (h Header) HasMeta() bool     { return h.Flags&FlagHasMeta != 0 }
func (h Header) Interleaved() bool { return h.Flags&FlagInterleaved != 0 }
func (h Header) Vedic() bool       { return h.Flags&FlagVedic != 0 }
func (h Header) Vya() bool         { return h.Flags&FlagVya != 0 }

// Mode derives the extraction mode implied by the header's flags
// (the flag-to-mode derivation table).
func (h Header) Mode() Mode {
	if !h.HasLipi() {
		return ModeBhashaCanonical
	}
	if h.Vya() {
		return ModeVyakhya
	}
	return ModePatha
}

// Mode names the three extraction modes derivable from container flags.
type Mode int

const (
	ModePatha Mode = iota
	ModeBhashaCanonical
	ModeVyakhya
)

func (m Mode) String() string {
	switch m {
	case ModePatha:
		return "patha"
	case ModeBhashaCanonical:
		return "bhasha-canonical"
	case ModeVyakhya:
		return "vyakhya"
	default:
		return "unknown"
	}
}

// HeaderOptions configures BuildHeader.
type HeaderOptions struct {
	HasLipi     bool
	HasMeta     bool
	Interleaved bool
	Vedic       bool
	Vya         bool
	// Numeral marks whether the stream carries a SAṄKHYĀ span, which
	// selects VersionNumeral over VersionBase.
	Numeral bool
	// ExtendedHeader, if non-empty, is written immediately after the
	// fixed 14-byte header and its length recorded in bytes 12-13.
	ExtendedHeader []byte
}

// BuildHeader serializes a .slbc header (fixed portion plus any
// extended header) per opts. Grounded on
// original_source/.../container.rs build_header.
func BuildHeader(opts HeaderOptions) []byte {
	out := make([]byte, HeaderLen, HeaderLen+len(opts.ExtendedHeader))
	copy(out[0:4], Magic[:])

	version := VersionBase
	if opts.Numeral {
		version = VersionNumeral
	}
	copy(out[4:8], version[:])

	var flags byte
	if opts.HasLipi {
		flags |= FlagHasLipi
	}
	if opts.HasMeta {
		flags |= FlagHasMeta
	}
	if opts.Interleaved {
		flags |= FlagInterleaved
	}
	if opts.Vedic {
		flags |= FlagVedic
	}
	if opts.Vya {
		flags |= FlagVya
	}
	out[11] = flags

	binary.LittleEndian.PutUint16(out[12:14], uint16(len(opts.ExtendedHeader)))
	out = append(out, opts.ExtendedHeader...)

	return out
}

// ParseHeader parses the fixed header (and skips the extended header,
// if any) from the front of data. It returns the header and the byte
// offset of the first chunk.
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) < HeaderLen {
		return Header{}, 0, &Error{Offset: 0, Msg: "file too short for SLBC header"}
	}
	if [4]byte(data[0:4]) != Magic {
		return Header{}, 0, &Error{Offset: 0, Msg: "invalid magic bytes (expected 'SLBC')"}
	}

	var version [4]byte
	copy(version[:], data[4:8])
	if version != VersionBase && version != VersionNumeral {
		return Header{}, 0, &Error{Offset: 4, Msg: fmt.Sprintf("unsupported major version %x", version)}
	}

	if data[8] != 0 || data[9] != 0 || data[10] != 0 {
		return Header{}, 0, &Error{Offset: 8, Msg: "reserved header bytes 8-10 must be zero"}
	}

	flags := data[11]
	if flags&reservedFlagMask != 0 {
		return Header{}, 0, &Error{Offset: 11, Msg: fmt.Sprintf("reserved flag bits non-zero: %#08b", flags)}
	}

	extLen := binary.LittleEndian.Uint16(data[12:14])

	pos := HeaderLen + int(extLen)
	if pos > len(data) {
		return Header{}, 0, &Error{Offset: HeaderLen, Msg: fmt.Sprintf("extended header length %d exceeds file size", extLen)}
	}

	return Header{Version: version, Flags: flags, ExtendedHeaderLen: extLen}, pos, nil
}
