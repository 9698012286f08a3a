// Package dict implements the DICT chunk payload codec: a reference
// from a stream's annotations to a registry (dhātu/prātipadika/
// sandhi-rule), in one of three modes. Grounded on the teacher's
// BlobRegistry (glyph/blob.go), adapted from a content-addressed blob
// store to a registry-entry resolver with the same
// builtin-then-external-then-override layering shape.
package dict

import (
	"encoding/binary"
	"fmt"

	"github.com/abhyagra/slbc/container"
	"github.com/abhyagra/slbc/registry"
)

// Mode selects how a DICT chunk carries its registry data.
type Mode byte

const (
	ModeEmbedded Mode = 0x00
	ModeExternal Mode = 0x01
	ModeHybrid   Mode = 0x02
)

func (m Mode) String() string {
	switch m {
	case ModeEmbedded:
		return "embedded"
	case ModeExternal:
		return "external"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Payload is a decoded DICT chunk: which registry it concerns, the
// mode it was encoded in, and whichever of the mode-specific fields
// apply.
type Payload struct {
	RegistryKind     registry.Kind
	Mode             Mode
	ExternalVersion  uint16
	ExternalFilename string
	// Entries holds the embedded entries for ModeEmbedded, or the
	// override entries for ModeHybrid.
	Entries []registry.Entry
}

// EncodePayload serializes p into a DICT chunk payload:
// registry-type(1) | mode(1) | mode-specific.
func EncodePayload(p Payload) ([]byte, error) {
	out := []byte{byte(p.RegistryKind), byte(p.Mode)}

	switch p.Mode {
	case ModeEmbedded:
		out = appendEmbedded(out, p.Entries)

	case ModeExternal:
		out = appendExternalBlock(out, p.ExternalVersion, p.ExternalFilename)

	case ModeHybrid:
		out = appendExternalBlock(out, p.ExternalVersion, p.ExternalFilename)
		out = appendEmbedded(out, p.Entries)

	default:
		return nil, &Error{Msg: fmt.Sprintf("unknown DICT mode 0x%02X", p.Mode)}
	}
	return out, nil
}

func appendEmbedded(out []byte, entries []registry.Entry) []byte {
	out = container.AppendULEB128(out, uint64(len(entries)))
	for _, e := range entries {
		out = registry.AppendEntry(out, e)
	}
	return out
}

func appendExternalBlock(out []byte, version uint16, filename string) []byte {
	var v [2]byte
	binary.LittleEndian.PutUint16(v[:], version)
	out = append(out, v[:]...)
	name := []byte(filename)
	out = container.AppendULEB128(out, uint64(len(name)))
	out = append(out, name...)
	return out
}

// DecodePayload parses a DICT chunk payload.
func DecodePayload(data []byte) (Payload, error) {
	if len(data) < 2 {
		return Payload{}, &Error{Msg: "DICT payload too short for registry-type/mode header"}
	}

	kind := registry.Kind(data[0])
	mode := Mode(data[1])
	pos := 2

	p := Payload{RegistryKind: kind, Mode: mode}

	switch mode {
	case ModeEmbedded:
		entries, _, err := readEmbedded(kind, data[pos:])
		if err != nil {
			return Payload{}, err
		}
		p.Entries = entries

	case ModeExternal:
		version, filename, _, err := readExternalBlock(data[pos:])
		if err != nil {
			return Payload{}, err
		}
		p.ExternalVersion = version
		p.ExternalFilename = filename

	case ModeHybrid:
		version, filename, consumed, err := readExternalBlock(data[pos:])
		if err != nil {
			return Payload{}, err
		}
		p.ExternalVersion = version
		p.ExternalFilename = filename
		pos += consumed

		entries, _, err := readEmbedded(kind, data[pos:])
		if err != nil {
			return Payload{}, err
		}
		p.Entries = entries

	default:
		return Payload{}, &Error{Msg: fmt.Sprintf("unknown DICT mode 0x%02X", mode)}
	}

	return p, nil
}

func readEmbedded(kind registry.Kind, data []byte) ([]registry.Entry, int, error) {
	count, n, err := container.ReadULEB128(data)
	if err != nil {
		return nil, 0, &Error{Msg: fmt.Sprintf("embedded entry count: %v", err)}
	}
	pos := n

	entries := make([]registry.Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		entry, consumed, err := registry.ReadEntry(kind, data[pos:])
		if err != nil {
			return nil, 0, &Error{Msg: fmt.Sprintf("embedded entry %d/%d: %v", i+1, count, err)}
		}
		entries = append(entries, entry)
		pos += consumed
	}
	return entries, pos, nil
}

func readExternalBlock(data []byte) (uint16, string, int, error) {
	if len(data) < 2 {
		return 0, "", 0, &Error{Msg: "truncated external-block version field"}
	}
	version := binary.LittleEndian.Uint16(data[0:2])
	pos := 2

	nameLen, n, err := container.ReadULEB128(data[pos:])
	if err != nil {
		return 0, "", 0, &Error{Msg: fmt.Sprintf("external filename length: %v", err)}
	}
	pos += n

	if pos+int(nameLen) > len(data) {
		return 0, "", 0, &Error{Msg: "truncated external filename"}
	}
	filename := string(data[pos : pos+int(nameLen)])
	pos += int(nameLen)

	return version, filename, pos, nil
}

// Resolver fetches the raw bytes of an external registry file by
// filename. The CLI's filesystem-backed implementation and any
// in-memory test double both satisfy this single-method interface.
type Resolver interface {
	Resolve(filename string) ([]byte, error)
}

// Resolve builds the fully-resolved entry set for p: builtin entries
// from base, overlaid by the external registry file (if the mode
// references one), overlaid in turn by p's embedded/override entries.
// Unlike registry.Table.Load's fatal-collision extension semantics,
// this resolution order is an explicit override layering — a later
// layer's entry for a given ID replaces an earlier layer's, which is
// exactly what "override" in the mode-0x02 name means.
func Resolve(base *registry.Table, p Payload, resolver Resolver) (map[uint64]registry.Entry, error) {
	resolved := make(map[uint64]registry.Entry, base.Len())
	for _, e := range base.All() {
		resolved[e.ID] = e
	}

	if p.Mode == ModeExternal || p.Mode == ModeHybrid {
		if resolver == nil {
			return nil, &Error{Filename: p.ExternalFilename, Msg: "external registry referenced but no resolver configured"}
		}
		raw, err := resolver.Resolve(p.ExternalFilename)
		if err != nil {
			return nil, &Error{Filename: p.ExternalFilename, Msg: fmt.Sprintf("external registry file unavailable: %v", err)}
		}
		raw, err = registry.DecompressIfNeeded(raw)
		if err != nil {
			return nil, &Error{Filename: p.ExternalFilename, Msg: err.Error()}
		}
		kind, entries, err := registry.ReadBinary(raw)
		if err != nil {
			return nil, &Error{Filename: p.ExternalFilename, Msg: err.Error()}
		}
		if kind != p.RegistryKind {
			return nil, &Error{Filename: p.ExternalFilename, Msg: fmt.Sprintf("external registry kind %s does not match DICT chunk kind %s", kind, p.RegistryKind)}
		}
		for _, e := range entries {
			resolved[e.ID] = e
		}
	}

	if p.Mode == ModeEmbedded || p.Mode == ModeHybrid {
		for _, e := range p.Entries {
			resolved[e.ID] = e
		}
	}

	return resolved, nil
}
