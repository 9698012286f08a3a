package registry

import (
	"encoding/binary"
	"fmt"

	"github.com/abhyagra/slbc/container"
)

// BinaryVersion is the version stamped into every compiled registry
// header.
const BinaryVersion uint16 = 1

// headerLen is the fixed 12-byte registry binary header: 4 magic, 2
// version LE, 4 entry-count LE, 2 reserved (always zero).
const headerLen = 12

// WriteBinary serializes entries (all of kind k) into the 12-byte
// header plus packed-entry binary form.
func WriteBinary(k Kind, entries []Entry) ([]byte, error) {
	for _, e := range entries {
		if e.KindOf() != k {
			return nil, &Error{EntityID: int64(e.ID), Msg: fmt.Sprintf("entry kind mismatch: registry is %s", k)}
		}
	}

	magic := k.Magic()
	out := make([]byte, headerLen, headerLen+len(entries)*8)
	copy(out[0:4], magic[:])
	binary.LittleEndian.PutUint16(out[4:6], BinaryVersion)
	binary.LittleEndian.PutUint32(out[6:10], uint32(len(entries)))
	// bytes 10-11 reserved, left zero.

	for _, e := range entries {
		out = AppendEntry(out, e)
	}
	return out, nil
}

// AppendEntry appends the packed form of a single entry (ID, IAST
// string, kind-specific metadata) to out. Exported so the DICT chunk
// codec (package dict) can pack embedded/override entries without
// going through a full registry-file header.
func AppendEntry(out []byte, e Entry) []byte {
	out = container.AppendULEB128(out, e.ID)
	iast := []byte(e.IAST)
	out = container.AppendULEB128(out, uint64(len(iast)))
	out = append(out, iast...)

	switch {
	case e.Dhatu != nil:
		packed := e.Dhatu.pack()
		out = append(out, packed[:]...)
	case e.Pratipadika != nil:
		packed := e.Pratipadika.pack()
		out = append(out, packed[:]...)
	case e.SandhiRule != nil:
		out = append(out, e.SandhiRule.packTypeByte())
		ref := []byte(e.SandhiRule.SutraRef)
		out = container.AppendULEB128(out, uint64(len(ref)))
		out = append(out, ref...)
	}
	return out
}

// ReadBinary parses a compiled registry file, returning its Kind and
// entries. The declared entry count in the header is authoritative: a
// body that runs short (scenario 6 of the testable-properties table)
// is a RegistryError, not a silently truncated result.
func ReadBinary(data []byte) (Kind, []Entry, error) {
	if len(data) < headerLen {
		return 0, nil, &Error{EntityID: -1, Msg: "file too short for registry header"}
	}

	kind, err := kindFromMagic([4]byte(data[0:4]))
	if err != nil {
		return 0, nil, err
	}

	count := binary.LittleEndian.Uint32(data[6:10])
	pos := headerLen
	entries := make([]Entry, 0, count)

	for i := uint32(0); i < count; i++ {
		entry, consumed, err := ReadEntry(kind, data[pos:])
		if err != nil {
			return 0, nil, &Error{EntityID: -1, Msg: fmt.Sprintf("entry %d/%d: %s", i+1, count, err.Error())}
		}
		entries = append(entries, entry)
		pos += consumed
	}

	return kind, entries, nil
}

func kindFromMagic(magic [4]byte) (Kind, error) {
	for _, k := range []Kind{KindDhatu, KindPratipadika, KindSandhiRule} {
		if k.Magic() == magic {
			return k, nil
		}
	}
	return 0, &Error{EntityID: -1, Msg: fmt.Sprintf("unrecognized registry magic %q", magic[:])}
}

// ReadEntry parses one packed entry of kind k from the front of data,
// returning the entry and the number of bytes consumed.
func ReadEntry(k Kind, data []byte) (Entry, int, error) {
	id, n, err := container.ReadULEB128(data)
	if err != nil {
		return Entry{}, 0, fmt.Errorf("id: %w", err)
	}
	pos := n

	iastLen, n, err := container.ReadULEB128(data[pos:])
	if err != nil {
		return Entry{}, 0, fmt.Errorf("iast length: %w", err)
	}
	pos += n

	if pos+int(iastLen) > len(data) {
		return Entry{}, 0, fmt.Errorf("truncated IAST field for entry %d", id)
	}
	iast := string(data[pos : pos+int(iastLen)])
	pos += int(iastLen)

	entry := Entry{ID: id, IAST: iast}

	switch k {
	case KindDhatu:
		if pos+3 > len(data) {
			return Entry{}, 0, fmt.Errorf("truncated dhatu metadata for entry %d", id)
		}
		meta := unpackDhatuMeta([3]byte(data[pos : pos+3]))
		entry.Dhatu = &meta
		pos += 3
	case KindPratipadika:
		if pos+2 > len(data) {
			return Entry{}, 0, fmt.Errorf("truncated pratipadika metadata for entry %d", id)
		}
		meta := unpackPratipadikaMeta([2]byte(data[pos : pos+2]))
		entry.Pratipadika = &meta
		pos += 2
	case KindSandhiRule:
		if pos+1 > len(data) {
			return Entry{}, 0, fmt.Errorf("truncated sandhi-rule metadata for entry %d", id)
		}
		typeByte := data[pos]
		pos++
		refLen, n, err := container.ReadULEB128(data[pos:])
		if err != nil {
			return Entry{}, 0, fmt.Errorf("sutra ref length: %w", err)
		}
		pos += n
		if pos+int(refLen) > len(data) {
			return Entry{}, 0, fmt.Errorf("truncated sutra ref for entry %d", id)
		}
		ref := string(data[pos : pos+int(refLen)])
		pos += int(refLen)
		entry.SandhiRule = &SandhiRuleMeta{Type: (typeByte >> 4) & 0x0F, SutraRef: ref}
	}

	return entry, pos, nil
}
