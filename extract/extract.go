// Package extract implements the extraction driver: given a parsed
// .slbc chunk sequence, produce the pāṭha / bhāṣā-only / vyākhyā view
// of it per the mode-to-keep/strip table. Grounded on the teacher's
// FrameHandler (stream/cursor.go): a dispatch-by-kind walk over a
// frame/chunk sequence, here driving a keep-or-strip decision per
// chunk type and, within PHON-bearing chunks, per decoded event kind.
package extract

import (
	"github.com/abhyagra/slbc/container"
	"github.com/abhyagra/slbc/slbc"
)

// Mode names the three extraction modes.
type Mode int

const (
	ModePatha Mode = iota
	ModeBhashaOnly
	ModeVyakhya
)

func (m Mode) String() string {
	switch m {
	case ModePatha:
		return "patha"
	case ModeBhashaOnly:
		return "bhasha-only"
	case ModeVyakhya:
		return "vyakhya"
	default:
		return "unknown"
	}
}

// ParseMode parses a CLI --mode value.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "patha":
		return ModePatha, true
	case "bhasha-only":
		return ModeBhashaOnly, true
	case "vyakhya":
		return ModeVyakhya, true
	default:
		return 0, false
	}
}

// rules captures the 4.10 mode-to-keep/strip table. SAṄKHYĀ is always
// kept (bhāṣā-layer, emitted in every mode); NUM tracks lipi bytes.
type rules struct {
	keepLipi       bool
	keepMeta       bool
	keepDictChunks bool
}

func rulesFor(m Mode) rules {
	switch m {
	case ModePatha:
		return rules{keepLipi: true, keepMeta: false, keepDictChunks: false}
	case ModeBhashaOnly:
		return rules{keepLipi: false, keepMeta: false, keepDictChunks: false}
	case ModeVyakhya:
		return rules{keepLipi: true, keepMeta: true, keepDictChunks: true}
	default:
		return rules{}
	}
}

// Extract parses a complete .slbc file and re-serializes it under the
// given mode, rewriting the header's HAS_LIPI/HAS_META/VYA flags to
// match and dropping or filtering chunks per the keep/strip table.
func Extract(data []byte, mode Mode) ([]byte, error) {
	header, chunks, err := container.ParseFile(data)
	if err != nil {
		return nil, err
	}

	r := rulesFor(mode)
	var outChunks []container.Chunk
	sawNumeral := false

	for _, c := range chunks {
		switch c.Type {
		case container.ChunkEOF:
			continue // re-appended at the end

		case container.ChunkDict, container.ChunkAnvy:
			if !r.keepDictChunks {
				continue
			}
			outChunks = append(outChunks, c)

		case container.ChunkMeta:
			if !r.keepMeta {
				continue
			}
			outChunks = append(outChunks, c)

		default:
			payload, hasNumeral, err := filterPayload(c.Payload, r)
			if err != nil {
				return nil, err
			}
			sawNumeral = sawNumeral || hasNumeral
			outChunks = append(outChunks, container.Chunk{Type: c.Type, Payload: payload})
		}
	}

	newHeader := container.BuildHeader(container.HeaderOptions{
		HasLipi:     r.keepLipi,
		HasMeta:     r.keepMeta && header.HasMeta(),
		Interleaved: header.Interleaved(),
		Vedic:       header.Vedic(),
		Vya:         mode == ModeVyakhya,
		Numeral:     sawNumeral,
	})

	w := container.NewWriter(newHeader)
	for _, c := range outChunks {
		w.WriteChunk(c.Type, c.Payload)
	}
	w.WriteEOF()
	return w.Bytes(), nil
}

// filterPayload decodes a chunk's bhāṣā+lipi bytes to events, drops
// events the mode's rules strip, and re-encodes. It reports whether
// any SAṄKHYĀ span survived, so the caller can pick the correct
// container version byte.
func filterPayload(payload []byte, r rules) ([]byte, bool, error) {
	events, err := slbc.DecodeToEvents(payload)
	if err != nil {
		return nil, false, err
	}

	var kept []slbc.Event
	sawNumeral := false
	for _, ev := range events {
		switch ev.Kind {
		case slbc.EvSpace, slbc.EvDanda, slbc.EvDoubleDanda, slbc.EvAvagraha, slbc.EvNumSpan:
			if !r.keepLipi {
				continue
			}
		case slbc.EvMetaEnvelope:
			if !r.keepMeta {
				continue
			}
		case slbc.EvSankhyaSpan:
			sawNumeral = true
		}
		kept = append(kept, ev)
	}

	out, err := slbc.EncodeEvents(kept)
	if err != nil {
		return nil, false, err
	}
	return out, sawNumeral, nil
}
