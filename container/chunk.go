package container

import "fmt"

// Chunk type bytes.
const (
	ChunkPhon byte = 0x01
	ChunkBha  byte = 0x02
	ChunkLipi byte = 0x03
	ChunkMeta byte = 0x04
	ChunkDict byte = 0x05
	ChunkIdx  byte = 0x06
	ChunkAnvy byte = 0x07
	ChunkExt  byte = 0x10
	ChunkEOF  byte = 0xFF
)

// Chunk is a parsed type+length+payload unit.
type Chunk struct {
	Type    byte
	Payload []byte
}

// Writer builds a .slbc byte stream: a header followed by a sequence of
// chunks and a mandatory EOF chunk.
type Writer struct {
	buf []byte
}

// NewWriter starts a new container with the given header already
// serialized (see BuildHeader).
func NewWriter(header []byte) *Writer {
	w := &Writer{buf: make([]byte, 0, len(header)+64)}
	w.buf = append(w.buf, header...)
	return w
}

// WriteChunk appends a chunk: type byte, ULEB128 payload length, then
// the payload itself.
func (w *Writer) WriteChunk(chunkType byte, payload []byte) {
	w.buf = append(w.buf, chunkType)
	w.buf = AppendULEB128(w.buf, uint64(len(payload)))
	w.buf = append(w.buf, payload...)
}

// WriteEOF appends the mandatory EOF chunk (type 0xFF, length 0). Every
// container built by Writer must end with exactly one EOF chunk.
func (w *Writer) WriteEOF() {
	w.WriteChunk(ChunkEOF, nil)
}

// Bytes returns the accumulated container bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// isKnownChunkType reports whether b is one of the defined Chunk*
// constants.
func isKnownChunkType(b byte) bool {
	switch b {
	case ChunkPhon, ChunkBha, ChunkLipi, ChunkMeta, ChunkDict, ChunkIdx, ChunkAnvy, ChunkExt, ChunkEOF:
		return true
	default:
		return false
	}
}

// Reader walks the chunk sequence of a parsed .slbc body (the bytes
// following the header).
// stream.Reader (stream/gs1t_reader.go), adapted from line-oriented
// text frames to binary type+ULEB128-length+payload chunks.
type Reader struct {
	data []byte
	pos  int
	done bool

	// Strict, when true, rejects an unrecognized chunk type as a
	// format error. When false (the default), an unrecognized chunk
	// type is logged and skipped rather than surfaced as a chunk.
	Strict bool
}

// NewReader creates a non-strict chunk reader starting at the given
// offset (the offset ParseHeader returned).
func NewReader(data []byte, start int) *Reader {
	return &Reader{data: data, pos: start}
}

// NewStrictReader creates a chunk reader that rejects unrecognized
// chunk types instead of skipping them.
func NewStrictReader(data []byte, start int) *Reader {
	return &Reader{data: data, pos: start, Strict: true}
}

// Next reads the next chunk. It returns (nil, false, nil) once the EOF
// chunk has been consumed. A malformed chunk (truncated length, payload
// extending beyond the buffer) is reported as a *Error.
func (r *Reader) Next() (*Chunk, bool, error) {
	if r.done {
		return nil, false, nil
	}
	if r.pos >= len(r.data) {
		return nil, false, &Error{Offset: r.pos, Msg: "missing EOF chunk"}
	}

	chunkType := r.data[r.pos]
	lenOffset := r.pos + 1
	if lenOffset > len(r.data) {
		return nil, false, &Error{Offset: r.pos, Msg: "truncated chunk header"}
	}

	payloadLen, consumed, err := ReadULEB128(r.data[lenOffset:])
	if err != nil {
		return nil, false, &Error{Offset: lenOffset, Msg: "chunk length ULEB128 error: " + err.Error()}
	}

	payloadStart := lenOffset + consumed
	payloadEnd := payloadStart + int(payloadLen)
	if payloadEnd > len(r.data) {
		return nil, false, &Error{Offset: payloadStart, Msg: "chunk payload extends beyond file"}
	}

	r.pos = payloadEnd

	if chunkType == ChunkEOF {
		r.done = true
		return &Chunk{Type: chunkType, Payload: r.data[payloadStart:payloadEnd]}, true, nil
	}

	if !isKnownChunkType(chunkType) {
		if r.Strict {
			return nil, false, &Error{Offset: r.pos, Msg: fmt.Sprintf("unknown chunk type 0x%02X in strict mode", chunkType)}
		}
		Logger().Sugar().Debugf("skipping unknown chunk type 0x%02X at offset %d", chunkType, payloadStart)
		return r.Next()
	}

	return &Chunk{Type: chunkType, Payload: r.data[payloadStart:payloadEnd]}, true, nil
}

// ReadAll drains the reader into a slice, returning a *Error if no EOF
// chunk was ever seen.
func (r *Reader) ReadAll() ([]Chunk, error) {
	var chunks []Chunk
	sawEOF := false
	for {
		chunk, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if chunk.Type == ChunkEOF {
			sawEOF = true
		}
		chunks = append(chunks, *chunk)
	}
	if !sawEOF {
		return nil, &Error{Offset: r.pos, Msg: "missing EOF chunk"}
	}
	return chunks, nil
}

// ParseFile parses a complete .slbc file into its header and chunks,
// skipping (and logging) unrecognized chunk types.
func ParseFile(data []byte) (Header, []Chunk, error) {
	return parseFile(data, NewReader)
}

// ParseFileStrict parses a complete .slbc file, rejecting any
// unrecognized chunk type as a format error instead of skipping it.
func ParseFileStrict(data []byte) (Header, []Chunk, error) {
	return parseFile(data, NewStrictReader)
}

func parseFile(data []byte, newReader func([]byte, int) *Reader) (Header, []Chunk, error) {
	header, start, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	reader := newReader(data, start)
	chunks, err := reader.ReadAll()
	if err != nil {
		return Header{}, nil, err
	}
	return header, chunks, nil
}

// BuildSimple builds a complete single-chunk .slbc file: header + one
// chunk of chunkType carrying payload + EOF. Convenience wrapper for
// the common pāṭha-mode case (a single PHON chunk).
func BuildSimple(opts HeaderOptions, chunkType byte, payload []byte) []byte {
	w := NewWriter(BuildHeader(opts))
	w.WriteChunk(chunkType, payload)
	w.WriteEOF()
	return w.Bytes()
}
