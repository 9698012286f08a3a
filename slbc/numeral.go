package slbc

import "github.com/abhyagra/slbc/container"

// digitWords is the closed vocabulary of digit-word bhāṣā encodings
// copied byte-for-byte from the reference byte tables. Exact equality against this table is the only
// acceptable validation inside a SAṄKHYĀ span — no phonetic fuzzy
// matching.
var digitWords = [10][]byte{
	{0x29, 0x88, 0x1C, 0x31, 0x40}, // 0: śūnya
	{0x85, 0x00, 0x40},             // 1: eka
	{0x1A, 0x32, 0x44},             // 2: dvi
	{0x18, 0x33, 0x44},             // 3: tri
	{0x08, 0x40, 0x18, 0x48, 0x33}, // 4: catur
	{0x20, 0x40, 0x0C, 0x08, 0x40}, // 5: pañca
	{0x2A, 0x40, 0x2A},             // 6: ṣaṣ
	{0x2B, 0x40, 0x20, 0x18, 0x40}, // 7: sapta
	{0x40, 0x2A, 0x10, 0x40},       // 8: aṣṭa
	{0x1C, 0x40, 0x32, 0x40},       // 9: nava
}

// DigitIAST holds the IAST names of digits 0-9.
var DigitIAST = [10]string{
	"śūnya", "eka", "dvi", "tri", "catur",
	"pañca", "ṣaṣ", "sapta", "aṣṭa", "nava",
}

func lookupDigitWord(padaBytes []byte) (byte, bool) {
	for d, word := range digitWords {
		if len(padaBytes) == len(word) {
			match := true
			for i := range word {
				if padaBytes[i] != word[i] {
					match = false
					break
				}
			}
			if match {
				return byte(d), true
			}
		}
	}
	return 0, false
}

// EncodeNumeral appends the dual SAṄKHYĀ/NUM span for a decimal digit
// string to out. digits must be non-empty ASCII decimal digits (e.g.
// "108"); callers that got digits from TokenizeIAST already satisfy
// this.
//
// Bhāṣā layer: SANKHYA_START, ULEB128 count, then count digit-word
// padas taken right-to-left (units first, "aṅkānāṃ vāmato gatiḥ"). This
// layer is always written.
//
// Lipi layer: NUM, then the glyph bytes left-to-right (visual order,
// leading zeros preserved); the span terminates implicitly on the next
// byte >= 0x10. Written only when includeLipi is set (bhāṣā-canonical
// output carries no lipi lane at all).
func EncodeNumeral(digits string, out []byte, includeLipi bool) ([]byte, error) {
	if !digitsOnly(digits) {
		return out, &InputEncodingError{Token: digits, Msg: "illegal character in numeral"}
	}

	values := make([]byte, len(digits))
	for i, ch := range digits {
		values[i] = byte(ch - '0')
	}

	out = append(out, SankhyaStart)
	out = container.AppendULEB128(out, uint64(len(values)))

	for i := len(values) - 1; i >= 0; i-- {
		out = append(out, PadaStart)
		out = append(out, digitWords[values[i]]...)
		out = append(out, PadaEnd)
	}

	if includeLipi {
		out = append(out, Num)
		out = append(out, values...)
	}

	return out, nil
}

// DecodeSankhya decodes a SAṄKHYĀ span starting at data[pos].
// Returns the digit values in left-to-right visual order and the number
// of bytes consumed.
func DecodeSankhya(data []byte, pos int) ([]byte, int, error) {
	i := pos
	if i >= len(data) || data[i] != SankhyaStart {
		return nil, 0, &SpanError{Offset: i, Msg: "expected SAṄKHYĀ_START"}
	}
	i++

	count, n, err := container.ReadULEB128(data[i:])
	if err != nil {
		return nil, 0, &SpanError{Offset: i, Msg: "ULEB128 error: " + err.Error()}
	}
	i += n

	digits := make([]byte, 0, count)
	for c := uint64(0); c < count; c++ {
		if i >= len(data) || data[i] != PadaStart {
			return nil, 0, &SpanError{Offset: i, Msg: "expected PADA_START in SAṄKHYĀ span"}
		}
		i++

		padaStart := i
		for i < len(data) && data[i] != PadaEnd {
			i++
		}
		if i >= len(data) {
			return nil, 0, &SpanError{Offset: padaStart, Msg: "unterminated digit-pada"}
		}
		padaBytes := data[padaStart:i]
		i++ // skip PADA_END

		digit, ok := lookupDigitWord(padaBytes)
		if !ok {
			return nil, 0, &SpanError{Offset: padaStart, Msg: "digit-pada content not in closed vocabulary"}
		}
		digits = append(digits, digit)
	}

	// Digits were encoded R->L (units first); reverse to L->R value order.
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return digits, i - pos, nil
}

// DecodeNum decodes a NUM (digit-glyph) span starting at data[pos].
// Consumes bytes < 0x10 as glyph values; the span ends implicitly at
// the first byte >= 0x10 (or end of data), which is not consumed.
func DecodeNum(data []byte, pos int) ([]byte, int, error) {
	i := pos
	if i >= len(data) || data[i] != Num {
		return nil, 0, &SpanError{Offset: i, Msg: "expected NUM"}
	}
	i++

	var digits []byte
	for i < len(data) && data[i] < 0x10 {
		digits = append(digits, data[i])
		i++
	}

	return digits, i - pos, nil
}
