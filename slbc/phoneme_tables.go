package slbc

// svaraIAST maps a base svara byte (accent bits zeroed) to its neutral
// IAST token. The tokenizer does not parse accent marks: every svara it
// produces carries A=00, and no accent is rendered back to IAST.
var svaraIAST = map[byte]string{
	0x40: "a", 0x80: "ā",
	0x44: "i", 0x84: "ī",
	0x48: "u", 0x88: "ū",
	0x4C: "ṛ", 0x8C: "ṝ",
	0x4F: "ḷ", 0x8F: "ḹ",
	0x85: "e", 0x86: "ai",
	0x89: "o", 0x8A: "au",
}

// iastSvara maps an IAST vowel token to its neutral (A=00) svara byte.
var iastSvara = map[string]byte{
	"a": 0x40, "ā": 0x80,
	"i": 0x44, "ī": 0x84,
	"u": 0x48, "ū": 0x88,
	"ṛ": 0x4C, "ṝ": 0x8C,
	"ḷ": 0x4F, "ḹ": 0x8F,
	"e": 0x85, "ai": 0x86,
	"o": 0x89, "au": 0x8A,
}

// vyanjanaIAST maps a vyañjana byte to its IAST token.
var vyanjanaIAST = map[byte]string{
	0x00: "k", 0x01: "kh", 0x02: "g", 0x03: "gh", 0x04: "ṅ",
	0x08: "c", 0x09: "ch", 0x0A: "j", 0x0B: "jh", 0x0C: "ñ",
	0x10: "ṭ", 0x11: "ṭh", 0x12: "ḍ", 0x13: "ḍh", 0x14: "ṇ",
	0x18: "t", 0x19: "th", 0x1A: "d", 0x1B: "dh", 0x1C: "n",
	0x20: "p", 0x21: "ph", 0x22: "b", 0x23: "bh", 0x24: "m",
	0x29: "ś", 0x2A: "ṣ", 0x2B: "s",
	0x31: "y", 0x32: "v", 0x33: "r", 0x34: "l",
	0x38: "h", 0x39: "ḥ", 0x3A: "ṃ", 0x3B: "ẖ", 0x3C: "ḫ",
}

// iastVyanjana maps an IAST consonant token to its vyañjana byte.
var iastVyanjana = map[string]byte{
	"k": 0x00, "kh": 0x01, "g": 0x02, "gh": 0x03, "ṅ": 0x04,
	"c": 0x08, "ch": 0x09, "j": 0x0A, "jh": 0x0B, "ñ": 0x0C,
	"ṭ": 0x10, "ṭh": 0x11, "ḍ": 0x12, "ḍh": 0x13, "ṇ": 0x14,
	"t": 0x18, "th": 0x19, "d": 0x1A, "dh": 0x1B, "n": 0x1C,
	"p": 0x20, "ph": 0x21, "b": 0x22, "bh": 0x23, "m": 0x24,
	"ś": 0x29, "ṣ": 0x2A, "s": 0x2B,
	"y": 0x31, "v": 0x32, "r": 0x33, "l": 0x34,
	"h": 0x38, "ḥ": 0x39, "ṃ": 0x3A, "ẖ": 0x3B, "ḫ": 0x3C,
}

// svaraBase returns b with its accent field (bits[5:4]) zeroed.
func svaraBase(b byte) byte {
	return b &^ (0x03 << 4)
}

// ByteToIAST renders a single SLBC byte as its bare IAST token (without
// accent marks; accent rendering, if wanted, is the caller's concern).
// Returns "?" for bytes with no IAST rendering (controls, reserved).
func ByteToIAST(b byte) string {
	if IsSvara(b) {
		if s, ok := svaraIAST[svaraBase(b)]; ok {
			return s
		}
		return "?"
	}
	if IsVyanjana(b) {
		if s, ok := vyanjanaIAST[b]; ok {
			return s
		}
		return "?"
	}
	return "?"
}

// IASTToSvara looks up the neutral (A=00) svara byte for an IAST vowel
// token. The second return value is false if tok is not a recognized
// vowel.
func IASTToSvara(tok string) (byte, bool) {
	b, ok := iastSvara[tok]
	return b, ok
}

// IASTToVyanjana looks up the vyañjana byte for an IAST consonant token.
func IASTToVyanjana(tok string) (byte, bool) {
	b, ok := iastVyanjana[tok]
	return b, ok
}

// WithAccent returns the svara byte b with its accent field replaced by
// accent. b must be a svara byte.
func WithAccent(b, accent byte) byte {
	return svaraBase(b) | (accent << 4)
}
