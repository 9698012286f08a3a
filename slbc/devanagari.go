package slbc

// Devanāgarī digit glyphs, indexed by digit value 0-9.
var DevanagariDigits = [10]rune{
	'०', '१', '२', '३', '४', '५', '६', '७', '८', '९',
}

var devanagariConsonant = map[byte]string{
	0x00: "क", 0x01: "ख", 0x02: "ग", 0x03: "घ", 0x04: "ङ",
	0x08: "च", 0x09: "छ", 0x0A: "ज", 0x0B: "झ", 0x0C: "ञ",
	0x10: "ट", 0x11: "ठ", 0x12: "ड", 0x13: "ढ", 0x14: "ण",
	0x18: "त", 0x19: "थ", 0x1A: "द", 0x1B: "ध", 0x1C: "न",
	0x20: "प", 0x21: "फ", 0x22: "ब", 0x23: "भ", 0x24: "म",
	0x29: "श", 0x2A: "ष", 0x2B: "स",
	0x31: "य", 0x32: "व", 0x33: "र", 0x34: "ल",
	0x38: "ह",
}

var devanagariIndependent = map[byte]string{
	0x40: "अ", 0x80: "आ",
	0x44: "इ", 0x84: "ई",
	0x48: "उ", 0x88: "ऊ",
	0x4C: "ऋ", 0x8C: "ॠ",
	0x4F: "ऌ", 0x8F: "ॡ",
	0x85: "ए", 0x86: "ऐ",
	0x89: "ओ", 0x8A: "औ",
}

var devanagariMatra = map[byte]string{
	// 0x40 ('a') is intentionally absent: it is the inherent vowel and
	// takes no mātrā.
	0x80: "ा",
	0x44: "ि", 0x84: "ी",
	0x48: "ु", 0x88: "ू",
	0x4C: "ृ", 0x8C: "ॄ",
	0x4F: "ॢ", 0x8F: "ॣ",
	0x85: "े", 0x86: "ै",
	0x89: "ो", 0x8A: "ौ",
}

const virama = "्"

// postfixMark identifies vyañjana bytes that render in Devanāgarī as
// trailing marks over the preceding vowel rather than as consonants:
// visarga (ḥ) and anusvāra (ṃ).
func postfixMark(b byte) bool {
	return b == 0x39 || b == 0x3A
}

func postfixMarkGlyph(b byte) string {
	switch b {
	case 0x39:
		return "ः"
	case 0x3A:
		return "ं"
	default:
		return ""
	}
}

// DevanagariConsonant returns the bare consonant glyph for a vyañjana
// byte, or "?" if unknown.
func DevanagariConsonant(b byte) string {
	if s, ok := devanagariConsonant[b]; ok {
		return s
	}
	return "?"
}

// DevanagariIndependentVowel returns the independent (word-initial) vowel
// glyph for a svara byte, or "?" if unknown.
func DevanagariIndependentVowel(b byte) string {
	if s, ok := devanagariIndependent[svaraBase(b)]; ok {
		return s
	}
	return "?"
}

// DevanagariMatra returns the dependent vowel sign for a svara byte.
// The 'a' vowel has no mātrā and returns ("", false).
func DevanagariMatra(b byte) (string, bool) {
	s, ok := devanagariMatra[svaraBase(b)]
	return s, ok
}
