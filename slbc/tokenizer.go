package slbc

import (
	"strings"

	"github.com/derekparker/trie"
)

// TokenKind discriminates the variants of Token.
type TokenKind int

const (
	TokSvara TokenKind = iota
	TokVyanjana
	TokSpace
	TokDanda
	TokDoubleDanda
	TokAvagraha
	TokNumeral
	// TokAnu is the anunāsika nasalization marker ('~' in source text),
	// distinct from the full anusvāra consonant ('ṃ', TokVyanjana byte
	// 0x3A). It is emitted immediately after the vowel token it
	// modifies, preserving the source's left-to-right byte order per
	// the ANU/anusvāra ordering convention (TBD-4).
	TokAnu
)

// Token is a single unit produced by the IAST tokenizer.
type Token struct {
	Kind    TokenKind
	Byte    byte   // valid for TokSvara, TokVyanjana
	Digits  string // valid for TokNumeral: the accumulated decimal digits
	Pos     int    // rune offset in the source string where the token starts
}

// phonemeTrie is a longest-match lookup over the IAST phoneme alphabet:
// digraphs (kh, gh, ai, au, ...) are inserted alongside their
// single-rune prefixes so that Find always resolves to the longest
// valid token at the cursor, not the first character seen. Grounded on
// github.com/derekparker/trie (see npillmayer-hyphenate's go.mod for
// this dependency's provenance).
var phonemeTrie = buildPhonemeTrie()

type phonemeEntry struct {
	kind TokenKind
	b    byte
}

func buildPhonemeTrie() *trie.Trie {
	t := trie.New()
	for tok, b := range iastSvara {
		t.Add(tok, phonemeEntry{kind: TokSvara, b: b})
	}
	for tok, b := range iastVyanjana {
		t.Add(tok, phonemeEntry{kind: TokVyanjana, b: b})
	}
	// Aspirated consonants are not reachable through the plain
	// consonant+'h' table above (iastVyanjana has its own "kh" etc.
	// entries already), but diphthongs must be reachable before their
	// leading vowel is matched as standalone 'a'.
	t.Add("ai", phonemeEntry{kind: TokSvara, b: 0x86})
	t.Add("au", phonemeEntry{kind: TokSvara, b: 0x8A})
	return t
}

// longestMatch tries, from longest to shortest, to resolve a phoneme
// token starting at chars[i]. maxPhonemeLen bounds how many runes to try (the
// alphabet's longest entry is 2 runes).
const maxPhonemeLen = 2

func longestMatch(chars []rune, i int) (phonemeEntry, int, bool) {
	limit := maxPhonemeLen
	if i+limit > len(chars) {
		limit = len(chars) - i
	}
	for n := limit; n >= 1; n-- {
		candidate := string(chars[i : i+n])
		if node, ok := phonemeTrie.Find(candidate); ok {
			if entry, ok := node.Meta().(phonemeEntry); ok {
				return entry, n, true
			}
		}
	}
	return phonemeEntry{}, 0, false
}

// TokenizeIAST performs a longest-match scan of an IAST string into a
// token sequence. Diphthongs (ai, au) and aspirated consonants
// (base+h) are resolved before their single-character prefixes, digits
// accumulate into Numeral tokens, and '|'/'||' become Danda/DoubleDanda.
func TokenizeIAST(input string) ([]Token, error) {
	chars := []rune(input)
	var tokens []Token
	i := 0

	for i < len(chars) {
		ch := chars[i]

		if ch == '\r' {
			i++
			continue
		}

		if ch == ' ' || ch == '\t' || ch == '\n' {
			if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokSpace {
				tokens = append(tokens, Token{Kind: TokSpace, Pos: i})
			}
			i++
			continue
		}

		if ch == '|' {
			if i+1 < len(chars) && chars[i+1] == '|' {
				tokens = append(tokens, Token{Kind: TokDoubleDanda, Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: TokDanda, Pos: i})
				i++
			}
			continue
		}

		if ch == '\'' || ch == 'ऽ' {
			tokens = append(tokens, Token{Kind: TokAvagraha, Pos: i})
			i++
			continue
		}

		if ch == '~' {
			if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokSvara {
				return nil, &InputEncodingError{
					Token: "~",
					Pos:   i,
					Msg:   "anunāsika marker '~' must follow a vowel",
				}
			}
			tokens = append(tokens, Token{Kind: TokAnu, Pos: i})
			i++
			continue
		}

		if ch >= '0' && ch <= '9' {
			start := i
			for i < len(chars) && chars[i] >= '0' && chars[i] <= '9' {
				i++
			}
			tokens = append(tokens, Token{Kind: TokNumeral, Digits: string(chars[start:i]), Pos: start})
			continue
		}

		entry, n, ok := longestMatch(chars, i)
		if !ok {
			return nil, &InputEncodingError{
				Token: string(ch),
				Pos:   i,
				Msg:   "unrecognized IAST character",
			}
		}
		tokens = append(tokens, Token{Kind: entry.kind, Byte: entry.b, Pos: i})
		i += n
	}

	return tokens, nil
}

// digitsOnly reports whether s consists entirely of ASCII decimal
// digits; used by callers validating Numeral.Digits before encoding.
func digitsOnly(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
