package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeSimple(t *testing.T) {
	tokens, err := TokenizeIAST("ka")
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: TokVyanjana, Byte: 0x00, Pos: 0},
		{Kind: TokSvara, Byte: 0x40, Pos: 1},
	}, tokens)
}

func TestTokenizeAspirate(t *testing.T) {
	tokens, err := TokenizeIAST("kha")
	require.NoError(t, err)
	require.Equal(t, TokVyanjana, tokens[0].Kind)
	require.Equal(t, byte(0x01), tokens[0].Byte)
}

func TestTokenizeDiphthongs(t *testing.T) {
	tokens, err := TokenizeIAST("ai")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, byte(0x86), tokens[0].Byte)

	tokens, err = TokenizeIAST("au")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, byte(0x8A), tokens[0].Byte)
}

func TestTokenizeDoesNotConfuseAWithDiphthong(t *testing.T) {
	// "a" alone must stay 'a', not fall through to "ai"/"au" lookahead.
	tokens, err := TokenizeIAST("a")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, byte(0x40), tokens[0].Byte)
}

func TestTokenizeDandaAndDoubleDanda(t *testing.T) {
	tokens, err := TokenizeIAST("ka | ga || na")
	require.NoError(t, err)

	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Contains(t, kinds, TokDanda)
	require.Contains(t, kinds, TokDoubleDanda)
}

func TestTokenizeAvagraha(t *testing.T) {
	tokens, err := TokenizeIAST("'tra")
	require.NoError(t, err)
	require.Equal(t, TokAvagraha, tokens[0].Kind)

	tokens, err = TokenizeIAST("ऽtra")
	require.NoError(t, err)
	require.Equal(t, TokAvagraha, tokens[0].Kind)
}

func TestTokenizeNumeral(t *testing.T) {
	tokens, err := TokenizeIAST("108")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, TokNumeral, tokens[0].Kind)
	require.Equal(t, "108", tokens[0].Digits)
}

func TestTokenizeCollapsesWhitespace(t *testing.T) {
	tokens, err := TokenizeIAST("na   ca")
	require.NoError(t, err)

	spaceCount := 0
	for _, tok := range tokens {
		if tok.Kind == TokSpace {
			spaceCount++
		}
	}
	require.Equal(t, 1, spaceCount)
}

func TestTokenizeRejectsUnknownCharacter(t *testing.T) {
	_, err := TokenizeIAST("k@")
	require.Error(t, err)
	var inputErr *InputEncodingError
	require.ErrorAs(t, err, &inputErr)
}

func TestTokenizeAnu(t *testing.T) {
	tokens, err := TokenizeIAST("a~")
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: TokSvara, Byte: 0x40, Pos: 0},
		{Kind: TokAnu, Pos: 1},
	}, tokens)
}

func TestTokenizeAnuRequiresPrecedingVowel(t *testing.T) {
	_, err := TokenizeIAST("k~")
	require.Error(t, err)
	var inputErr *InputEncodingError
	require.ErrorAs(t, err, &inputErr)
}

func TestTokenizeKrsna(t *testing.T) {
	// §8 scenario 2: "kṛṣṇa" -> [k, ṛ, ṣ, ṇ, a].
	tokens, err := TokenizeIAST("kṛṣṇa")
	require.NoError(t, err)

	var bytes []byte
	for _, tok := range tokens {
		bytes = append(bytes, tok.Byte)
	}
	require.Equal(t, []byte{0x00, 0x4C, 0x2A, 0x14, 0x40}, bytes)
}
