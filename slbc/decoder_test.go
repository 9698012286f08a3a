package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeKaToIAST(t *testing.T) {
	encoded, err := EncodeIAST("ka", EncodeOptions{})
	require.NoError(t, err)

	text, err := DecodeToText(encoded, ScriptIAST)
	require.NoError(t, err)
	require.Equal(t, "ka", text)
}

func TestDecodeKaToDevanagari(t *testing.T) {
	encoded, err := EncodeIAST("ka", EncodeOptions{})
	require.NoError(t, err)

	text, err := DecodeToText(encoded, ScriptDevanagari)
	require.NoError(t, err)
	require.Equal(t, "क", text)
}

func TestDecodeKiToDevanagari(t *testing.T) {
	encoded, err := EncodeIAST("ki", EncodeOptions{})
	require.NoError(t, err)

	text, err := DecodeToText(encoded, ScriptDevanagari)
	require.NoError(t, err)
	require.Equal(t, "कि", text)
}

func TestDecodeConsonantWithMatraDevanagari(t *testing.T) {
	// "kṛ" -> क + ृ (matra), no virama since only one consonant precedes a vowel.
	encoded, err := EncodeIAST("kṛ", EncodeOptions{})
	require.NoError(t, err)

	text, err := DecodeToText(encoded, ScriptDevanagari)
	require.NoError(t, err)
	require.Equal(t, "कृ", text)
}

func TestDecodeConsonantClusterInsertsVirama(t *testing.T) {
	// "rma" has two consecutive consonants (r, m) before the vowel.
	encoded, err := EncodeIAST("rma", EncodeOptions{})
	require.NoError(t, err)

	text, err := DecodeToText(encoded, ScriptDevanagari)
	require.NoError(t, err)
	require.Equal(t, "र्म", text)
}

func TestRoundTripSimpleWords(t *testing.T) {
	for _, word := range []string{"dharma", "kṛṣṇa", "na ca", "rāma", "guru"} {
		encoded, err := EncodeIAST(word, EncodeOptions{})
		require.NoError(t, err)

		decoded, err := DecodeToText(encoded, ScriptIAST)
		require.NoError(t, err)
		require.Equal(t, word, decoded)
	}
}

func TestRoundTripPunctuation(t *testing.T) {
	input := "dharmakṣetre kurukṣetre |"
	encoded, err := EncodeIAST(input, EncodeOptions{})
	require.NoError(t, err)

	decoded, err := DecodeToText(encoded, ScriptIAST)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestRoundTripNumeral(t *testing.T) {
	input := "108"
	encoded, err := EncodeIAST(input, EncodeOptions{})
	require.NoError(t, err)

	decoded, err := DecodeToText(encoded, ScriptIAST)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestRoundTripAnu(t *testing.T) {
	input := "a~ gam"
	encoded, err := EncodeIAST(input, EncodeOptions{})
	require.NoError(t, err)
	require.Contains(t, encoded, Anu)

	decoded, err := DecodeToText(encoded, ScriptIAST)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestDecodeAnuToDevanagari(t *testing.T) {
	encoded, err := EncodeIAST("a~", EncodeOptions{})
	require.NoError(t, err)

	decoded, err := DecodeToText(encoded, ScriptDevanagari)
	require.NoError(t, err)
	require.Equal(t, "अँ", decoded)
}

func TestDecodeSkipsMetaBlockForIAST(t *testing.T) {
	encoded, err := EncodeIAST("ka", EncodeOptions{})
	require.NoError(t, err)

	withMeta := append([]byte{}, encoded[:len(encoded)-1]...) // before PADA_END
	withMeta = append(withMeta, MetaStart, MetaKarakaTag, 0x01, MetaEnd)
	withMeta = append(withMeta, PadaEnd)

	text, err := DecodeToText(withMeta, ScriptIAST)
	require.NoError(t, err)
	require.Equal(t, "ka", text)
}

func TestDecodeNestedMetaBlock(t *testing.T) {
	data := []byte{
		PadaStart, 0x00, 0x40,
		MetaStart, MetaSandhiTag, MetaStart, 0x01, MetaEnd, MetaEnd,
		PadaEnd,
	}
	events, err := DecodeToEvents(data)
	require.NoError(t, err)

	var metaCount int
	for _, ev := range events {
		if ev.Kind == EvMetaEnvelope {
			metaCount++
		}
	}
	require.Equal(t, 1, metaCount)
}

func TestDecodeRejectsUnterminatedMeta(t *testing.T) {
	data := []byte{PadaStart, 0x00, MetaStart, 0x01, PadaEnd}
	_, err := DecodeToEvents(data)
	require.Error(t, err)
	var spanErr *SpanError
	require.ErrorAs(t, err, &spanErr)
}

func TestDecodeSuppressedLipiHasNoNumSpan(t *testing.T) {
	encoded, err := EncodeIAST("108", EncodeOptions{SuppressLipi: true})
	require.NoError(t, err)

	events, err := DecodeToEvents(encoded)
	require.NoError(t, err)

	for _, ev := range events {
		require.NotEqual(t, EvNumSpan, ev.Kind)
	}
}
