package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNumeral108(t *testing.T) {
	// §8 scenario 5: "108" produces the SAṄKHYĀ span (units-first padas)
	// followed by the NUM span (visual left-to-right glyphs).
	out, err := EncodeNumeral("108", nil, true)
	require.NoError(t, err)

	want := []byte{
		SankhyaStart, 0x03,
		PadaStart, 0x40, 0x2A, 0x10, 0x40, PadaEnd, // "8" = aṣṭa digit-word
		PadaStart, 0x29, 0x88, 0x1C, 0x31, 0x40, PadaEnd, // "0" = śūnya
		PadaStart, 0x85, 0x00, 0x40, PadaEnd, // "1" = eka
		Num, 0x01, 0x00, 0x08,
	}
	require.Equal(t, want, out)
}

func TestEncodeNumeralSuppressLipi(t *testing.T) {
	out, err := EncodeNumeral("5", nil, false)
	require.NoError(t, err)
	require.NotContains(t, out, Num)
	require.Contains(t, out, SankhyaStart)
}

func TestEncodeNumeralRejectsNonDigit(t *testing.T) {
	_, err := EncodeNumeral("1a2", nil, true)
	require.Error(t, err)
	var inputErr *InputEncodingError
	require.ErrorAs(t, err, &inputErr)
}

func TestSankhyaDecodeRoundTrip(t *testing.T) {
	for _, digits := range []string{"0", "5", "108", "1000000", "42"} {
		encoded, err := EncodeNumeral(digits, nil, true)
		require.NoError(t, err)

		decoded, consumed, err := DecodeSankhya(encoded, 0)
		require.NoError(t, err)

		var got []byte
		for _, d := range decoded {
			got = append(got, '0'+d)
		}
		require.Equal(t, digits, string(got))

		require.Equal(t, Num, encoded[consumed])
		numDigits, _, err := DecodeNum(encoded, consumed)
		require.NoError(t, err)

		var gotNum []byte
		for _, d := range numDigits {
			gotNum = append(gotNum, '0'+d)
		}
		require.Equal(t, digits, string(gotNum))
	}
}

func TestDecodeSankhyaRejectsBadVocabulary(t *testing.T) {
	// Well-formed framing but a pada whose content isn't a digit-word.
	bad := []byte{SankhyaStart, 0x01, PadaStart, 0x00, PadaEnd}
	_, _, err := DecodeSankhya(bad, 0)
	require.Error(t, err)
	var spanErr *SpanError
	require.ErrorAs(t, err, &spanErr)
}

func TestDecodeNumTerminatesImplicitly(t *testing.T) {
	data := []byte{Num, 0x01, 0x00, 0x08, PadaStart}
	digits, consumed, err := DecodeNum(data, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x08}, digits)
	require.Equal(t, 4, consumed) // NUM marker + 3 glyphs, not PADA_START
}
