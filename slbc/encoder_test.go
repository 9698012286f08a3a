package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeKa(t *testing.T) {
	// §8 scenario 1: encode "ka" -> [0x00, 0x40] inside its pada wrapper.
	out, err := EncodeIAST("ka", EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{PadaStart, 0x00, 0x40, PadaEnd}, out)
}

func TestEncodeDharma(t *testing.T) {
	out, err := EncodeIAST("dharma", EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{PadaStart, 0x1B, 0x40, 0x33, 0x24, 0x40, PadaEnd}, out)
}

func TestEncodeTwoWords(t *testing.T) {
	out, err := EncodeIAST("na ca", EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{
		PadaStart, 0x1C, 0x40, PadaEnd,
		Space,
		PadaStart, 0x08, 0x40, PadaEnd,
	}, out)
}

func TestEncodeDandaClosesPada(t *testing.T) {
	out, err := EncodeIAST("rāma |", EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, byte(Danda), out[len(out)-1])
	// No dangling pada byte straddling the daṇḍa.
	require.NotEqual(t, byte(PadaEnd), out[len(out)-2])
}

func TestEncodeAvagrahaStaysInsidePada(t *testing.T) {
	out, err := EncodeIAST("'tra", EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, PadaStart, out[0])
	require.Contains(t, out, Avagraha)
	require.Equal(t, PadaEnd, out[len(out)-1])
}

func TestEncodeSuppressLipi(t *testing.T) {
	out, err := EncodeIAST("na ca", EncodeOptions{SuppressLipi: true})
	require.NoError(t, err)
	require.NotContains(t, out, Space)
}

func TestEncodeNumeralFragment(t *testing.T) {
	out, err := EncodeIAST("108 dharma", EncodeOptions{})
	require.NoError(t, err)
	require.Contains(t, out, SankhyaStart)
	require.Contains(t, out, byte(Num))
}

func TestEncodeRejectsUnknownToken(t *testing.T) {
	_, err := EncodeIAST("k@", EncodeOptions{})
	require.Error(t, err)
}
