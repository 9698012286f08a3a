package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGunaVrddhi(t *testing.T) {
	// guna(i) == e; vrddhi(i) == ai (§8 scenario 3).
	g, err := Guna(0x44) // i
	require.NoError(t, err)
	require.Equal(t, byte(0x85), g) // e

	v, err := Vrddhi(0x44) // i
	require.NoError(t, err)
	require.Equal(t, byte(0x86), v) // ai
}

func TestGunaRejectsASeries(t *testing.T) {
	_, err := Guna(0x40) // a
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestVrddhiASeriesSpecialCase(t *testing.T) {
	// a -> ā: Q=10, with S and G both left at 00.
	v, err := Vrddhi(0x40) // a
	require.NoError(t, err)
	require.Equal(t, byte(0x80), v) // ā
}

func TestGunaVrddhiPreserveAccent(t *testing.T) {
	udattaI := WithAccent(0x44, AUdatta)
	g, err := Guna(udattaI)
	require.NoError(t, err)
	require.Equal(t, AUdatta, SvaraA(g))

	v, err := Vrddhi(udattaI)
	require.NoError(t, err)
	require.Equal(t, AUdatta, SvaraA(v))
}

func TestDirghaHrasvaRoundTrip(t *testing.T) {
	// hrasva(dirgha(s)) == hrasva(s).
	short := byte(0x44) // i
	long, err := Dirgha(short)
	require.NoError(t, err)
	backToShort, err := Hrasva(long)
	require.NoError(t, err)

	alreadyShort, err := Hrasva(short)
	require.NoError(t, err)
	require.Equal(t, alreadyShort, backToShort)
}

func TestSavarnaDirgha(t *testing.T) {
	result, err := SavarnaDirgha(0x44, 0x44) // i + i -> ī
	require.NoError(t, err)
	require.Equal(t, byte(0x84), result)

	_, err = SavarnaDirgha(0x44, 0x48) // i + u: different series
	require.Error(t, err)
}

func TestJastva(t *testing.T) {
	g, err := Jastva(0x00) // ka -> ga
	require.NoError(t, err)
	require.Equal(t, byte(0x02), g)

	// Property 5: jastva(c) == c | 0b010 for unaspirated voiceless c.
	for _, unvoicedUnaspirated := range []byte{0x00, 0x08, 0x10, 0x18, 0x20} {
		got, err := Jastva(unvoicedUnaspirated)
		require.NoError(t, err)
		require.Equal(t, unvoicedUnaspirated|0b010, got)
	}
}

func TestToggleVoiceIsInvolution(t *testing.T) {
	for _, c := range []byte{0x00, 0x02, 0x08, 0x0A, 0x18, 0x1A} {
		twice, err := ToggleVoice(c)
		require.NoError(t, err)
		twice, err = ToggleVoice(twice)
		require.NoError(t, err)
		require.Equal(t, c, twice)
	}
}

func TestToggleAspirationIsInvolution(t *testing.T) {
	for _, c := range []byte{0x00, 0x01, 0x02, 0x03} {
		twice, err := ToggleAspiration(c)
		require.NoError(t, err)
		twice, err = ToggleAspiration(twice)
		require.NoError(t, err)
		require.Equal(t, c, twice)
	}
}

func TestMakeNasalAndHomorganic(t *testing.T) {
	n, err := MakeNasal(0x00) // ka -> ṅa
	require.NoError(t, err)
	require.Equal(t, byte(0x04), n)

	h, err := HomorganicNasalFor(0x1A) // da -> na
	require.NoError(t, err)
	require.Equal(t, byte(0x1C), h)
}

func TestSamprasaranaRoundTrip(t *testing.T) {
	cases := map[byte]byte{
		0x31: 0x44, // ya -> i
		0x32: 0x48, // va -> u
		0x33: 0x4C, // ra -> ṛ
		0x34: 0x4F, // la -> ḷ
	}
	for sonorant, vowel := range cases {
		got, err := SamprasaranaToSvara(sonorant)
		require.NoError(t, err)
		require.Equal(t, vowel, got)

		back, err := SamprasaranaToSonorant(got)
		require.NoError(t, err)
		require.Equal(t, sonorant, back)
	}
}

func TestSamprasaranaRejectsNonSonorant(t *testing.T) {
	_, err := SamprasaranaToSvara(0x00) // ka is not a sonorant
	require.Error(t, err)
}

func TestVargaOpsRejectNonVarga(t *testing.T) {
	// ś (0x29) is vyañjana but not varga (place=5).
	_, err := Jastva(0x29)
	require.Error(t, err)
	_, err = ToggleVoice(0x29)
	require.Error(t, err)
	_, err = MakeNasal(0x29)
	require.Error(t, err)
}
