// Package slbc implements SLBC, the Sanskrit Linguistic Binary Codec.
//
// SLBC represents Sanskrit phonemes as single bytes whose bits encode
// articulatory features directly, so that Pāṇinian transformations
// (guṇa, vṛddhi, jaśtva, saṃprasāraṇa, homorganic nasalization) reduce
// to bit manipulations rather than table lookups.
//
// # Byte shapes
//
// A svara (vowel) byte has bits[7:6] != 00 and layout Q[2] A[2] S[2] G[2]
// (quantity, accent, series, grade). A vyañjana (consonant) byte has
// bits[7:6] == 00 and layout 00 PLACE[3] COLUMN[3]. Bhāṣā control bytes
// have COLUMN == 110; lipi control bytes have COLUMN == 111.
//
// # Pipeline
//
// Encode: IAST string -> Tokenize -> Encode -> interleaved byte stream.
// Decode: byte stream -> Decode -> event sequence -> IAST or Devanāgarī.
//
// The codec is synchronous: no goroutines, no global mutable state
// beyond the package logger and the immutable phoneme tables.
package slbc
