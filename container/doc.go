// Package container implements the .slbc file format: the
// 14-byte fixed header, optional extended header, a sequence of
// type+ULEB128-length+payload chunks, and a mandatory EOF chunk.
//
// The package also owns ULEB128, since the same variable-length
// integer encoding is reused by the bhāṣā-layer SAṄKHYĀ span
// (slbc.EncodeNumeral) as well as chunk framing here.
package container
