package slbc

// This file implements the stream encoder: token sequence -> interleaved
// bhāṣā+lipi byte stream, including pada boundaries and the numeral
// dual-layer span.

// EncodeOptions controls lipi-lane emission during encoding.
type EncodeOptions struct {
	// SuppressLipi, if true, omits SPACE/DANDA/DOUBLE_DANDA (the lipi
	// lane) and emits only the bhāṣā-layer bytes, for HAS_LIPI=0
	// (bhāṣā-canonical) containers.
	SuppressLipi bool
}

// EncodeTokens turns a tokenized IAST sequence into the interleaved
// bhāṣā+lipi byte stream: each pada (a run of phoneme tokens with no
// intervening space) is wrapped in PADA_START/PADA_END; SPACE, DANDA,
// and DOUBLE_DANDA close any open pada and sit between padas; AVAGRAHA
// is lipi-layer but appears inline inside a pada, since it elides a
// phoneme rather than separating words; a Numeral token expands into
// the dual SAṄKHYĀ/NUM span via EncodeNumeral.
func EncodeTokens(tokens []Token, opts EncodeOptions) ([]byte, error) {
	var out []byte
	inPada := false

	closePada := func() {
		if inPada {
			out = append(out, PadaEnd)
			inPada = false
		}
	}
	openPada := func() {
		if !inPada {
			out = append(out, PadaStart)
			inPada = true
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokSvara, TokVyanjana:
			openPada()
			out = append(out, tok.Byte)

		case TokSpace:
			closePada()
			if !opts.SuppressLipi {
				out = append(out, Space)
			}

		case TokDanda:
			closePada()
			if !opts.SuppressLipi {
				out = append(out, Danda)
			}

		case TokDoubleDanda:
			closePada()
			if !opts.SuppressLipi {
				out = append(out, DoubleDanda)
			}

		case TokAvagraha:
			openPada()
			if !opts.SuppressLipi {
				out = append(out, Avagraha)
			}

		case TokAnu:
			openPada()
			out = append(out, Anu)

		case TokNumeral:
			closePada()
			var err error
			out, err = EncodeNumeral(tok.Digits, out, !opts.SuppressLipi)
			if err != nil {
				return nil, err
			}

		default:
			return nil, &InvariantError{State: "EncodeTokens", Msg: "unhandled token kind"}
		}
	}

	closePada()
	return out, nil
}

// EncodeIAST tokenizes and encodes an IAST string in one call. This is
// the entry point most callers reach for; EncodeTokens remains
// available for callers that already hold a token sequence (e.g. after
// algebra-kernel rewrites applied to individual phoneme bytes).
func EncodeIAST(input string, opts EncodeOptions) ([]byte, error) {
	tokens, err := TokenizeIAST(input)
	if err != nil {
		return nil, err
	}
	return EncodeTokens(tokens, opts)
}
