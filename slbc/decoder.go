package slbc

import "strings"

// This file implements the stream decoder: a stateful walk over a PHON
// chunk's bhāṣā+lipi bytes, producing either a flat Event sequence or
// rendered IAST/Devanāgarī text directly. Lane detection is always a
// function of the current DecodeState, never of the raw byte value
// alone — chunk type 0x06 (IDX) and bhāṣā control 0x06 (META_START)
// must never be confused, and this package only ever sees the latter.

// DecodeState names the decoder's current lane.
type DecodeState int

const (
	StateNormal DecodeState = iota
	StateInPada
	StateInSankhyaSpan
	StateInNumSpan
	StateInMetaBlock
)

func (s DecodeState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateInPada:
		return "InPada"
	case StateInSankhyaSpan:
		return "InSankhyaSpan"
	case StateInNumSpan:
		return "InNumSpan"
	case StateInMetaBlock:
		return "InMetaBlock"
	default:
		return "Unknown"
	}
}

// Script selects the decoder's text target.
type Script int

const (
	ScriptIAST Script = iota
	ScriptDevanagari
)

// DecodeToEvents walks a PHON payload and returns its Event sequence,
// without rendering to any particular script. This is the form the
// extraction driver consumes: it can inspect and filter events (e.g.
// suppress EvMetaEnvelope in pāṭha mode) before any text is produced.
func DecodeToEvents(data []byte) ([]Event, error) {
	var events []Event
	state := StateNormal
	metaDepth := 0
	i := 0

	for i < len(data) {
		b := data[i]
		offset := i

		if IsBhashaControl(b) {
			switch b {
			case PadaStart:
				state = StateInPada
				events = append(events, Event{Kind: EvPadaStart, Offset: offset})
				i++
			case PadaEnd:
				state = StateNormal
				events = append(events, Event{Kind: EvPadaEnd, Offset: offset})
				i++
			case PhonStart:
				events = append(events, Event{Kind: EvPhonStart, Offset: offset})
				i++
			case PhonEnd:
				events = append(events, Event{Kind: EvPhonEnd, Offset: offset})
				i++
			case MetaStart:
				prior := state
				state = StateInMetaBlock
				metaDepth = 1
				metaStart := i
				i++
				for i < len(data) && metaDepth > 0 {
					switch data[i] {
					case MetaStart:
						metaDepth++
					case MetaEnd:
						metaDepth--
					}
					i++
				}
				if metaDepth != 0 {
					return nil, &SpanError{Offset: metaStart, Msg: "unterminated META block"}
				}
				events = append(events, Event{Kind: EvMetaEnvelope, Meta: data[metaStart:i], Offset: metaStart})
				state = prior
			case Anu:
				events = append(events, Event{Kind: EvAnu, Offset: offset})
				i++
			case SankhyaStart:
				digits, consumed, err := DecodeSankhya(data, i)
				if err != nil {
					return nil, err
				}
				events = append(events, Event{Kind: EvSankhyaSpan, Digits: digits, Offset: offset})
				i += consumed
				if i < len(data) && data[i] == Num {
					numDigits, numConsumed, err := DecodeNum(data, i)
					if err != nil {
						return nil, err
					}
					events = append(events, Event{Kind: EvNumSpan, Digits: numDigits, Offset: i})
					i += numConsumed
				}
			default:
				return nil, &InvariantError{State: state.String(), Msg: "reserved bhāṣā control byte"}
			}
			continue
		}

		if IsLipiControl(b) {
			switch b {
			case Space:
				events = append(events, Event{Kind: EvSpace, Offset: offset})
			case Danda:
				events = append(events, Event{Kind: EvDanda, Offset: offset})
			case DoubleDanda:
				events = append(events, Event{Kind: EvDoubleDanda, Offset: offset})
			case Avagraha:
				events = append(events, Event{Kind: EvAvagraha, Offset: offset})
			case Num:
				digits, consumed, err := DecodeNum(data, i)
				if err != nil {
					return nil, err
				}
				events = append(events, Event{Kind: EvNumSpan, Digits: digits, Offset: offset})
				i += consumed
				continue
			case MetaExt:
				// Reserved extension marker; carried through uninterpreted.
			default:
				return nil, &InvariantError{State: state.String(), Msg: "reserved lipi control byte"}
			}
			i++
			continue
		}

		if IsReserved(b) {
			return nil, &InvariantError{State: state.String(), Msg: "reserved COLUMN=5 byte"}
		}

		if IsSvara(b) || IsVyanjana(b) {
			events = append(events, Event{Kind: EvPhoneme, Byte: b, Offset: offset})
			i++
			continue
		}

		return nil, &SpanError{Offset: offset, Msg: "unexpected byte"}
	}

	return events, nil
}

// DecodeToText renders a PHON payload to IAST or Devanāgarī text. It
// is DecodeToEvents followed by RenderEvents; call those two directly
// when the extraction driver needs to filter events (e.g. dropping
// META in pāṭha mode) before rendering.
func DecodeToText(data []byte, script Script) (string, error) {
	events, err := DecodeToEvents(data)
	if err != nil {
		return "", err
	}
	return RenderEvents(events, script)
}

// RenderEvents renders a previously decoded Event sequence to text.
// EvMetaEnvelope events are skipped — META's vyākaraṇa payload carries
// no textual rendering at this layer.
func RenderEvents(events []Event, script Script) (string, error) {
	switch script {
	case ScriptIAST:
		return renderIAST(events)
	case ScriptDevanagari:
		return renderDevanagari(events)
	default:
		return "", &InvariantError{State: "RenderEvents", Msg: "unknown script"}
	}
}

func renderIAST(events []Event) (string, error) {
	var out strings.Builder
	prevWasSankhya := false
	for _, ev := range events {
		switch ev.Kind {
		case EvPhoneme:
			out.WriteString(ByteToIAST(ev.Byte))
		case EvSpace:
			out.WriteByte(' ')
		case EvDanda:
			out.WriteByte('|')
		case EvDoubleDanda:
			out.WriteString("||")
		case EvAvagraha:
			out.WriteByte('\'')
		case EvSankhyaSpan:
			for _, d := range ev.Digits {
				out.WriteByte('0' + d)
			}
		case EvNumSpan:
			// A NUM span immediately following a SAṄKHYĀ span is its
			// lipi-layer echo, already rendered from the digits above.
			// A standalone NUM span (no paired SAṄKHYĀ) renders its own
			// digits — it should not occur in well-formed output but is
			// handled rather than silently dropped.
			if !prevWasSankhya {
				for _, d := range ev.Digits {
					out.WriteByte('0' + d)
				}
			}
		case EvAnu:
			out.WriteByte('~')
		case EvPadaStart, EvPadaEnd, EvPhonStart, EvPhonEnd, EvMetaEnvelope:
			// No IAST rendering.
		default:
			return "", &InvariantError{State: "renderIAST", Msg: "unhandled event kind"}
		}
		prevWasSankhya = ev.Kind == EvSankhyaSpan
	}
	return out.String(), nil
}

func renderDevanagari(events []Event) (string, error) {
	var out strings.Builder
	consonantPending := false

	closeConsonant := func() {
		if consonantPending {
			out.WriteString(virama)
			consonantPending = false
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case EvPhoneme:
			b := ev.Byte
			switch {
			case IsSvara(b):
				if consonantPending {
					if matra, ok := DevanagariMatra(b); ok {
						out.WriteString(matra)
					}
					consonantPending = false
				} else {
					out.WriteString(DevanagariIndependentVowel(b))
				}
			case postfixMark(b):
				consonantPending = false
				out.WriteString(postfixMarkGlyph(b))
			default:
				closeConsonant()
				out.WriteString(DevanagariConsonant(b))
				consonantPending = true
			}

		case EvSpace:
			closeConsonant()
			out.WriteByte(' ')
		case EvDanda:
			closeConsonant()
			out.WriteString("।")
		case EvDoubleDanda:
			closeConsonant()
			out.WriteString("॥")
		case EvAvagraha:
			closeConsonant()
			out.WriteString("ऽ")
		case EvSankhyaSpan:
			closeConsonant()
			// Digits render from the NUM span's glyph bytes, not here.
		case EvNumSpan:
			closeConsonant()
			for _, d := range ev.Digits {
				out.WriteRune(DevanagariDigits[d])
			}
		case EvAnu:
			out.WriteString("ँ")
		case EvPadaStart, EvPadaEnd, EvPhonStart, EvPhonEnd, EvMetaEnvelope:
			// No direct rendering.
		default:
			return "", &InvariantError{State: "renderDevanagari", Msg: "unhandled event kind"}
		}
	}

	closeConsonant()
	return out.String(), nil
}
