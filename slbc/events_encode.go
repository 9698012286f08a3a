package slbc

import "github.com/abhyagra/slbc/container"

// EncodeEvents re-serializes a (possibly filtered) Event sequence back
// into bhāṣā+lipi bytes. It is the inverse of DecodeToEvents, and
// exists for the extraction driver: filter a decoded stream's events
// (e.g. drop EvMetaEnvelope for pāṭha mode, drop EvSpace/EvNumSpan for
// bhāṣā-only mode) and re-emit bytes without re-tokenizing from text.
func EncodeEvents(events []Event) ([]byte, error) {
	var out []byte
	for _, ev := range events {
		switch ev.Kind {
		case EvPhoneme:
			out = append(out, ev.Byte)
		case EvPadaStart:
			out = append(out, PadaStart)
		case EvPadaEnd:
			out = append(out, PadaEnd)
		case EvPhonStart:
			out = append(out, PhonStart)
		case EvPhonEnd:
			out = append(out, PhonEnd)
		case EvSpace:
			out = append(out, Space)
		case EvDanda:
			out = append(out, Danda)
		case EvDoubleDanda:
			out = append(out, DoubleDanda)
		case EvAvagraha:
			out = append(out, Avagraha)
		case EvSankhyaSpan:
			out = append(out, SankhyaStart)
			out = container.AppendULEB128(out, uint64(len(ev.Digits)))
			for i := len(ev.Digits) - 1; i >= 0; i-- {
				out = append(out, PadaStart)
				out = append(out, digitWords[ev.Digits[i]]...)
				out = append(out, PadaEnd)
			}
		case EvNumSpan:
			out = append(out, Num)
			out = append(out, ev.Digits...)
		case EvMetaEnvelope:
			out = append(out, ev.Meta...)
		case EvAnu:
			out = append(out, Anu)
		default:
			return nil, &InvariantError{State: "EncodeEvents", Msg: "unhandled event kind"}
		}
	}
	return out, nil
}
