package slbc

// EventKind discriminates the variants of Event, the decoder's output
// unit. Uses a tagged-union frame-kind shape, repurposed from
// wire-frame kinds to phonemic-stream event kinds.
type EventKind int

const (
	EvPhoneme EventKind = iota
	EvPadaStart
	EvPadaEnd
	EvPhonStart
	EvPhonEnd
	EvSpace
	EvDanda
	EvDoubleDanda
	EvAvagraha
	EvAnu
	EvSankhyaSpan
	EvNumSpan
	EvMetaEnvelope
)

func (k EventKind) String() string {
	switch k {
	case EvPhoneme:
		return "Phoneme"
	case EvPadaStart:
		return "PadaStart"
	case EvPadaEnd:
		return "PadaEnd"
	case EvPhonStart:
		return "PhonStart"
	case EvPhonEnd:
		return "PhonEnd"
	case EvSpace:
		return "Space"
	case EvDanda:
		return "Danda"
	case EvDoubleDanda:
		return "DoubleDanda"
	case EvAvagraha:
		return "Avagraha"
	case EvAnu:
		return "Anu"
	case EvSankhyaSpan:
		return "SankhyaSpan"
	case EvNumSpan:
		return "NumSpan"
	case EvMetaEnvelope:
		return "MetaEnvelope"
	default:
		return "Unknown"
	}
}

// Event is one unit of the decoded token stream.
type Event struct {
	Kind   EventKind
	Byte   byte   // valid for EvPhoneme
	Digits []byte // valid for EvSankhyaSpan/EvNumSpan: L->R digit values 0-9
	Meta   []byte // valid for EvMetaEnvelope: raw passthrough bytes, uninterpreted
	Offset int    // byte offset in the source stream where the event began
}
