package slbc

import "fmt"

// Class names the five mutually-exclusive byte classes (invariant 2).
type Class int

const (
	ClassSvara Class = iota
	ClassVyanjana
	ClassBhashaControl
	ClassLipiControl
	ClassReserved
)

func (c Class) String() string {
	switch c {
	case ClassSvara:
		return "svara"
	case ClassVyanjana:
		return "vyanjana"
	case ClassBhashaControl:
		return "bhasha-control"
	case ClassLipiControl:
		return "lipi-control"
	case ClassReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// Inspection is the full field breakdown of a single byte, the shape
// the `inspect` CLI subcommand prints. Grounded on original_source's
// inspect.rs field-table output, which the distillation names as a
// CLI subcommand without specifying its output shape.
type Inspection struct {
	Byte  byte
	Class Class

	// Valid for ClassVyanjana.
	Place byte
	Column byte
	IsVarga bool

	// Valid for ClassSvara.
	Q, A, S, G byte

	IAST string
}

// Inspect classifies b and breaks out its fields.
func Inspect(b byte) Inspection {
	insp := Inspection{Byte: b, IAST: ByteToIAST(b)}

	switch {
	case IsSvara(b):
		insp.Class = ClassSvara
		insp.Q = SvaraQ(b)
		insp.A = SvaraA(b)
		insp.S = SvaraS(b)
		insp.G = SvaraG(b)
	case IsVyanjana(b):
		insp.Class = ClassVyanjana
		insp.Place = Place(b)
		insp.Column = Column(b)
		insp.IsVarga = IsVarga(b)
	case IsBhashaControl(b):
		insp.Class = ClassBhashaControl
	case IsLipiControl(b):
		insp.Class = ClassLipiControl
	case IsReserved(b):
		insp.Class = ClassReserved
	}

	return insp
}

// String renders the inspection as a human-readable field table.
func (insp Inspection) String() string {
	switch insp.Class {
	case ClassSvara:
		return fmt.Sprintf("0x%02X svara  Q=%02b A=%02b S=%02b G=%02b  iast=%q",
			insp.Byte, insp.Q, insp.A, insp.S, insp.G, insp.IAST)
	case ClassVyanjana:
		varga := ""
		if insp.IsVarga {
			varga = " varga"
		}
		return fmt.Sprintf("0x%02X vyanjana%s  PLACE=%03b COLUMN=%03b  iast=%q",
			insp.Byte, varga, insp.Place, insp.Column, insp.IAST)
	default:
		return fmt.Sprintf("0x%02X %s", insp.Byte, insp.Class)
	}
}
