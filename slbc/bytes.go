package slbc

// Bhāṣā control bytes (COLUMN = 110).
const (
	MetaStart    byte = 0x06
	MetaEnd      byte = 0x0E
	PhonStart    byte = 0x16
	PhonEnd      byte = 0x1E
	PadaStart    byte = 0x26
	PadaEnd      byte = 0x2E
	SankhyaStart byte = 0x3E
	// Anu is the anunāsika nasalization marker (TBD-4), distinct from
	// the anusvāra consonant byte (0x3A). It follows the svara byte it
	// nasalizes, mirroring the '~' marker's position in source IAST.
	Anu byte = 0x36
)

// Lipi control bytes (COLUMN = 111).
const (
	Danda       byte = 0x0F
	DoubleDanda byte = 0x17
	Space       byte = 0x1F
	Avagraha    byte = 0x27
	Num         byte = 0x2F
	MetaExt     byte = 0x37
	// 0x07 and 0x3F are reserved.
)

// Vyākaraṇa META sub-tag markers (TBD-2): recognized but not interpreted.
const (
	MetaKarakaTag byte = 0xFD
	MetaSandhiTag byte = 0xFE
)

// IsSvara reports whether b is a vowel byte: bits[7:6] != 00.
func IsSvara(b byte) bool {
	return (b >> 6) != 0
}

// IsVyanjana reports whether b is a consonant byte: bits[7:6] == 00 and
// COLUMN <= 4.
func IsVyanjana(b byte) bool {
	return (b>>6) == 0 && (b&0x07) <= 4
}

// IsVarga reports whether b is one of the 25 varga (5x5 stop grid)
// consonants: bits[7:6] == 00, PLACE <= 4, and COLUMN <= 4. The COLUMN
// bound is required in addition to PLACE: bhāṣā/lipi control bytes carry
// COLUMN in {6,7} but can have PLACE values in 0-4, and would otherwise
// be misclassified as varga consonants.
func IsVarga(b byte) bool {
	return (b>>6) == 0 && Place(b) <= 4 && Column(b) <= 4
}

// IsBhashaControl reports whether b is a bhāṣā-lane control byte:
// bits[7:6] == 00 and COLUMN == 6.
func IsBhashaControl(b byte) bool {
	return (b>>6) == 0 && (b&0x07) == 6
}

// IsLipiControl reports whether b is a lipi-lane control byte:
// bits[7:6] == 00 and COLUMN == 7.
func IsLipiControl(b byte) bool {
	return (b>>6) == 0 && (b&0x07) == 7
}

// IsReserved reports whether b falls in the reserved COLUMN == 5 lane.
func IsReserved(b byte) bool {
	return (b>>6) == 0 && (b&0x07) == 5
}

// Place extracts the PLACE field (bits[5:3]) of a vyañjana byte.
func Place(b byte) byte {
	return (b >> 3) & 0x07
}

// Column extracts the COLUMN field (bits[2:0]) of a vyañjana byte.
func Column(b byte) byte {
	return b & 0x07
}

// SvaraQ extracts the quantity field (bits[7:6]) of a svara byte.
func SvaraQ(b byte) byte {
	return (b >> 6) & 0x03
}

// SvaraA extracts the accent field (bits[5:4]) of a svara byte.
func SvaraA(b byte) byte {
	return (b >> 4) & 0x03
}

// SvaraS extracts the series field (bits[3:2]) of a svara byte.
func SvaraS(b byte) byte {
	return (b >> 2) & 0x03
}

// SvaraG extracts the grade field (bits[1:0]) of a svara byte.
func SvaraG(b byte) byte {
	return b & 0x03
}

// Quantity values for Q.
const (
	QHrasva byte = 0b01
	QDirgha byte = 0b10
	QPluta  byte = 0b11
)

// Accent values for A. The neutral accent is always 00.
const (
	ANeutral  byte = 0b00
	AUdatta   byte = 0b01
	AAnudatta byte = 0b10
	ASvarita  byte = 0b11
)

// Series values for S.
const (
	SA byte = 0b00
	SI byte = 0b01
	SU byte = 0b10
	SR byte = 0b11
)

// Grade values for G.
const (
	GShuddha byte = 0b00
	GGuna    byte = 0b01
	GVrddhi  byte = 0b10
	GSpecial byte = 0b11
)
