package registry

// Builtin dhātu, prātipadika, and sandhi-rule entries bootstrap every
// merged Table before any extension is loaded. IDs are drawn from the
// low end of the standard range (1-1999); the unused remainder of that
// range is headroom for the pre-allocated gaṇa ranges a fuller standard
// registry would occupy.

// BuiltinDhatus returns the bootstrap dhātu set.
func BuiltinDhatus() []Entry {
	return []Entry{
		{ID: 1, IAST: "kṛ", Dhatu: &DhatuMeta{Gana: 8, Pada: PadaUbhaya, Karma: KarmaSakarmaka}},
		{ID: 2, IAST: "gam", Dhatu: &DhatuMeta{Gana: 1, Pada: PadaParasmai, Karma: KarmaAkarmaka}},
		{ID: 3, IAST: "bhū", Dhatu: &DhatuMeta{Gana: 1, Pada: PadaParasmai, Karma: KarmaAkarmaka}},
		{ID: 4, IAST: "dā", Dhatu: &DhatuMeta{Gana: 3, Pada: PadaUbhaya, Karma: KarmaSakarmaka}},
		{ID: 5, IAST: "as", Dhatu: &DhatuMeta{Gana: 2, Pada: PadaParasmai, Karma: KarmaAkarmaka}},
		{ID: 6, IAST: "vad", Dhatu: &DhatuMeta{Gana: 1, Pada: PadaParasmai, Karma: KarmaSakarmaka}},
		{ID: 7, IAST: "dṛś", Dhatu: &DhatuMeta{Gana: 1, Pada: PadaParasmai, Karma: KarmaSakarmaka}},
		{ID: 8, IAST: "budh", Dhatu: &DhatuMeta{Gana: 1, Pada: PadaUbhaya, Karma: KarmaSakarmaka}},
	}
}

// BuiltinPratipadikas returns the bootstrap prātipadika set.
func BuiltinPratipadikas() []Entry {
	return []Entry{
		{ID: 1, IAST: "rāma", Pratipadika: &PratipadikaMeta{StemClass: 1, Linga: LingaMasculine}},
		{ID: 2, IAST: "dharma", Pratipadika: &PratipadikaMeta{StemClass: 1, Linga: LingaMasculine}},
		{ID: 3, IAST: "phala", Pratipadika: &PratipadikaMeta{StemClass: 1, Linga: LingaNeuter}},
		{ID: 4, IAST: "senā", Pratipadika: &PratipadikaMeta{StemClass: 2, Linga: LingaFeminine}},
		{ID: 5, IAST: "guru", Pratipadika: &PratipadikaMeta{StemClass: 3, Linga: LingaMasculine}},
	}
}

// Sandhi rule types.
const (
	SandhiTypeVowel byte = iota
	SandhiTypeVisarga
	SandhiTypeConsonant
)

// BuiltinSandhiRules returns the bootstrap sandhi-rule set.
func BuiltinSandhiRules() []Entry {
	return []Entry{
		{ID: 1, IAST: "a + i -> e", SandhiRule: &SandhiRuleMeta{Type: SandhiTypeVowel, SutraRef: "6.1.87"}},
		{ID: 2, IAST: "a + u -> o", SandhiRule: &SandhiRuleMeta{Type: SandhiTypeVowel, SutraRef: "6.1.87"}},
		{ID: 3, IAST: "ḥ + c/ch -> ś", SandhiRule: &SandhiRuleMeta{Type: SandhiTypeVisarga, SutraRef: "8.3.36"}},
		{ID: 4, IAST: "t + c -> c", SandhiRule: &SandhiRuleMeta{Type: SandhiTypeConsonant, SutraRef: "8.4.40"}},
	}
}

// NewBuiltinTable builds a Table for k pre-loaded with its bootstrap
// entries. Callers merge extensions into the returned table with
// Load.
func NewBuiltinTable(k Kind) (*Table, error) {
	t := NewTable(k)
	var entries []Entry
	switch k {
	case KindDhatu:
		entries = BuiltinDhatus()
	case KindPratipadika:
		entries = BuiltinPratipadikas()
	case KindSandhiRule:
		entries = BuiltinSandhiRules()
	}
	if err := t.Load(entries); err != nil {
		return nil, err
	}
	return t, nil
}
