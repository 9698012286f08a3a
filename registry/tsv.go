package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CompileTSV reads the tab-separated source-of-truth format for
// registry kind k and returns its entries. Lines whose first
// non-whitespace character is '#' are comments and are skipped before
// the CSV reader ever sees them, since encoding/csv has no built-in
// comment syntax.
//
// Column layout by kind:
//
//	dhatu:        id  iast  gana  pada  karma  it_flags  set_flags
//	pratipadika:  id  iast  stem_class  linga  flags
//	sandhi-rule:  id  iast  type  sutra_ref
func CompileTSV(k Kind, r io.Reader) ([]Entry, error) {
	filtered, err := stripComments(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(filtered))
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &Error{EntityID: -1, Msg: fmt.Sprintf("TSV parse: %v", err)}
	}

	entries := make([]Entry, 0, len(rows))
	for lineNum, row := range rows {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		entry, err := parseRow(k, row)
		if err != nil {
			return nil, &Error{EntityID: -1, Msg: fmt.Sprintf("line %d: %v", lineNum+1, err)}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func stripComments(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	lines := strings.Split(string(data), "\n")
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), nil
}

func parseRow(k Kind, row []string) (Entry, error) {
	switch k {
	case KindDhatu:
		if len(row) < 7 {
			return Entry{}, fmt.Errorf("dhatu row needs 7 columns, got %d", len(row))
		}
		id, err := parseUint(row[0])
		if err != nil {
			return Entry{}, err
		}
		gana, err := parseByte(row[2])
		if err != nil {
			return Entry{}, err
		}
		pada, err := parseByte(row[3])
		if err != nil {
			return Entry{}, err
		}
		karma, err := parseByte(row[4])
		if err != nil {
			return Entry{}, err
		}
		it, err := parseByte(row[5])
		if err != nil {
			return Entry{}, err
		}
		set, err := parseByte(row[6])
		if err != nil {
			return Entry{}, err
		}
		return Entry{
			ID:   id,
			IAST: row[1],
			Dhatu: &DhatuMeta{
				Gana: gana, Pada: pada, Karma: karma,
				ITFlags: it, SETFlags: set,
			},
		}, nil

	case KindPratipadika:
		if len(row) < 5 {
			return Entry{}, fmt.Errorf("pratipadika row needs 5 columns, got %d", len(row))
		}
		id, err := parseUint(row[0])
		if err != nil {
			return Entry{}, err
		}
		stemClass, err := parseByte(row[2])
		if err != nil {
			return Entry{}, err
		}
		linga, err := parseByte(row[3])
		if err != nil {
			return Entry{}, err
		}
		flags, err := parseByte(row[4])
		if err != nil {
			return Entry{}, err
		}
		return Entry{
			ID:   id,
			IAST: row[1],
			Pratipadika: &PratipadikaMeta{
				StemClass: stemClass, Linga: linga, Flags: flags,
			},
		}, nil

	case KindSandhiRule:
		if len(row) < 4 {
			return Entry{}, fmt.Errorf("sandhi-rule row needs 4 columns, got %d", len(row))
		}
		id, err := parseUint(row[0])
		if err != nil {
			return Entry{}, err
		}
		ruleType, err := parseByte(row[2])
		if err != nil {
			return Entry{}, err
		}
		return Entry{
			ID:         id,
			IAST:       row[1],
			SandhiRule: &SandhiRuleMeta{Type: ruleType, SutraRef: row[3]},
		}, nil

	default:
		return Entry{}, fmt.Errorf("unknown registry kind %v", k)
	}
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return v, nil
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric field %q: %w", s, err)
	}
	return byte(v), nil
}
