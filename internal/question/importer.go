package question

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ParseCSV reads a semicolon-separated question bank (the format the source
// datasets ship in) and tags every row with cat. Header must contain
// question, option1..option4 and answer columns, in any order. Rows that fail
// validation are skipped and counted rather than aborting the whole import.
func ParseCSV(r io.Reader, cat Category) (qs []Question, skipped int, err error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return nil, 0, err
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return nil, 0, err
	}
	idx := map[string]int{}
	for i, h := range hdr {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range []string{"question", "option1", "option2", "option3", "option4", "answer"} {
		if _, ok := idx[k]; !ok {
			return nil, 0, errors.New("missing column: " + k)
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		field := func(k string) string {
			i := idx[k]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		q := Question{
			Category:  cat,
			Text:      field("question"),
			AnswerKey: field("answer"),
			Options: [4]string{
				field("option1"), field("option2"), field("option3"), field("option4"),
			},
		}
		if q.Validate() != nil {
			skipped++
			continue
		}
		qs = append(qs, q)
	}
	return qs, skipped, nil
}
