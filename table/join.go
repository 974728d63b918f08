package table

import (
	"fmt"
)

// LeftJoin matches every record of left with the first record of right whose rightKey value
// equals the record's leftKey value (ignoring surrounding whitespace). Records without a match
// keep empty cells for the right-only columns.
//
// The right key column is not included in the result. Right columns that left already has are
// not duplicated: matched records take the right value, unmatched records keep the left value.
func LeftJoin(left, right *Table, leftKey, rightKey string) (*Table, error) {
	lk := left.Column(leftKey)
	if lk < 0 {
		return nil, fmt.Errorf("missing '%v' column", leftKey)
	}

	rk := right.Column(rightKey)
	if rk < 0 {
		return nil, fmt.Errorf("missing '%v' column", rightKey)
	}

	// ... index right records, first match wins
	index := map[string][]string{}
	for _, record := range right.Records {
		k := clean(record[rk])
		if _, ok := index[k]; !ok && k != "" {
			index[k] = record
		}
	}

	// ... joined header
	out := Table{
		Header:  append([]string{}, left.Header...),
		Records: make([][]string, 0, len(left.Records)),
	}

	xref := map[int]int{}
	for i, h := range right.Header {
		if i == rk {
			continue
		}

		if ix := left.Column(h); ix >= 0 {
			xref[i] = ix
		} else {
			xref[i] = len(out.Header)
			out.Header = append(out.Header, h)
		}
	}

	// ... joined records
	for _, record := range left.Records {
		r := make([]string, len(out.Header))
		copy(r, record)

		if match, ok := index[clean(record[lk])]; ok {
			for i, ix := range xref {
				r[ix] = match[i]
			}
		}

		out.Records = append(out.Records, r)
	}

	return &out, nil
}
