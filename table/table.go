// Package table implements the small set of operations the merge job needs on worksheet data:
// building a table from a header row plus records, filtering rows and columns, concatenating
// tables with different columns and left joining two tables on a key column.
//
// Tables are treated as immutable - every operation returns a new Table.
package table

import (
	"fmt"
	"strings"
)

type Table struct {
	Header  []string
	Records [][]string
}

// MakeTable builds a table from worksheet rows, using the first non-blank row as the header.
// Blank header cells are named 'Unnamed: <column>', duplicated names are suffixed with '.1', '.2',
// etc, short rows are padded with empty cells and blank rows are discarded.
func MakeTable(rows [][]string) *Table {
	t := Table{
		Header:  []string{},
		Records: [][]string{},
	}

	for len(rows) > 0 && IsBlank(rows[:1]) {
		rows = rows[1:]
	}

	if len(rows) == 0 {
		return &t
	}

	// ... header
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	used := map[string]bool{}
	suffix := map[string]int{}
	for i := 0; i < columns; i++ {
		name := ""
		if i < len(rows[0]) {
			name = clean(rows[0][i])
		}

		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for used[candidate] {
			suffix[name]++
			candidate = fmt.Sprintf("%s.%d", name, suffix[name])
		}

		used[candidate] = true
		t.Header = append(t.Header, candidate)
	}

	// ... records
	for _, row := range rows[1:] {
		if IsBlank([][]string{row}) {
			continue
		}

		record := make([]string, columns)
		copy(record, row)

		t.Records = append(t.Records, record)
	}

	return &t
}

func (t *Table) Len() int {
	return len(t.Records)
}

func (t *Table) Empty() bool {
	return len(t.Records) == 0
}

// Column returns the index of the named column, or -1 if the table has no such column.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// Rows returns the header followed by the records, in the form expected by a worksheet update.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records)+1)

	rows = append(rows, t.Header)
	rows = append(rows, t.Records...)

	return rows
}

// Filter returns a table with only the records for which keep returns true.
func (t *Table) Filter(keep func(record []string) bool) *Table {
	out := Table{
		Header:  append([]string{}, t.Header...),
		Records: [][]string{},
	}

	for _, record := range t.Records {
		if keep(record) {
			out.Records = append(out.Records, append([]string{}, record...))
		}
	}

	return &out
}

// DropColumns returns a table without the named columns. Column names are matched
// case-insensitively.
func (t *Table) DropColumns(names ...string) *Table {
	drop := map[string]bool{}
	for _, name := range names {
		drop[strings.ToLower(name)] = true
	}

	keep := []int{}
	for i, h := range t.Header {
		if !drop[strings.ToLower(h)] {
			keep = append(keep, i)
		}
	}

	out := Table{
		Header:  make([]string, 0, len(keep)),
		Records: make([][]string, 0, len(t.Records)),
	}

	for _, ix := range keep {
		out.Header = append(out.Header, t.Header[ix])
	}

	for _, record := range t.Records {
		r := make([]string, 0, len(keep))
		for _, ix := range keep {
			r = append(r, record[ix])
		}

		out.Records = append(out.Records, r)
	}

	return &out
}

// WithColumn returns a table with every record's value for the named column set to value. The
// column is appended if the table does not already have it.
func (t *Table) WithColumn(name, value string) *Table {
	ix := t.Column(name)
	out := Table{
		Header:  append([]string{}, t.Header...),
		Records: make([][]string, 0, len(t.Records)),
	}

	if ix < 0 {
		out.Header = append(out.Header, name)
	}

	for _, record := range t.Records {
		r := append([]string{}, record...)
		if ix < 0 {
			r = append(r, value)
		} else {
			r[ix] = value
		}

		out.Records = append(out.Records, r)
	}

	return &out
}

// Concat stacks the records of the tables. The header is the union of the table headers in order
// of first appearance and cells for columns a table does not have are left empty.
func Concat(tables ...*Table) *Table {
	out := Table{
		Header:  []string{},
		Records: [][]string{},
	}

	index := map[string]int{}
	for _, t := range tables {
		for _, h := range t.Header {
			if _, ok := index[h]; !ok {
				index[h] = len(out.Header)
				out.Header = append(out.Header, h)
			}
		}
	}

	for _, t := range tables {
		for _, record := range t.Records {
			r := make([]string, len(out.Header))
			for i, h := range t.Header {
				r[index[h]] = record[i]
			}

			out.Records = append(out.Records, r)
		}
	}

	return &out
}

// IsBlank returns true if rows has no cells, or if every cell is empty or whitespace.
func IsBlank(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}

	return true
}

// SameColumns returns true if both headers list the same column names in the same order.
func SameColumns(p, q []string) bool {
	if len(p) != len(q) {
		return false
	}

	for i := range p {
		if clean(p[i]) != clean(q[i]) {
			return false
		}
	}

	return true
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
