package merge

import (
	"reflect"
	"testing"

	"github.com/sheetsync/sheets-merge/config"
	"github.com/sheetsync/sheets-merge/table"
)

func TestClean(t *testing.T) {
	rows := [][]string{
		{"STT", "Tên", "nguon_file", "Số lượng"},
		{"1", "a", "x.xlsx", "10"},
		{"Tổng", "", "", "10"},
		{" tổng ", "b", "", "1"},
		{"TỔNG", "c", "", "2"},
		{"Tổng cộng", "d", "", "3"},
		{"2", "Tổng", "", "4"},
	}

	expected := table.Table{
		Header: []string{"Tên", "Số lượng", "Source_File"},
		Records: [][]string{
			{"a", "10", "report.xlsx"},
			{"d", "3", "report.xlsx"},
			{"Tổng", "4", "report.xlsx"},
		},
	}

	cleaned := Clean(table.MakeTable(rows), "report.xlsx", config.Default())

	if !reflect.DeepEqual(*cleaned, expected) {
		t.Errorf("Incorrect table\n   expected: %q\n   got:      %q", expected, *cleaned)
	}
}

func TestCleanWithDecomposedMarker(t *testing.T) {
	// 'Tổng' with combining diacritics (NFD)
	rows := [][]string{
		{"STT", "Tên"},
		{"To\u0302\u0309ng", ""},
		{"1", "a"},
	}

	cleaned := Clean(table.MakeTable(rows), "report.xlsx", config.Default())

	if !reflect.DeepEqual(cleaned.Records, [][]string{{"a", "report.xlsx"}}) {
		t.Errorf("Incorrect records %q", cleaned.Records)
	}
}

func TestCleanReplacesProvenanceColumn(t *testing.T) {
	rows := [][]string{
		{"Tên", "Source_File"},
		{"a", "somewhere-else.xlsx"},
	}

	cleaned := Clean(table.MakeTable(rows), "report.xlsx", config.Default())

	expected := table.Table{
		Header:  []string{"Tên", "Source_File"},
		Records: [][]string{{"a", "report.xlsx"}},
	}

	if !reflect.DeepEqual(*cleaned, expected) {
		t.Errorf("Incorrect table\n   expected: %q\n   got:      %q", expected, *cleaned)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		DownloadError: "download-error",
		ParseError:    "parse-error",
		EmptyContent:  "empty-content",
	}

	for k, expected := range tests {
		if s := k.String(); s != expected {
			t.Errorf("Incorrect string for kind %d - expected:%v, got:%v", int(k), expected, s)
		}
	}
}
