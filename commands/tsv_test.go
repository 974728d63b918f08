package commands

import (
	"strings"
	"testing"

	"github.com/sheetsync/sheets-merge/table"
)

func TestTableToTSV(t *testing.T) {
	expected := "Tên\tSố lượng\tSource_File\tManager\n" +
		"a\t10\tf1.xlsx\tLan\n" +
		"b\t\tf2.xlsx\t\n"

	var f strings.Builder
	data := table.MakeTable([][]string{
		{"Tên", "Số lượng", "Source_File", "Manager"},
		{"a", "10", "f1.xlsx", "Lan"},
		{},
		{"b", "", "f2.xlsx"},
	})

	if err := tableToTSV(&f, data); err != nil {
		t.Fatalf("Unexpected error returned from tableToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestTableToTSVWithEmptyTable(t *testing.T) {
	var f strings.Builder

	if err := tableToTSV(&f, table.MakeTable(nil)); err == nil {
		t.Errorf("Expected error for empty table, got %v", err)
	}
}
