package merge

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sheetsync/sheets-merge/config"
	"github.com/sheetsync/sheets-merge/gdrive"
)

type fakeSource struct {
	files      []gdrive.File
	content    map[string][]byte
	errors     map[string]error
	downloaded []string
}

func (s *fakeSource) List(ctx context.Context, folder string) ([]gdrive.File, error) {
	return s.files, nil
}

func (s *fakeSource) Download(ctx context.Context, id string, w io.Writer) error {
	s.downloaded = append(s.downloaded, id)

	if err, ok := s.errors[id]; ok {
		return err
	}

	b, ok := s.content[id]
	if !ok {
		return fmt.Errorf("file %v not found", id)
	}

	_, err := w.Write(b)

	return err
}

type fakeReader struct {
	sheets map[string][][]string
	read   []string
}

func (r *fakeReader) Read(ctx context.Context, spreadsheet string) ([][]string, error) {
	r.read = append(r.read, spreadsheet)

	if v, ok := r.sheets[spreadsheet]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("spreadsheet %v not found", spreadsheet)
}

// fakeSheet mimics the Sheets values API on an in-memory grid.
type fakeSheet struct {
	values   [][]string
	cleared  int
	updated  int
	appended int
}

func (s *fakeSheet) Values(ctx context.Context) ([][]string, error) {
	return clone(s.values), nil
}

func (s *fakeSheet) Clear(ctx context.Context) error {
	s.values = [][]string{}
	s.cleared++

	return nil
}

func (s *fakeSheet) Update(ctx context.Context, rows [][]string) error {
	for i, row := range clone(rows) {
		if i < len(s.values) {
			s.values[i] = row
		} else {
			s.values = append(s.values, row)
		}
	}

	s.updated++

	return nil
}

func (s *fakeSheet) Append(ctx context.Context, rows [][]string) error {
	s.values = append(s.values, clone(rows)...)
	s.appended++

	return nil
}

func (s *fakeSheet) writes() int {
	return s.cleared + s.updated + s.appended
}

func clone(rows [][]string) [][]string {
	out := [][]string{}
	for _, row := range rows {
		out = append(out, append([]string{}, row...))
	}

	return out
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	conf := config.Default()
	conf.Workdir = dir
	conf.Checkpoint = filepath.Join(dir, "processed_files.json")

	return conf
}

func native(id, name string) gdrive.File {
	return gdrive.File{ID: id, Name: name, MimeType: gdrive.NativeSpreadsheet}
}

func xlsx(id, name string) gdrive.File {
	return gdrive.File{ID: id, Name: name, MimeType: gdrive.Workbook}
}

func makeWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("%v", err)
		}

		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("%v", err)
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("%v", err)
	}

	return b.Bytes()
}
