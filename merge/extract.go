package merge

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sheetsync/sheets-merge/config"
	"github.com/sheetsync/sheets-merge/gdrive"
	"github.com/sheetsync/sheets-merge/table"
	"github.com/sheetsync/sheets-merge/workbook"
)

// Extract reads a source file into a table, removes the 'total' rows and the blocklisted
// columns and tags every row with the source file name.
func (j *Job) Extract(ctx context.Context, f gdrive.File) Result {
	var rows [][]string

	if f.IsNative() {
		values, err := j.reader.Read(ctx, f.ID)
		if err != nil {
			return failed(f, DownloadError, err)
		}

		rows = values
	} else {
		values, kind, err := j.readWorkbook(ctx, f)
		if err != nil {
			return failed(f, kind, err)
		}

		rows = values
	}

	t := table.MakeTable(rows)
	if t.Empty() {
		return failed(f, EmptyContent, ErrNoRecords)
	}

	t = Clean(t, f.Name, j.config)
	if t.Empty() {
		return failed(f, EmptyContent, ErrAllFiltered)
	}

	return succeeded(f, t)
}

// readWorkbook downloads an xlsx file to a temporary file in the working directory and parses
// it. The temporary file is removed whether or not the workbook could be parsed.
func (j *Job) readWorkbook(ctx context.Context, f gdrive.File) ([][]string, Kind, error) {
	tmp, err := os.CreateTemp(j.config.Workdir, "temp_*.xlsx")
	if err != nil {
		return nil, DownloadError, err
	}

	defer os.Remove(tmp.Name())

	if j.debug {
		debugf("downloading %v to %v", f.Name, tmp.Name())
	}

	if err := j.source.Download(ctx, f.ID, tmp); err != nil {
		tmp.Close()
		return nil, DownloadError, err
	}

	if err := tmp.Close(); err != nil {
		return nil, DownloadError, err
	}

	rows, err := workbook.Read(tmp.Name())
	if err != nil {
		return nil, ParseError, err
	}

	return rows, 0, nil
}

// Clean drops the rows whose first column is the 'total' marker and the blocklisted columns,
// then sets the provenance column to the source file name.
func Clean(t *table.Table, source string, conf *config.Config) *table.Table {
	if marker := strings.TrimSpace(conf.TotalMarker); marker != "" {
		t = t.Filter(func(record []string) bool {
			return len(record) == 0 || !isTotal(record[0], marker)
		})
	}

	return t.DropColumns(conf.DropColumns...).WithColumn(conf.ProvenanceColumn, source)
}

func isTotal(v, marker string) bool {
	return strings.EqualFold(norm.NFC.String(strings.TrimSpace(v)), norm.NFC.String(marker))
}
