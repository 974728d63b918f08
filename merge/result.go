package merge

import (
	"errors"
	"fmt"

	"github.com/sheetsync/sheets-merge/gdrive"
	"github.com/sheetsync/sheets-merge/table"
)

type Kind int

const (
	DownloadError Kind = iota + 1
	ParseError
	EmptyContent
)

var (
	ErrNoRecords   = errors.New("file has no data rows")
	ErrAllFiltered = errors.New("all rows removed by filtering")
)

func (k Kind) String() string {
	switch k {
	case DownloadError:
		return "download-error"
	case ParseError:
		return "parse-error"
	case EmptyContent:
		return "empty-content"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Failure is the reason a source file could not be merged. A failed file is not checkpointed
// and is retried on the next run.
type Failure struct {
	File gdrive.File
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%v: %v (%v)", f.File.Name, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of extracting a single source file: either a cleaned table ready to be
// merged or a Failure.
type Result struct {
	File    gdrive.File
	Table   *table.Table
	Failure *Failure
}

func (r Result) OK() bool {
	return r.Failure == nil && r.Table != nil
}

func succeeded(f gdrive.File, t *table.Table) Result {
	return Result{
		File:  f,
		Table: t,
	}
}

func failed(f gdrive.File, kind Kind, err error) Result {
	return Result{
		File: f,
		Failure: &Failure{
			File: f,
			Kind: kind,
			Err:  err,
		},
	}
}
