// Package merge implements the sheets-merge job: collect the rows of every new spreadsheet in
// the source folder into the target sheet, then enrich the target sheet from the manager sheet.
package merge

import (
	"context"
	"fmt"
	"io"

	"github.com/sheetsync/sheets-merge/checkpoint"
	"github.com/sheetsync/sheets-merge/config"
	"github.com/sheetsync/sheets-merge/gdrive"
	"github.com/sheetsync/sheets-merge/table"
)

// Source lists and downloads the files in the source folder.
type Source interface {
	List(ctx context.Context, folder string) ([]gdrive.File, error)
	Download(ctx context.Context, id string, w io.Writer) error
}

// Reader reads the first worksheet of a Google Sheets spreadsheet.
type Reader interface {
	Read(ctx context.Context, spreadsheet string) ([][]string, error)
}

type Worksheet interface {
	Values(ctx context.Context) ([][]string, error)
	Clear(ctx context.Context) error
	Update(ctx context.Context, rows [][]string) error
	Append(ctx context.Context, rows [][]string) error
}

type Options struct {
	Enrich bool
	Debug  bool
}

type Job struct {
	config  *config.Config
	source  Source
	reader  Reader
	target  Worksheet
	manager Worksheet
	enrich  bool
	debug   bool
}

type WriteMode int

const (
	NotWritten WriteMode = iota
	Created
	Appended
)

func (m WriteMode) String() string {
	switch m {
	case Created:
		return "created"
	case Appended:
		return "appended"
	default:
		return "not written"
	}
}

type Summary struct {
	Listed   int
	Skipped  int
	Merged   []string
	Failed   []*Failure
	Rows     int
	Mode     WriteMode
	Enriched bool
}

func NewJob(conf *config.Config, source Source, reader Reader, target, manager Worksheet, options Options) *Job {
	return &Job{
		config:  conf,
		source:  source,
		reader:  reader,
		target:  target,
		manager: manager,
		enrich:  options.Enrich,
		debug:   options.Debug,
	}
}

// Run merges the unprocessed source files into the target sheet, updates the checkpoint and then
// (optionally) enriches the target sheet from the manager sheet.
//
// Failures reading individual source files are logged and reported in the summary. Any other
// error aborts the run. The checkpoint is only saved once the target sheet has been written.
func (j *Job) Run(ctx context.Context) (*Summary, error) {
	summary := Summary{
		Merged: []string{},
		Failed: []*Failure{},
	}

	if j.debug {
		debugf("source folder:%v  target:%v  manager:%v  checkpoint:%v",
			j.config.SourceFolder, j.config.TargetSheet, j.config.ManagerSheet, j.config.Checkpoint)
	}

	processed, err := checkpoint.Load(j.config.Checkpoint)
	if err != nil {
		return nil, fmt.Errorf("unable to load checkpoint (%w)", err)
	}

	infof("📂 %v previously processed files", processed.Len())

	files, err := j.source.List(ctx, j.config.SourceFolder)
	if err != nil {
		return nil, err
	}

	summary.Listed = len(files)
	infof("🔍 found %v files in the source folder", len(files))

	updated := processed.Clone()
	tables := []*table.Table{}

	for _, f := range files {
		if processed.Has(f.Name) {
			infof("⏭️  skipping %v (already processed)", f.Name)
			summary.Skipped++
			continue
		}

		infof("➡️  processing %v", f)

		result := j.Extract(ctx, f)
		if !result.OK() {
			summary.Failed = append(summary.Failed, result.Failure)
			if result.Failure.Kind == EmptyContent {
				warnf("⚠️  skipping %v (%v)", f.Name, result.Failure.Err)
			} else {
				errorf("❌ error reading %v: %v (%v)", f.Name, result.Failure.Kind, result.Failure.Err)
			}
			continue
		}

		tables = append(tables, result.Table)
		updated.Add(f.Name)
		summary.Merged = append(summary.Merged, f.Name)

		infof("✅ added %v (%v rows)", f.Name, result.Table.Len())
	}

	if len(tables) == 0 {
		warnf("⚠️  no new data to merge")
	} else {
		merged := Accumulate(j.config.ProvenanceColumn, tables...)

		mode, err := j.Write(ctx, merged)
		if err != nil {
			return &summary, err
		}

		summary.Rows = merged.Len()
		summary.Mode = mode
	}

	if err := checkpoint.Save(j.config.Checkpoint, updated); err != nil {
		return &summary, fmt.Errorf("unable to save checkpoint (%w)", err)
	}

	infof("💾 checkpoint updated: %v processed files", updated.Len())

	if j.enrich {
		enriched, err := j.Enrich(ctx)
		if err != nil {
			return &summary, err
		}

		summary.Enriched = enriched
	}

	return &summary, nil
}

// Accumulate concatenates the extracted tables and ensures the result has a provenance column.
func Accumulate(provenance string, tables ...*table.Table) *table.Table {
	merged := table.Concat(tables...)
	if merged.Column(provenance) < 0 {
		merged = merged.WithColumn(provenance, "")
	}

	return merged
}

// Write replaces the content of a blank target sheet with the header and records of the merged
// table, or appends the records to a target sheet that already has data.
func (j *Job) Write(ctx context.Context, merged *table.Table) (WriteMode, error) {
	existing, err := j.target.Values(ctx)
	if err != nil {
		return NotWritten, err
	}

	if table.IsBlank(existing) {
		if err := j.target.Clear(ctx); err != nil {
			return NotWritten, err
		}

		if err := j.target.Update(ctx, merged.Rows()); err != nil {
			return NotWritten, err
		}

		infof("✅ target sheet created with %v rows", merged.Len())

		return Created, nil
	}

	if !table.SameColumns(existing[0], merged.Header) {
		warnf("⚠️  merged columns %q do not match the target sheet columns %q", merged.Header, existing[0])
	}

	if err := j.target.Append(ctx, merged.Records); err != nil {
		return NotWritten, err
	}

	infof("✅ appended %v rows to the target sheet", merged.Len())

	return Appended, nil
}
