package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sheetsync/sheets-merge/table"
)

func tableToTSV(f io.Writer, t *table.Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(t.Header); err != nil {
		return err
	}

	for _, record := range t.Records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
