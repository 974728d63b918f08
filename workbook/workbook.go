// Package workbook reads the first worksheet of an Excel (xlsx) workbook.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Read returns the cell values of the first worksheet in the workbook file, formatted as they
// are displayed in Excel.
func Read(file string) ([][]string, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx (%w)", err)
	}

	defer f.Close()

	return rows(f)
}

func rows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no worksheets in xlsx file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from worksheet '%v' (%w)", sheets[0], err)
	}

	return rows, nil
}
