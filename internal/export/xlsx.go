package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Loadout"

// WriteXLSX writes one row per item on the bar (bar first, then plates in
// order) with a running total, followed by a total row.
func WriteXLSX(w io.Writer, s Snapshot) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export xlsx: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	rows := [][]any{{"Position", "Weight", "Running total"}}
	running := s.BarWeight
	rows = append(rows, []any{"bar", s.BarWeight, running})
	for i, p := range s.Plates {
		running += p
		rows = append(rows, []any{i + 1, p, running})
	}
	rows = append(rows, []any{"Total", s.Total()})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("export xlsx: row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	last := fmt.Sprintf("B%d", len(rows))
	if err := f.SetCellStyle(SheetName, "A1", "C1", bold); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", len(rows)), last, bold); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	return nil
}
