package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Write persists the table verbatim to path: same columns, same cell
// text. The format follows the extension (.tsv/.tab, .xlsx, else CSV);
// an existing file is overwritten.
func Write(t *Table, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return writeDelimited(t, path, '\t')
	case ".xlsx":
		return writeXLSX(t, path)
	default:
		return writeDelimited(t, path, ',')
	}
}

func writeDelimited(t *Table, path string, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	return f.Close()
}

func writeXLSX(t *Table, path string) error {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Sheet1"
	set := func(row int, cells []string) error {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := x.SetCellStr(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := set(1, t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := set(i+2, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
