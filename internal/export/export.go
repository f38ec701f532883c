// Package export writes replenishment items to a flat file.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/xuri/excelize/v2"
)

// Format selects the export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet XLSX exports write to.
const SheetName = "Replenishment"

// ErrUnknownFormat is returned for a Format other than csv or xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts "csv" or "xlsx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write exports items to path. When items is empty nothing is written and
// Write returns false with a nil error.
//
// The file is first written to a temporary file in the same directory and
// then renamed into place, so a failed export never leaves a partial file.
func Write(path string, format Format, items []core.Item) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}

	var encode func(io.Writer, []core.Item) error
	switch format {
	case FormatCSV:
		encode = WriteCSV
	case FormatXLSX:
		encode = WriteXLSX
	default:
		return false, fmt.Errorf("write export: %w: %q", ErrUnknownFormat, format)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := encode(tmp, items); err != nil {
		tmp.Close()
		return false, fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}

	return true, nil
}

// WriteCSV writes a header line of core.ItemHeaders followed by one record
// per item. Lines end in CRLF.
func WriteCSV(w io.Writer, items []core.Item) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(core.ItemHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, it := range items {
		if err := cw.Write(it.Values()); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var xlsxWidths = []float64{8, 40, 12, 12, 20, 16, 18}

// WriteXLSX writes items to a single "Replenishment" worksheet with a bold
// header row.
func WriteXLSX(w io.Writer, items []core.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	for i, width := range xlsxWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D9D9D9"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := setRow(f, 1, core.ItemHeaders); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(core.ItemHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, it := range items {
		if err := setRow(f, i+2, it.Values()); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// setRow writes values as text cells so codes like "007" keep their zeros.
func setRow(f *excelize.File, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
