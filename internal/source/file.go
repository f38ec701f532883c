package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/logging"
	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// File reads a grid from a local spreadsheet snapshot (.xlsx, .xlsm or .csv).
type File struct {
	cfg config.SourceConfig
}

// NewFile creates a File source for cfg.File.
func NewFile(cfg config.SourceConfig) *File {
	return &File{cfg: cfg}
}

// Fetch reads the configured worksheet, or the first one when none is set.
// CSV files have a single sheet.
func (f *File) Fetch(ctx context.Context) (core.Grid, error) {
	return f.FetchSheet(ctx, f.cfg.Sheet)
}

// FetchSheet reads the named worksheet. An empty name selects the first.
func (f *File) FetchSheet(ctx context.Context, sheet string) (core.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := logging.WithFields(ctx, "source", "file", "path", f.cfg.File)

	var (
		grid core.Grid
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(f.cfg.File)); ext {
	case ".xlsx", ".xlsm":
		grid, err = readWorkbook(f.cfg.File, sheet)
	case ".csv":
		grid, err = readCSV(f.cfg.File)
	default:
		return nil, fmt.Errorf("%w: %q (want .xlsx, .xlsm or .csv)", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("snapshot read", "rows", len(grid))
	return grid, nil
}

// Describe lists the worksheets in the file.
func (f *File) Describe(ctx context.Context) (*Info, error) {
	info := &Info{Title: filepath.Base(f.cfg.File)}

	switch strings.ToLower(filepath.Ext(f.cfg.File)) {
	case ".xlsx", ".xlsm":
		wb, err := excelize.OpenFile(f.cfg.File)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer wb.Close()
		info.Sheets = wb.GetSheetList()
	case ".csv":
		if _, err := os.Stat(f.cfg.File); err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		info.Sheets = []string{strings.TrimSuffix(info.Title, filepath.Ext(info.Title))}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(f.cfg.File))
	}

	return info, nil
}

func readWorkbook(path, sheet string) (core.Grid, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSheetNotFound, sheet, err)
	}
	return core.Grid(rows), nil
}

func readCSV(path string) (core.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	data = sanitizeUTF8(bytes.TrimPrefix(data, utf8BOM))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return core.Grid(rows), nil
}

// sanitizeUTF8 replaces invalid byte sequences with U+FFFD.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('\uFFFD')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
