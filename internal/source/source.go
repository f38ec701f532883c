// Package source reads a sheet snapshot into a core.Grid, either from the
// Google Sheets API or from a local .xlsx/.csv file.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
)

// Errors returned by sources, wrapped with context. Their texts match the
// patterns in core.MapError.
var (
	ErrSheetNotFound       = errors.New("sheet or range not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCredentialsNotFound = errors.New("service account file not found")
	ErrUnsupportedFile     = errors.New("unsupported source file")
)

// Info describes a spreadsheet for the verify command.
type Info struct {
	Title  string
	Sheets []string
}

// Describer is implemented by sources that can list their sheets.
type Describer interface {
	Describe(ctx context.Context) (*Info, error)
}

// Source is a GridSource that can also describe itself and read any named
// sheet, which the verify command needs.
type Source interface {
	core.GridSource
	Describer
	FetchSheet(ctx context.Context, sheet string) (core.Grid, error)
}

// New builds the source selected by cfg: a local snapshot when SOURCE_FILE
// is set, the Sheets API otherwise.
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	if cfg.UseLocalFile() {
		return NewFile(cfg.Source), nil
	}

	s, err := NewSheets(ctx, cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("create sheets source: %w", err)
	}
	return s, nil
}
