package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/JonMunkholm/replenish/internal/config"
	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/logging"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets reads grids through the Google Sheets API using a service account.
type Sheets struct {
	cfg config.SheetsConfig
	srv *sheets.Service
}

// NewSheets creates a read-only Sheets API client from the service account
// key named in cfg.
func NewSheets(ctx context.Context, cfg config.SheetsConfig) (*Sheets, error) {
	if _, err := os.Stat(cfg.ServiceAccountFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, cfg.ServiceAccountFile)
		}
		return nil, fmt.Errorf("stat service account file: %w", err)
	}

	return newSheets(ctx, cfg,
		option.WithCredentialsFile(cfg.ServiceAccountFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
}

func newSheets(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*Sheets, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load credentials from %s: %w", cfg.ServiceAccountFile, err)
	}
	return &Sheets{cfg: cfg, srv: srv}, nil
}

// Fetch reads the configured sheet (and range, if any) in one call.
func (s *Sheets) Fetch(ctx context.Context) (core.Grid, error) {
	return s.read(ctx, readRange(s.cfg.SheetName, s.cfg.Range))
}

// FetchSheet reads a whole named sheet.
func (s *Sheets) FetchSheet(ctx context.Context, sheet string) (core.Grid, error) {
	return s.read(ctx, sheet)
}

func (s *Sheets) read(ctx context.Context, rng string) (core.Grid, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	logger := logging.WithFields(ctx, "source", "sheets", "range", rng)
	logger.Debug("reading sheet values")

	resp, err := s.srv.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, rng)
	}

	grid := toGrid(resp.Values)
	logger.Debug("sheet values read", "rows", len(grid))
	return grid, nil
}

// Describe returns the spreadsheet title and the names of its sheets.
func (s *Sheets) Describe(ctx context.Context) (*Info, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	ss, err := s.srv.Spreadsheets.Get(s.cfg.SpreadsheetID).
		Fields("properties.title", "sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, s.cfg.SpreadsheetID)
	}

	info := &Info{}
	if ss.Properties != nil {
		info.Title = ss.Properties.Title
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			info.Sheets = append(info.Sheets, sh.Properties.Title)
		}
	}
	return info, nil
}

// readRange builds an A1 range. A sheet name alone selects the whole sheet.
func readRange(sheet, rng string) string {
	if rng == "" {
		return sheet
	}
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheet, "'", "''"), rng)
}

// classify maps API status codes onto the package errors.
func classify(err error, target string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrSheetNotFound, target)
		case http.StatusForbidden:
			return fmt.Errorf("%w reading %s: share the spreadsheet with the service account email: %v",
				ErrPermissionDenied, target, err)
		}
	}
	return fmt.Errorf("sheets api: %w", err)
}

// toGrid converts API values to strings. Values arrive formatted, so
// non-string cells are rare; they are rendered with fmt.
func toGrid(values [][]interface{}) core.Grid {
	grid := make(core.Grid, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			switch val := v.(type) {
			case nil:
				cells[j] = ""
			case string:
				cells[j] = val
			default:
				cells[j] = fmt.Sprint(val)
			}
		}
		grid[i] = cells
	}
	return grid
}
