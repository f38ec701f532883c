package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/replenish/internal/logging"
	"github.com/google/uuid"
)

// Report is the outcome of one pipeline run over a single Grid.
type Report struct {
	RunID     uuid.UUID
	HeaderRow int       // Index of the header row in the grid
	Header    []string  // Header cells as read
	Columns   ColumnMap // Resolved physical indices
	RowsRead  int       // Total rows in the grid, header and leading rows included
	Items     []Item
}

// HeaderTitle returns the header cell a logical column resolved to.
func (r *Report) HeaderTitle(c Column) string {
	idx, ok := r.Columns[c]
	if !ok || idx >= len(r.Header) {
		return "N/A"
	}
	return r.Header[idx]
}

// Analyze runs header location, column resolution and the replenishment
// filter over grid. Either every step succeeds or no report is returned.
func Analyze(grid Grid, maxHeaderRows int) (*Report, error) {
	headerRow, header, err := LocateHeader(grid, maxHeaderRows)
	if err != nil {
		return nil, err
	}

	cols, err := ResolveColumns(header)
	if err != nil {
		return nil, err
	}

	return &Report{
		RunID:     uuid.New(),
		HeaderRow: headerRow,
		Header:    header,
		Columns:   cols,
		RowsRead:  len(grid),
		Items:     FilterReplenishment(grid, headerRow, cols),
	}, nil
}

// Service fetches a grid from its source and analyzes it.
// It holds no mutable state, so Run may be called repeatedly.
type Service struct {
	source        GridSource
	maxHeaderRows int
}

// NewService creates a Service reading from source.
// A maxHeaderRows of zero or less uses DefaultMaxHeaderRows.
func NewService(source GridSource, maxHeaderRows int) *Service {
	if maxHeaderRows <= 0 {
		maxHeaderRows = DefaultMaxHeaderRows
	}
	return &Service{
		source:        source,
		maxHeaderRows: maxHeaderRows,
	}
}

// Run fetches the grid once and produces a report. The run ID is assigned
// before the fetch so every log line of the run carries it.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	runID := uuid.New()
	logger := logging.WithFields(ctx, "run_id", runID.String())

	grid, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sheet data: %w", err)
	}
	logger.Info("sheet data read", "rows", len(grid))

	report, err := Analyze(grid, s.maxHeaderRows)
	if err != nil {
		logger.Error("report failed", "error", err, "max_header_rows", s.maxHeaderRows)
		return nil, err
	}
	report.RunID = runID

	logger.Info("header row found", "index", report.HeaderRow)
	for _, spec := range Columns {
		logger.Debug("column resolved",
			"column", spec.Column.String(),
			"index", report.Columns[spec.Column],
			"title", report.HeaderTitle(spec.Column),
		)
	}
	logger.Info("replenishment items selected",
		"count", len(report.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}
