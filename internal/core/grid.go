package core

import (
	"context"
	"strings"
)

// Grid is a full snapshot of sheet cell values. Rows may be ragged.
type Grid [][]string

// GridSource produces a fully materialized Grid.
// Satisfied by source.Sheets and source.File.
type GridSource interface {
	Fetch(ctx context.Context) (Grid, error)
}

// isEmptyRow reports whether every cell in row is empty or whitespace.
func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
