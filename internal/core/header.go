package core

import "strings"

// DefaultMaxHeaderRows is the number of leading rows scanned for the header
// when no bound is configured.
const DefaultMaxHeaderRows = 10

// LocateHeader returns the index and cells of the first row within the
// first maxRows rows that contains "sno" together with "uid" or "item name".
// Title rows and blank rows above the header are skipped.
//
// A maxRows of zero or less uses DefaultMaxHeaderRows.
func LocateHeader(grid Grid, maxRows int) (int, []string, error) {
	if maxRows <= 0 {
		maxRows = DefaultMaxHeaderRows
	}

	limit := maxRows
	if len(grid) < limit {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		row := grid[i]
		if isEmptyRow(row) {
			continue
		}

		text := strings.ToLower(strings.Join(row, " "))
		if strings.Contains(text, "sno") &&
			(strings.Contains(text, "uid") || strings.Contains(text, "item name")) {
			return i, row, nil
		}
	}

	return -1, nil, &HeaderNotFoundError{MaxRows: maxRows}
}
