// Package render prints reports and sheet previews for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// MaxColumnWidths caps each result column, in core.ItemHeaders order.
// Longer cells wrap.
var MaxColumnWidths = []int{5, 40, 8, 8, 20, 10, 15}

const (
	reportRule  = 80
	previewRule = 60
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

// Results prints the replenishment table, or a notice when items is empty.
func Results(w io.Writer, items []core.Item) {
	fmt.Fprintln(w)
	rule(w, reportRule)

	if len(items) == 0 {
		fmt.Fprintln(w, "No items found that need replenishment.")
		fmt.Fprintln(w, "All items have Opening Balance >= Minimum Level.")
		rule(w, reportRule)
		return
	}

	fmt.Fprintln(w, "ITEMS NEEDING REPLENISHMENT (OPN. BAL < MIN LVL)")
	fmt.Fprintf(w, "Total items: %d\n", len(items))
	rule(w, reportRule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, Table(items))
	fmt.Fprintln(w)
}

// Table renders items as a bordered grid. Each column is as wide as its
// widest cell, capped by MaxColumnWidths.
func Table(items []core.Item) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = it.Values()
	}
	widths := columnWidths(core.ItemHeaders, rows, MaxColumnWidths)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(core.ItemHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col < len(widths) {
				// Width includes the horizontal padding.
				style = style.Width(widths[col] + 2)
			}
			return style
		})

	return t.String()
}

func columnWidths(headers []string, rows [][]string, limits []int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	for i := range widths {
		if i < len(limits) && widths[i] > limits[i] {
			widths[i] = limits[i]
		}
	}
	return widths
}

// Columns lists every resolved logical column with the header title it
// matched, e.g. "- min_lvl: column 7 ('Min Lvl')".
func Columns(w io.Writer, report *core.Report) {
	for _, spec := range core.Columns {
		idx, ok := report.Columns[spec.Column]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "   - %s: column %d ('%s')\n", spec.Column, idx, report.HeaderTitle(spec.Column))
	}
}

// Summary prints the step lines of a report run.
func Summary(w io.Writer, report *core.Report) {
	fmt.Fprintf(w, "Rows read: %d\n", report.RowsRead)
	fmt.Fprintf(w, "Header row found at index %d\n", report.HeaderRow)
	fmt.Fprintln(w, "Required columns:")
	Columns(w, report)
	fmt.Fprintf(w, "Found %d items needing replenishment\n", len(report.Items))
}

// Describe prints the spreadsheet title and its sheet names.
func Describe(w io.Writer, info *source.Info) {
	title := info.Title
	if title == "" {
		title = "N/A"
	}
	fmt.Fprintf(w, "Spreadsheet Title: %s\n", title)
	fmt.Fprintf(w, "Number of sheets: %d\n", len(info.Sheets))
	if len(info.Sheets) > 0 {
		fmt.Fprintf(w, "Sheet names: %s\n", strings.Join(info.Sheets, ", "))
	}
}

// Preview prints up to maxRows rows of grid as "Row i: [...]" lines.
func Preview(w io.Writer, grid core.Grid, maxRows int) {
	if len(grid) == 0 {
		fmt.Fprintln(w, "No data found in the sheet.")
		return
	}

	shown := min(len(grid), maxRows)

	fmt.Fprintln(w)
	rule(w, previewRule)
	fmt.Fprintf(w, "Sheet Data (showing up to %d rows):\n", shown)
	rule(w, previewRule)
	fmt.Fprintln(w)

	for i := 0; i < shown; i++ {
		fmt.Fprintf(w, "Row %d: %s\n", i+1, formatRow(grid[i]))
	}

	if len(grid) > maxRows {
		fmt.Fprintf(w, "\n... (%d more rows not shown)\n", len(grid)-maxRows)
	}

	fmt.Fprintln(w)
	rule(w, previewRule)
	fmt.Fprintf(w, "Total rows: %d\n", len(grid))
	rule(w, previewRule)
}

func formatRow(row []string) string {
	quoted := make([]string, len(row))
	for i, cell := range row {
		quoted[i] = strconv.Quote(cell)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
