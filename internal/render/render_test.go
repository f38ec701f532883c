package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JonMunkholm/replenish/internal/core"
	"github.com/JonMunkholm/replenish/internal/source"
)

func TestResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	Results(&buf, []core.Item{})

	out := buf.String()
	if !strings.Contains(out, "No items found that need replenishment.") {
		t.Errorf("output missing empty notice:\n%s", out)
	}
	if !strings.Contains(out, "All items have Opening Balance >= Minimum Level.") {
		t.Errorf("output missing balance notice:\n%s", out)
	}
	if strings.Contains(out, "Total items") {
		t.Errorf("empty output should not print a total:\n%s", out)
	}
}

func TestResults_Items(t *testing.T) {
	items := []core.Item{
		{Sno: "1", UID: "A1", Bush: "B", Group: "G", LastIORaised: "2024-01-05", Category: "C", StockLocation: "L1"},
		{Sno: "4", UID: "A4", Group: "G2", Category: "C", StockLocation: "L4"},
	}

	var buf bytes.Buffer
	Results(&buf, items)

	out := buf.String()
	for _, want := range []string{
		"ITEMS NEEDING REPLENISHMENT (OPN. BAL < MIN LVL)",
		"Total items: 2",
		"Stock Location",
		"2024-01-05",
		"A4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "A1") > strings.Index(out, "A4") {
		t.Error("items should be printed in input order")
	}
}

func TestTable_WrapsLongCells(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := Table([]core.Item{{Sno: "1", UID: long}})

	if strings.Contains(out, long) {
		t.Error("UID longer than its max width should wrap")
	}
	if strings.Contains(out, strings.Repeat("x", 50)) {
		t.Error("UID column should be capped near 40 characters")
	}
	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "xxxx") {
			lines++
		}
	}
	if lines < 3 {
		t.Errorf("wrapped UID spans %d lines, want at least 3", lines)
	}
}

func TestColumnWidths(t *testing.T) {
	headers := []string{"Sno.", "UID"}
	rows := [][]string{{"12345678", "ab"}}

	got := columnWidths(headers, rows, []int{5, 40})
	want := []int{5, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("columnWidths()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestColumns(t *testing.T) {
	header := []string{"Sno", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Min Lvl", "Opn Bal"}
	report, err := core.Analyze(core.Grid{header}, 0)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	var buf bytes.Buffer
	Columns(&buf, report)

	out := buf.String()
	if !strings.Contains(out, "- min_lvl: column 7 ('Min Lvl')") {
		t.Errorf("output missing min_lvl line:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != len(core.Columns) {
		t.Errorf("printed %d lines, want %d", got, len(core.Columns))
	}
}

func TestPreview(t *testing.T) {
	grid := core.Grid{{"Stock Sheet"}, {"Sno", "UID"}, {"1", "A1"}}

	var buf bytes.Buffer
	Preview(&buf, grid, 2)

	out := buf.String()
	for _, want := range []string{
		`Row 1: ["Stock Sheet"]`,
		`Row 2: ["Sno", "UID"]`,
		"... (1 more rows not shown)",
		"Total rows: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Row 3") {
		t.Error("Preview() printed past maxRows")
	}
}

func TestPreview_Empty(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, nil, 10)

	if got := buf.String(); got != "No data found in the sheet.\n" {
		t.Errorf("Preview(nil) = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	Describe(&buf, &source.Info{Title: "Inventory", Sheets: []string{"Stock", "Archive"}})

	out := buf.String()
	if !strings.Contains(out, "Spreadsheet Title: Inventory") {
		t.Errorf("output missing title:\n%s", out)
	}
	if !strings.Contains(out, "Sheet names: Stock, Archive") {
		t.Errorf("output missing sheet names:\n%s", out)
	}
}
