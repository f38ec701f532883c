package core

import "strings"

// Column identifies one of the logical columns the report needs,
// independent of its physical position in the sheet.
type Column int

const (
	ColSno Column = iota
	ColUID
	ColBush
	ColGroup
	ColLastIORaised
	ColCategory
	ColStockLocation
	ColMinLevel
	ColOpeningBalance
)

var columnNames = [...]string{
	ColSno:            "sno",
	ColUID:            "uid",
	ColBush:           "bush",
	ColGroup:          "group",
	ColLastIORaised:   "last_io_raised",
	ColCategory:       "category",
	ColStockLocation:  "stock_location",
	ColMinLevel:       "min_lvl",
	ColOpeningBalance: "opn_bal",
}

func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return "unknown"
	}
	return columnNames[c]
}

// ColumnSpec pairs a logical column with the header titles it accepts.
// Terms are tried in the order listed.
type ColumnSpec struct {
	Column Column
	Terms  []string
}

// Columns is the fixed resolution catalog, in resolution order.
var Columns = []ColumnSpec{
	{Column: ColSno, Terms: []string{"sno", "sno."}},
	{Column: ColUID, Terms: []string{"uid"}},
	{Column: ColBush, Terms: []string{"bush"}},
	{Column: ColGroup, Terms: []string{"group"}},
	{Column: ColLastIORaised, Terms: []string{"last i. o. raised", "last i.o raised", "last io raised"}},
	{Column: ColCategory, Terms: []string{"category"}},
	{Column: ColStockLocation, Terms: []string{"stock location"}},
	{Column: ColMinLevel, Terms: []string{"min lvl", "min. lvl", "min lv", "min. lv", "minimum level"}},
	{Column: ColOpeningBalance, Terms: []string{"opn. bal", "opn bal", "opening balance"}},
}

// ColumnMap maps each logical column to its index in a row.
type ColumnMap map[Column]int

// FindColumn returns the index of the first header cell matching any of
// terms, or -1. A cell matches a term when their normalized forms are equal
// or the normalized term is contained in the normalized cell.
//
// The outer loop runs over cells, so an earlier cell matching a later term
// beats a later cell matching an earlier term.
func FindColumn(header []string, terms []string) int {
	for idx, cell := range header {
		normCell := Normalize(cell)
		for _, term := range terms {
			normTerm := Normalize(term)
			if normCell == normTerm || strings.Contains(normCell, normTerm) {
				return idx
			}
		}
	}
	return -1
}

// ResolveColumns resolves every column in the catalog against header.
// It fails with a *MissingColumnError on the first column that cannot be
// resolved; no partial map is returned.
func ResolveColumns(header []string) (ColumnMap, error) {
	cols := make(ColumnMap, len(Columns))
	for _, spec := range Columns {
		idx := FindColumn(header, spec.Terms)
		if idx < 0 {
			return nil, &MissingColumnError{
				Column: spec.Column,
				Terms:  spec.Terms,
				Header: header,
			}
		}
		cols[spec.Column] = idx
	}
	return cols, nil
}
