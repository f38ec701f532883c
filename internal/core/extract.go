package core

// Record is a data row read through a ColumnMap.
type Record struct {
	Sno            string
	UID            string
	Bush           string
	Group          string
	LastIORaised   string
	Category       string
	StockLocation  string
	MinLevel       string
	OpeningBalance string
}

// Extract reads every logical field out of row. Fields past the end of a
// short row are empty.
func Extract(row []string, cols ColumnMap) Record {
	cell := func(c Column) string {
		idx, ok := cols[c]
		if !ok || idx < 0 || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	return Record{
		Sno:            cell(ColSno),
		UID:            cell(ColUID),
		Bush:           cell(ColBush),
		Group:          cell(ColGroup),
		LastIORaised:   cell(ColLastIORaised),
		Category:       cell(ColCategory),
		StockLocation:  cell(ColStockLocation),
		MinLevel:       cell(ColMinLevel),
		OpeningBalance: cell(ColOpeningBalance),
	}
}

// Item returns the descriptive part of r. The numeric fields used for the
// replenishment decision are dropped.
func (r Record) Item() Item {
	return Item{
		Sno:           r.Sno,
		UID:           r.UID,
		Bush:          r.Bush,
		Group:         r.Group,
		LastIORaised:  r.LastIORaised,
		Category:      r.Category,
		StockLocation: r.StockLocation,
	}
}
