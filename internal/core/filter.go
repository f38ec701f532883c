package core

// ItemHeaders are the output field names, in export order.
var ItemHeaders = []string{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location"}

// Item is a row flagged for replenishment. It is never mutated after
// FilterReplenishment creates it.
type Item struct {
	Sno           string `json:"Sno."`
	UID           string `json:"UID"`
	Bush          string `json:"Bush"`
	Group         string `json:"Group"`
	LastIORaised  string `json:"Last I.O Raised"`
	Category      string `json:"Category"`
	StockLocation string `json:"Stock Location"`
}

// Values returns the item's fields in ItemHeaders order.
func (it Item) Values() []string {
	return []string{it.Sno, it.UID, it.Bush, it.Group, it.LastIORaised, it.Category, it.StockLocation}
}

// FilterReplenishment returns the rows after headerRow whose opening balance
// is strictly below their minimum level, in sheet order.
//
// Blank rows and rows where either number does not parse are skipped
// without error.
func FilterReplenishment(grid Grid, headerRow int, cols ColumnMap) []Item {
	items := []Item{}

	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]
		if isEmptyRow(row) {
			continue
		}

		rec := Extract(row, cols)

		balance, ok := ParseNumber(rec.OpeningBalance)
		if !ok {
			continue
		}
		minimum, ok := ParseNumber(rec.MinLevel)
		if !ok {
			continue
		}

		// At-minimum stock is not flagged.
		if balance < minimum {
			items = append(items, rec.Item())
		}
	}

	return items
}
