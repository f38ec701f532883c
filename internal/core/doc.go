// Package core implements the stock replenishment report.
//
// The package interprets an arbitrary grid of text cells, as read from a
// spreadsheet whose header position and column order are not fixed, and
// selects the rows whose opening balance is below their minimum level.
// It has no I/O of its own; grids come from a [GridSource].
//
// # Pipeline
//
//  1. [LocateHeader] scans the first rows for the title row ("Sno" with
//     "UID" or "Item Name").
//  2. [ResolveColumns] maps each logical column to a physical index by
//     fuzzy matching header titles against the [Columns] catalog.
//  3. [FilterReplenishment] walks the data rows, reading fields with
//     [Extract] and numbers with [ParseNumber], and keeps rows where
//     opening balance < minimum level.
//
// [Analyze] composes the three steps over a grid already in memory;
// [Service.Run] fetches the grid first.
//
// # Error Handling
//
// A missing header row ([ErrHeaderNotFound]) or an unresolvable column
// ([ErrMissingColumn]) fails the whole run. Blank rows and rows with
// unparseable numbers are skipped silently. [MapError] turns any error into
// a coded [UserMessage].
package core
