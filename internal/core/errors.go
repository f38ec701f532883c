package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHeaderNotFound is matched by *HeaderNotFoundError.
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrMissingColumn is matched by *MissingColumnError.
	ErrMissingColumn = errors.New("required column not found")
)

// HeaderNotFoundError is returned when no row within the scan bound looks
// like the header row.
type HeaderNotFoundError struct {
	MaxRows int // Number of rows that were scanned
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header row not found in the first %d rows: expected to find 'Sno' and 'UID' columns", e.MaxRows)
}

func (e *HeaderNotFoundError) Is(target error) bool {
	return target == ErrHeaderNotFound
}

// MissingColumnError is returned when a logical column cannot be resolved
// from the header row. It carries everything an operator needs to fix the
// source sheet.
type MissingColumnError struct {
	Column Column   // Logical column that failed to resolve
	Terms  []string // Search terms tried, in order
	Header []string // Full header row as read
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column '%s' not found in header row; searched for: %s; header row: %q",
		e.Column, strings.Join(e.Terms, ", "), e.Header)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
