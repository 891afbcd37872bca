package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when the report lacks the campaign or
	// month column. Numeric columns are optional.
	ErrMissingColumn = errors.New("required column missing")
	// ErrEmptyReport is returned when the source has no header row.
	ErrEmptyReport = errors.New("report has no header row")
)

// DataLoadError reports that the report source could not be read or parsed
// as a table. It is fatal for the request and never retried.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load report %q: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
