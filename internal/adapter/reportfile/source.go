package reportfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ad-dashboard/internal/core/domain"
)

// Source implements port.ReportSource for a single report file on disk.
// The format is chosen from the file extension: ".xlsx" is read as a
// workbook, anything else as comma separated text.
type Source struct {
	path string
	abs  string
}

// NewSource returns a Source reading path.
func NewSource(path string) *Source {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Source{path: path, abs: abs}
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.path
}

// Path returns the absolute file path, the form Watch matches events against.
func (s *Source) Path() string {
	return s.abs
}

// Version identifies the file contents by size and modification time.
func (s *Source) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fi, err := os.Stat(s.path)
	if err != nil {
		return "", &domain.DataLoadError{Source: s.path, Err: err}
	}
	return fmt.Sprintf("%d-%d", fi.Size(), fi.ModTime().UnixNano()), nil
}

// Read loads and coerces the whole report.
func (s *Source) Read(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return domain.Table{}, err
	}

	var (
		header  []string
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(s.path), ".xlsx") {
		header, records, err = readXLSX(s.path)
	} else {
		header, records, err = readCSV(s.path)
	}
	if err != nil {
		return domain.Table{}, &domain.DataLoadError{Source: s.path, Err: err}
	}

	tbl, err := domain.TableFromRecords(header, records)
	if err != nil {
		return domain.Table{}, &domain.DataLoadError{Source: s.path, Err: err}
	}
	return tbl, nil
}
