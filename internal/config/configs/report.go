package configs

import "strings"

// Report selects where the monthly campaign report is read from.
type Report struct {
	// Source is "file" (default) or "postgres".
	Source string `env:"SOURCE" envDefault:"file"`
	// Path is the report file. Files ending in .xlsx are read as workbooks,
	// anything else as CSV.
	Path string `env:"PATH" envDefault:"월별_캠페인_광고리포트.csv"`
	// Watch invalidates the cached report when the file changes.
	Watch bool `env:"WATCH" envDefault:"true"`
	// Title is shown at the top of the dashboard page.
	Title string `env:"TITLE" envDefault:"광고 캠페인 대시보드"`
}

// UsePostgres reports whether the postgres source is selected.
func (c Report) UsePostgres() bool {
	return strings.EqualFold(strings.TrimSpace(c.Source), "postgres")
}
