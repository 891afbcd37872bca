package port

import (
	"context"

	"ad-dashboard/internal/core/domain"
)

// ReportSource is the outbound port the report loader reads from. Exactly
// one source backs a running dashboard.
type ReportSource interface {
	// Name identifies the source in logs and load errors.
	Name() string
	// Version returns an identity of the current source contents. Two equal
	// versions mean a cached table may be reused without reading again.
	Version(ctx context.Context) (string, error)
	// Read loads the whole report, coercing numeric cells. Failures are
	// returned as *domain.DataLoadError.
	Read(ctx context.Context) (domain.Table, error)
}
