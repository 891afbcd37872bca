package usecase

import (
	"context"
	"log/slog"
	"sync"

	"ad-dashboard/internal/core/domain"
	"ad-dashboard/internal/core/port"
)

// ReportCache memoizes the derived report table for one source. The table
// is reused for as long as the source reports the same version and is
// re-read and re-derived otherwise. Returned tables are shared between
// callers and must not be modified.
type ReportCache struct {
	src    port.ReportSource
	logger *slog.Logger

	mu      sync.RWMutex
	loaded  bool
	version string
	table   domain.Table
}

// NewReportCache returns an empty cache over src.
func NewReportCache(src port.ReportSource, logger *slog.Logger) *ReportCache {
	return &ReportCache{src: src, logger: logger}
}

// Get returns the derived table for the current source version, reading
// the source only when the version changed or the cache was invalidated.
// Load failures are returned as is and leave the cache untouched.
func (c *ReportCache) Get(ctx context.Context) (domain.Table, error) {
	version, err := c.src.Version(ctx)
	if err != nil {
		return domain.Table{}, err
	}

	c.mu.RLock()
	if c.loaded && c.version == version {
		tbl := c.table
		c.mu.RUnlock()
		return tbl, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && c.version == version {
		return c.table, nil
	}

	raw, err := c.src.Read(ctx)
	if err != nil {
		return domain.Table{}, err
	}
	tbl := domain.Derive(raw)

	attrs := []any{
		slog.String("source", c.src.Name()),
		slog.String("version", version),
		slog.Int("rows", tbl.Len()),
	}
	if missing := tbl.Schema.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.Header()
		}
		c.logger.Warn("report columns missing, dependent ratios default to 0", append(attrs, slog.Any("columns", names))...)
	}
	if n := tbl.Anomalies(); n > 0 {
		c.logger.Warn("report rows with clicks above impressions or conversions above clicks", append(attrs, slog.Int("anomalies", n))...)
	}
	c.logger.Info("report loaded", attrs...)

	c.table, c.version, c.loaded = tbl, version, true
	return tbl, nil
}

// Invalidate drops the cached table so the next Get reads the source.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.version = ""
	c.table = domain.Table{}
}
