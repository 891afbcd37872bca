package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-dashboard/internal/core/domain"
)

// ReportSource implements port.ReportSource over the most recent import in
// the campaign_report_rows table. It only reads; imports are written by
// db.ImportReport.
type ReportSource struct {
	pool *pgxpool.Pool
}

// NewReportSource returns a new source backed by pool.
func NewReportSource(pool *pgxpool.Pool) *ReportSource {
	return &ReportSource{pool: pool}
}

// Name identifies the source in logs.
func (r *ReportSource) Name() string {
	return "postgres:campaign_report_rows"
}

// Version returns the id of the latest import.
func (r *ReportSource) Version(ctx context.Context) (string, error) {
	id, err := r.latestImport(ctx)
	if err != nil {
		return "", &domain.DataLoadError{Source: r.Name(), Err: err}
	}
	return id, nil
}

// Read returns the rows of the latest import in their original order.
// Every numeric column is present in this source.
func (r *ReportSource) Read(ctx context.Context) (domain.Table, error) {
	id, err := r.latestImport(ctx)
	if err != nil {
		return domain.Table{}, &domain.DataLoadError{Source: r.Name(), Err: err}
	}

	rows, err := r.pool.Query(ctx, `
        SELECT campaign, month, cost::text, impressions, clicks, conversions, revenue::text
        FROM campaign_report_rows
        WHERE import_id = $1
        ORDER BY position`, id)
	if err != nil {
		return domain.Table{}, &domain.DataLoadError{Source: r.Name(), Err: err}
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Row, error) {
		var (
			rr            domain.Row
			cost, revenue string
		)
		err := row.Scan(&rr.Campaign, &rr.Month, &cost, &rr.Impressions, &rr.Clicks, &rr.Conversions, &revenue)
		rr.Cost = domain.ParseAmount(cost)
		rr.Revenue = domain.ParseAmount(revenue)
		rr.Impressions = max(rr.Impressions, 0)
		rr.Clicks = max(rr.Clicks, 0)
		rr.Conversions = max(rr.Conversions, 0)
		return rr, err
	})
	if err != nil {
		return domain.Table{}, &domain.DataLoadError{Source: r.Name(), Err: err}
	}
	return domain.Table{Schema: domain.FullSchema(), Rows: out}, nil
}

func (r *ReportSource) latestImport(ctx context.Context) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id::text FROM report_imports ORDER BY imported_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrEmptyReport
	}
	if err != nil {
		return "", err
	}
	return id, nil
}
