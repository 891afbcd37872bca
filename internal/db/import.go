package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-dashboard/internal/core/domain"
)

// ImportReport stores tbl as a new report import and returns its id. The
// postgres report source always serves the most recent import, so a
// successful import replaces what the dashboard shows. Rows keep their
// original order through the position column.
func ImportReport(ctx context.Context, pool *pgxpool.Pool, source string, tbl domain.Table) (string, error) {
	id := uuid.NewString()

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO report_imports (id, source, row_count, imported_at) VALUES ($1, $2, $3, now())`,
		id, source, tbl.Len())
	if err != nil {
		return "", err
	}

	for i, r := range tbl.Rows {
		_, err = tx.Exec(ctx, `INSERT INTO campaign_report_rows
    (import_id, position, campaign, month, cost, impressions, clicks, conversions, revenue)
VALUES ($1,$2,$3,$4,$5::numeric,$6,$7,$8,$9::numeric)`,
			id, i, r.Campaign, r.Month, r.Cost.String(), r.Impressions, r.Clicks, r.Conversions, r.Revenue.String())
		if err != nil {
			return "", err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}
