package domain

import "github.com/shopspring/decimal"

// Row is one (campaign, month) observation of the monthly report. Money
// columns are decimals in won, counts are integers. ROAS, CTR and CVR are
// percentages filled in by Derive.
type Row struct {
	Campaign    string          `json:"campaign"`
	Month       string          `json:"month"`
	Cost        decimal.Decimal `json:"cost"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`

	ROAS float64 `json:"roas"`
	CTR  float64 `json:"ctr"`
	CVR  float64 `json:"cvr"`
}

// Table is an ordered set of report rows together with the schema of the
// numeric columns the source actually carried. Tables are treated as
// immutable values: every pipeline stage returns a new Table.
type Table struct {
	Schema Schema `json:"-"`
	Rows   []Row  `json:"rows"`
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Anomalies counts rows where clicks exceed impressions or conversions
// exceed clicks. Such rows are kept as is; the count only feeds a
// data-quality warning.
func (t Table) Anomalies() int {
	var n int
	for _, r := range t.Rows {
		if t.Schema.Has(FieldClicks) && t.Schema.Has(FieldImpressions) && r.Clicks > r.Impressions {
			n++
			continue
		}
		if t.Schema.Has(FieldConversions) && t.Schema.Has(FieldClicks) && r.Conversions > r.Clicks {
			n++
		}
	}
	return n
}

// Summary holds the mean of each ratio over a set of rows.
type Summary struct {
	ROAS float64 `json:"roas"`
	CTR  float64 `json:"ctr"`
	CVR  float64 `json:"cvr"`
}
