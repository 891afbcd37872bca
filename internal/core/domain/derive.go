package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Derive returns a copy of t with ROAS, CTR and CVR filled in for every
// row. A ratio whose denominator is zero, or whose inputs were absent from
// the source, is zero.
func Derive(t Table) Table {
	out := Table{Schema: t.Schema, Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		if t.Schema.Has(FieldRevenue) && t.Schema.Has(FieldCost) {
			r.ROAS = percent(r.Revenue, r.Cost)
		}
		if t.Schema.Has(FieldClicks) && t.Schema.Has(FieldImpressions) {
			r.CTR = percent(decimal.NewFromInt(r.Clicks), decimal.NewFromInt(r.Impressions))
		}
		if t.Schema.Has(FieldConversions) && t.Schema.Has(FieldClicks) {
			r.CVR = percent(decimal.NewFromInt(r.Conversions), decimal.NewFromInt(r.Clicks))
		}
		out.Rows[i] = r
	}
	return out
}

func percent(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	v := num.Div(den).Mul(hundred).InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
