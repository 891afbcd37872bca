package httpadapter

import (
	"fmt"
	"strconv"

	"ad-dashboard/internal/core/domain"
)

// formatPercent renders v as "{v}%" with the given number of decimals.
func formatPercent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// tableRow is one display row of the monthly detail table.
type tableRow struct {
	Month       string
	Campaign    string
	Cost        string
	Impressions string
	Clicks      string
	Conversions string
	Revenue     string
	ROAS        string
	CTR         string
	CVR         string
}

func displayRow(r domain.Row) tableRow {
	return tableRow{
		Month:       r.Month,
		Campaign:    r.Campaign,
		Cost:        r.Cost.String(),
		Impressions: strconv.FormatInt(r.Impressions, 10),
		Clicks:      strconv.FormatInt(r.Clicks, 10),
		Conversions: strconv.FormatInt(r.Conversions, 10),
		Revenue:     r.Revenue.String(),
		ROAS:        formatPercent(r.ROAS, 2),
		CTR:         formatPercent(r.CTR, 2),
		CVR:         formatPercent(r.CVR, 2),
	}
}

func (t tableRow) record() []string {
	return []string{t.Month, t.Campaign, t.Cost, t.Impressions, t.Clicks, t.Conversions, t.Revenue, t.ROAS, t.CTR, t.CVR}
}

// tableHeader matches tableRow.record.
var tableHeader = []string{
	domain.HeaderMonth,
	domain.HeaderCampaign,
	domain.HeaderCost,
	domain.HeaderImpressions,
	domain.HeaderClicks,
	domain.HeaderConversions,
	domain.HeaderRevenue,
	"ROAS",
	"CTR",
	"CVR",
}

type card struct {
	Label string
	Value string
}

// summaryCards formats the summary the way the page shows it: ROAS with one
// decimal, CTR and CVR with two.
func summaryCards(s domain.Summary) []card {
	return []card{
		{Label: "평균 ROAS", Value: formatPercent(s.ROAS, 1)},
		{Label: "평균 CTR", Value: formatPercent(s.CTR, 2)},
		{Label: "평균 CVR", Value: formatPercent(s.CVR, 2)},
	}
}
