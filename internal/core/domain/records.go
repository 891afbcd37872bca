package domain

import "fmt"

// TableFromRecords builds a Table from a header row and string records, as
// produced by CSV and spreadsheet readers. Campaign and month columns are
// required; numeric columns that are absent are recorded in the schema.
// Unknown columns are ignored and short records are padded with empty cells.
func TableFromRecords(header []string, records [][]string) (Table, error) {
	if len(header) == 0 {
		return Table{}, ErrEmptyReport
	}

	campaignIdx, monthIdx := -1, -1
	var fieldIdx [numFields]int
	for i := range fieldIdx {
		fieldIdx[i] = -1
	}

	var schema Schema
	for i, h := range header {
		n := normalizeHeader(h)
		switch {
		case n == HeaderCampaign || n == "campaign":
			campaignIdx = i
		case n == HeaderMonth || n == "month":
			monthIdx = i
		default:
			if f, ok := matchField(n); ok && fieldIdx[f] < 0 {
				fieldIdx[f] = i
				schema = schema.With(f)
			}
		}
	}
	if campaignIdx < 0 {
		return Table{}, fmt.Errorf("%w: %s", ErrMissingColumn, HeaderCampaign)
	}
	if monthIdx < 0 {
		return Table{}, fmt.Errorf("%w: %s", ErrMissingColumn, HeaderMonth)
	}

	cell := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Campaign:    cell(rec, campaignIdx),
			Month:       cell(rec, monthIdx),
			Cost:        ParseAmount(cell(rec, fieldIdx[FieldCost])),
			Impressions: ParseCount(cell(rec, fieldIdx[FieldImpressions])),
			Clicks:      ParseCount(cell(rec, fieldIdx[FieldClicks])),
			Conversions: ParseCount(cell(rec, fieldIdx[FieldConversions])),
			Revenue:     ParseAmount(cell(rec, fieldIdx[FieldRevenue])),
		})
	}
	return Table{Schema: schema, Rows: rows}, nil
}
