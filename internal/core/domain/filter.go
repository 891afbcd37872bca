package domain

// Campaigns returns the distinct campaign identifiers of t in order of first
// appearance.
func Campaigns(t Table) []string {
	seen := make(map[string]struct{}, len(t.Rows))
	out := make([]string, 0)
	for _, r := range t.Rows {
		if _, ok := seen[r.Campaign]; ok {
			continue
		}
		seen[r.Campaign] = struct{}{}
		out = append(out, r.Campaign)
	}
	return out
}

// Filter returns the rows of t whose campaign equals campaign, in their
// original order. An unknown campaign yields an empty table.
func Filter(t Table, campaign string) Table {
	out := Table{Schema: t.Schema, Rows: make([]Row, 0)}
	for _, r := range t.Rows {
		if r.Campaign == campaign {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Summarize returns the arithmetic mean of each ratio over t. An empty
// table summarizes to zeros.
func Summarize(t Table) Summary {
	if len(t.Rows) == 0 {
		return Summary{}
	}
	var s Summary
	for _, r := range t.Rows {
		s.ROAS += r.ROAS
		s.CTR += r.CTR
		s.CVR += r.CVR
	}
	n := float64(len(t.Rows))
	return Summary{ROAS: s.ROAS / n, CTR: s.CTR / n, CVR: s.CVR / n}
}
