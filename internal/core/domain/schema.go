package domain

import "strings"

// Field identifies one of the numeric report columns.
type Field int

const (
	FieldCost Field = iota
	FieldImpressions
	FieldClicks
	FieldConversions
	FieldRevenue

	numFields
)

// Fields lists the numeric columns in report order.
var Fields = []Field{FieldCost, FieldImpressions, FieldClicks, FieldConversions, FieldRevenue}

// Header names used by the monthly campaign report export.
const (
	HeaderCampaign    = "캠페인"
	HeaderMonth       = "월"
	HeaderCost        = "총비용(VAT포함,원)"
	HeaderImpressions = "노출수"
	HeaderClicks      = "클릭수"
	HeaderConversions = "전환수"
	HeaderRevenue     = "전환매출액(원)"
)

var fieldHeaders = [numFields]string{
	FieldCost:        HeaderCost,
	FieldImpressions: HeaderImpressions,
	FieldClicks:      HeaderClicks,
	FieldConversions: HeaderConversions,
	FieldRevenue:     HeaderRevenue,
}

var fieldAliases = [numFields]string{
	FieldCost:        "cost",
	FieldImpressions: "impressions",
	FieldClicks:      "clicks",
	FieldConversions: "conversions",
	FieldRevenue:     "revenue",
}

// Header returns the report header for f.
func (f Field) Header() string {
	return fieldHeaders[f]
}

func (f Field) String() string {
	return fieldAliases[f]
}

// Schema records which numeric columns were present in the source. A
// missing column loads as zeros and disables every ratio that needs it.
type Schema struct {
	present [numFields]bool
}

// FullSchema returns a Schema with every numeric column present.
func FullSchema() Schema {
	var s Schema
	for _, f := range Fields {
		s.present[f] = true
	}
	return s
}

// With returns a copy of s with f marked present.
func (s Schema) With(f Field) Schema {
	s.present[f] = true
	return s
}

// Has reports whether f was present in the source.
func (s Schema) Has(f Field) bool {
	return s.present[f]
}

// Missing returns the absent numeric columns in report order.
func (s Schema) Missing() []Field {
	var out []Field
	for _, f := range Fields {
		if !s.present[f] {
			out = append(out, f)
		}
	}
	return out
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func matchField(h string) (Field, bool) {
	for _, f := range Fields {
		if h == normalizeHeader(fieldHeaders[f]) || h == fieldAliases[f] {
			return f, true
		}
	}
	return 0, false
}

// IsLabelHeader reports whether h names the campaign or month column. These
// columns are read as displayed text rather than as numbers.
func IsLabelHeader(h string) bool {
	n := normalizeHeader(h)
	return n == HeaderCampaign || n == "campaign" || n == HeaderMonth || n == "month"
}
