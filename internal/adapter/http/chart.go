package httpadapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/wcharczuk/go-chart/v2"

	"ad-dashboard/internal/core/domain"
)

const (
	chartWidth  = 1200
	chartHeight = 480
)

// ratioSeries lists the plotted ratios in legend order.
var ratioSeries = []struct {
	name  string
	value func(domain.Row) float64
}{
	{"ROAS", func(r domain.Row) float64 { return r.ROAS }},
	{"CTR", func(r domain.Row) float64 { return r.CTR }},
	{"CVR", func(r domain.Row) float64 { return r.CVR }},
}

// handleChart renders the monthly ratio trend of one campaign as SVG. A
// selection without rows answers 204.
func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), r.URL.Query().Get("campaign"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(view.Table.Rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err = trendChart(view.Table).Render(chart.SVG, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write chart error", slog.Any("error", err))
	}
}

// trendChart builds one line per ratio with months as category ticks.
// Ranges are set explicitly so single-month and all-zero selections still
// render.
func trendChart(t domain.Table) chart.Chart {
	n := len(t.Rows)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, n)
	for i, row := range t.Rows {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: row.Month}
	}

	maxY := 0.0
	series := make([]chart.Series, 0, len(ratioSeries))
	for i, rs := range ratioSeries {
		ys := make([]float64, n)
		for j, row := range t.Rows {
			ys[j] = rs.value(row)
			maxY = math.Max(maxY, ys[j])
		}
		col := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    rs.name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	xRange := &chart.ContinuousRange{Min: 0, Max: float64(n - 1)}
	if n == 1 {
		xRange = &chart.ContinuousRange{Min: -1, Max: 1}
	}
	if maxY <= 0 {
		maxY = 1
	}

	ch := chart.Chart{
		Title:      "월별 KPI 추이 (%)",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: ticks, Range: xRange},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}
