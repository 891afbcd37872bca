package httpadapter

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type pageData struct {
	Title     string
	Campaigns []string
	Selected  string
	Cards     []card
	Header    []string
	Rows      []tableRow
	ChartURL  string
	ExportURL string
}

// handlePage renders the dashboard for the campaign in the `campaign`
// query parameter, or the first campaign when it is absent.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), r.URL.Query().Get("campaign"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	q := url.Values{"campaign": {view.Selected}}.Encode()
	data := pageData{
		Title:     h.title,
		Campaigns: view.Campaigns,
		Selected:  view.Selected,
		Cards:     summaryCards(view.Summary),
		Header:    tableHeader,
		Rows:      make([]tableRow, 0, len(view.Table.Rows)),
		ExportURL: "/api/v1/report/export?" + q,
	}
	if len(view.Table.Rows) > 0 {
		data.ChartURL = "/chart.svg?" + q
	}
	for _, row := range view.Table.Rows {
		data.Rows = append(data.Rows, displayRow(row))
	}

	var buf bytes.Buffer
	if err = pageTmpl.Execute(&buf, data); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Error("write page error", slog.Any("error", err))
	}
}
