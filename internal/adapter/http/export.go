package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// handleExport downloads the displayed detail table of one campaign as CSV,
// with ratios formatted as on the page.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), r.URL.Query().Get("campaign"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"report.csv\"; filename*=UTF-8''%s.csv", url.PathEscape(view.Selected)))

	cw := csv.NewWriter(w)
	if err = cw.Write(tableHeader); err != nil {
		h.logger.Error("export write error", slog.Any("error", err))
		return
	}
	for _, row := range view.Table.Rows {
		if err = cw.Write(displayRow(row).record()); err != nil {
			h.logger.Error("export write error", slog.Any("error", err))
			return
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		h.logger.Error("export flush error", slog.Any("error", err))
	}
}
