package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleCampaigns writes the selectable campaign identifiers as JSON.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.Campaigns(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, campaigns)
}

// handleReport writes the filtered rows and summary of the campaign in the
// `campaign` query parameter as JSON.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), r.URL.Query().Get("campaign"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, view)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
