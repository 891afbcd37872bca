package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ad-dashboard/internal/core/domain"
	"ad-dashboard/internal/core/port"
)

// Handler is the inbound HTTP adapter of the dashboard. It renders the
// report page and chart and exposes the same data as JSON and CSV. Every
// request runs the pipeline afresh through the use case; only the loaded
// report is shared between requests.
type Handler struct {
	svc    port.ReportUseCase
	logger *slog.Logger
	title  string
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger, title string) *Handler {
	h := &Handler{svc: svc, logger: logger, title: title}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.handlePage)
	r.Get("/chart.svg", h.handleChart)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/report", h.handleReport)
		r.Get("/report/export", h.handleExport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// fail logs err and answers 500. A report that cannot be loaded is the
// only failure users see.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var loadErr *domain.DataLoadError
	if errors.As(err, &loadErr) {
		h.logger.Error("report load error",
			slog.String("source", loadErr.Source),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	h.logger.Error("request error", slog.String("path", r.URL.Path), slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
