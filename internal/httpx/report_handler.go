package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/dashboard"
	"atelier-be/internal/middleware"
	"atelier-be/internal/report"

	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	ReportSvc    report.Service
	DashboardSvc dashboard.Service
}

func (h *ReportHandler) Register(r chi.Router) {
	r.With(middleware.RequirePermission("reports", "read")).Get("/reports", h.reports)
	r.With(middleware.RequirePermission("dashboard", "read")).Get("/dashboard", h.dashboard)
}

func (h *ReportHandler) reports(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		writeError(w, "from and to are required", http.StatusBadRequest)
		return
	}

	from, err := parseDate(fromStr)
	if err != nil {
		writeError(w, "from must be a valid date", http.StatusBadRequest)
		return
	}
	to, err := parseDate(toStr)
	if err != nil {
		writeError(w, "to must be a valid date", http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	rep, err := h.ReportSvc.GetReports(r.Context(), id.WorkspaceID, from, to)
	if err != nil {
		if errors.Is(err, report.ErrInvalidRange) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(rep))
}

func (h *ReportHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	d, err := h.DashboardSvc.GetDashboard(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardDTO(d))
}
