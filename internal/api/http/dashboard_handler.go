package http

import (
	"net/http"

	"onerental-backend/internal/service"
)

// DashboardHandler serves the owner dashboard payload and its CSV export.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardSvc.GetOwnerDashboard(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// ExportRevenueCSV streams the monthly revenue series as a CSV download.
func (h *DashboardHandler) ExportRevenueCSV(w http.ResponseWriter, r *http.Request) {
	csv, err := h.dashboardSvc.RevenueCSV(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="revenue-data.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}
