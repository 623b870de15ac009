package http

import (
	"net/http"

	"onerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// InsightHandler serves insight listing and suppression.
type InsightHandler struct {
	insightSvc service.InsightService
}

func NewInsightHandler(insightSvc service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insightSvc.ListForOwner(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func (h *InsightHandler) Snooze(w http.ResponseWriter, r *http.Request) {
	if err := h.insightSvc.Snooze(r.Context(), callerID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *InsightHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.insightSvc.Dismiss(r.Context(), callerID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
