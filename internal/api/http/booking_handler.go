package http

import (
	"context"
	"net/http"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler serves booking creation and lifecycle transitions.
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"start_date"` // RFC 3339
	EndDate     string `json:"end_date"`
	Notes       string `json:"notes"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "start_date must be RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "end_date must be RFC 3339"})
		return
	}

	booking, err := h.bookingSvc.CreateRequest(r.Context(), callerID(r), req.EquipmentID, start, end, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListByRenter(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.Approve)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.Reject)
}

func (h *BookingHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.Deliver)
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.Complete)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.Cancel)
}

func (h *BookingHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, callerID, bookingID string) (*domain.Booking, error),
) {
	bookingID := mux.Vars(r)["id"]
	booking, err := op(r.Context(), callerID(r), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
