package http

import (
	"net/http"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// EquipmentHandler serves equipment CRUD and image upload flows.
type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

type equipmentRequest struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Rate     float64 `json:"rate"`
	Status   string  `json:"status"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eq := &domain.Equipment{
		OwnerID:  callerID(r),
		Title:    req.Title,
		Type:     req.Type,
		Location: req.Location,
		Rate:     req.Rate,
		Status:   domain.EquipmentStatus(req.Status),
	}
	if err := h.equipmentSvc.AddEquipment(r.Context(), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	eq, err := h.equipmentSvc.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eq := &domain.Equipment{
		ID:       mux.Vars(r)["id"],
		OwnerID:  callerID(r),
		Title:    req.Title,
		Type:     req.Type,
		Location: req.Location,
		Rate:     req.Rate,
		Status:   domain.EquipmentStatus(req.Status),
	}
	if err := h.equipmentSvc.UpdateEquipment(r.Context(), callerID(r), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.equipmentSvc.SetStatus(r.Context(), callerID(r), mux.Vars(r)["id"], domain.EquipmentStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.equipmentSvc.ListMyEquipment(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

type imageUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	IsMain      bool   `json:"is_main"`
}

type imageUploadResponse struct {
	Image     *domain.EquipmentImage `json:"image"`
	UploadURL string                 `json:"upload_url"`
}

func (h *EquipmentHandler) RequestImageUpload(w http.ResponseWriter, r *http.Request) {
	var req imageUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	image, uploadURL, err := h.equipmentSvc.RequestImageUpload(
		r.Context(), callerID(r), mux.Vars(r)["id"], req.FileName, req.ContentType, req.IsMain)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, imageUploadResponse{Image: image, UploadURL: uploadURL})
}

func (h *EquipmentHandler) ConfirmImageUpload(w http.ResponseWriter, r *http.Request) {
	image, err := h.equipmentSvc.ConfirmImageUpload(r.Context(), callerID(r), mux.Vars(r)["imageId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *EquipmentHandler) SetMainImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.equipmentSvc.SetMainImage(r.Context(), callerID(r), vars["id"], vars["imageId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.equipmentSvc.DeleteImage(r.Context(), callerID(r), mux.Vars(r)["imageId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) ImageDownloadURL(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	url, err := h.equipmentSvc.ImageDownloadURL(r.Context(), vars["id"], vars["imageId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}
