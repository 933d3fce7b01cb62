package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/internal/service"
	"github.com/kuchnahi/backend/internal/validation"
)

// InquiryHandler serves the contact form and its moderation endpoints.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// submitRequest is the expected JSON body for POST /api/contact.
// The frontend form collects more fields; only these two are accepted.
type submitRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type submitResponse struct {
	Message string         `json:"message"`
	Inquiry *model.Inquiry `json:"inquiry"`
}

// Submit handles POST /api/contact.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inq, err := h.inquiryService.Submit(r.Context(), req.Email, req.Message)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, string(verr.Kind), verr.Error())
			return
		}
		slog.Error("inquiry submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to submit inquiry")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message: "Inquiry submitted successfully",
		Inquiry: inq,
	})
}

// List handles GET /api/contact. Optional query: status.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.InquiryFilter{Status: model.InquiryStatus(r.URL.Query().Get("status"))}

	inquiries, err := h.inquiryService.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, codeInvalidStatus, "Invalid status")
			return
		}
		slog.Error("inquiry list failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to fetch inquiries")
		return
	}
	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}
	writeJSON(w, http.StatusOK, inquiries)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contact/{id}/status.
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Inquiry not found")
		return
	}

	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inq, err := h.inquiryService.UpdateStatus(r.Context(), id, req.Status)
	switch {
	case err == nil:
		slog.Info("inquiry status updated", "inquiry_id", id, "status", inq.Status, "admin_id", adminID(r))
		writeJSON(w, http.StatusOK, inq)
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, codeInvalidStatus, "Invalid status")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "Inquiry not found")
	default:
		slog.Error("inquiry status update failed", "error", err, "inquiry_id", id)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to update inquiry")
	}
}
