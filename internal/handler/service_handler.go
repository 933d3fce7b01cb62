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
)

// ServiceHandler serves the agency's service listings.
type ServiceHandler struct {
	services service.ServiceListingService
}

func NewServiceHandler(services service.ServiceListingService) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// List handles GET /api/services, ordered by display order.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.List(r.Context())
	if err != nil {
		slog.Error("service list failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to fetch services")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := serviceID(w, r)
	if !ok {
		return
	}
	svc, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		h.writeFailure(w, err, id, "Failed to fetch service")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if !decodeJSON(w, r, &svc) {
		return
	}
	svc.ID = ""

	if err := h.services.Create(r.Context(), &svc); err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			writeError(w, http.StatusBadRequest, codeMissingField, err.Error())
			return
		}
		slog.Error("service create failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to create service")
		return
	}
	slog.Info("service created", "service_id", svc.ID, "admin_id", adminID(r))
	writeJSON(w, http.StatusCreated, &svc)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := serviceID(w, r)
	if !ok {
		return
	}
	var patch model.ServicePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	svc, err := h.services.Update(r.Context(), id, patch)
	if err != nil {
		h.writeFailure(w, err, id, "Failed to update service")
		return
	}
	slog.Info("service updated", "service_id", id, "admin_id", adminID(r))
	writeJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := serviceID(w, r)
	if !ok {
		return
	}
	if err := h.services.Delete(r.Context(), id); err != nil {
		h.writeFailure(w, err, id, "Failed to delete service")
		return
	}
	slog.Info("service deleted", "service_id", id, "admin_id", adminID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ServiceHandler) writeFailure(w http.ResponseWriter, err error, id, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "Service not found")
		return
	}
	slog.Error(msg, "error", err, "service_id", id)
	writeError(w, http.StatusInternalServerError, codeInternal, msg)
}

func serviceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Service not found")
		return "", false
	}
	return id, true
}
