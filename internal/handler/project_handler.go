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

// ProjectHandler はポートフォリオ案件の CRUD を処理する
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List は GET /api/projects を処理する
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		h.writeFailure(w, err, id, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create は POST /api/projects を処理する
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if !decodeJSON(w, r, &p) {
		return
	}
	p.ID = ""

	if err := h.projectService.Create(r.Context(), &p); err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			writeError(w, http.StatusBadRequest, codeMissingField, err.Error())
			return
		}
		slog.Error("project create failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to create project")
		return
	}
	slog.Info("project created", "project_id", p.ID, "admin_id", adminID(r))
	writeJSON(w, http.StatusCreated, &p)
}

// Update は PUT /api/projects/{id} を処理する。送られたフィールドだけを更新する
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var patch model.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	project, err := h.projectService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeFailure(w, err, id, "Failed to update project")
		return
	}
	slog.Info("project updated", "project_id", id, "admin_id", adminID(r))
	writeJSON(w, http.StatusOK, project)
}

// Delete は DELETE /api/projects/{id} を処理する
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	if err := h.projectService.Delete(r.Context(), id); err != nil {
		h.writeFailure(w, err, id, "Failed to delete project")
		return
	}
	slog.Info("project deleted", "project_id", id, "admin_id", adminID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) writeFailure(w http.ResponseWriter, err error, id, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, codeNotFound, "Project not found")
		return
	}
	slog.Error(msg, "error", err, "project_id", id)
	writeError(w, http.StatusInternalServerError, codeInternal, msg)
}

// projectID はパスの id を取り出す。UUID でなければ存在しないものとして 404 を返す
func projectID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Project not found")
		return "", false
	}
	return id, true
}
