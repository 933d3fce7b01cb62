package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuchnahi/backend/internal/storage"
)

const maxImageSize = 2 << 20 // 2 MB

// multipartOverhead leaves room for boundaries and part headers.
const multipartOverhead = 64 << 10

var allowedContentTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// UploadHandler は管理画面からの画像アップロードを処理する
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler は UploadHandler を生成する
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload は POST /api/uploads を処理する。返した url を imageUrl / iconUrl に使う
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > maxImageSize+multipartOverhead {
		writeError(w, http.StatusBadRequest, "file_too_large", "Image must be 2MB or smaller")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "file_too_large", "Image must be 2MB or smaller")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_form", "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image_required", "Image file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "file_too_large", "Image must be 2MB or smaller")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type", "Unsupported image type")
		return
	}

	key := path.Join("media", uuid.NewString()+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to upload image")
		return
	}

	slog.Info("image uploaded", "key", key, "size", header.Size, "content_type", ct, "admin_id", adminID(r))
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

// Delete は DELETE /api/uploads/{file} を処理する。存在しないファイルも 204 を返す
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := "media/" + chi.URLParam(r, "file")
	if err := h.storage.Delete(r.Context(), key); err != nil {
		if errors.Is(err, storage.ErrInvalidKey) {
			writeError(w, http.StatusNotFound, codeNotFound, "Upload not found")
			return
		}
		slog.Error("image delete failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to delete image")
		return
	}
	slog.Info("image deleted", "key", key, "admin_id", adminID(r))
	w.WriteHeader(http.StatusNoContent)
}
