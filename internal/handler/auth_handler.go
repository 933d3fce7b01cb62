package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kuchnahi/backend/internal/service"
	"github.com/kuchnahi/backend/pkg/auth"
)

// AuthHandler は管理者ログインを処理する
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler は AuthHandler を生成する
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login は POST /api/admin/login を処理する
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "Email and password are required")
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to log in")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// adminID returns the admin acting on r, for audit log lines.
func adminID(r *http.Request) string {
	id, _ := auth.AdminIDFromContext(r.Context())
	return id
}
