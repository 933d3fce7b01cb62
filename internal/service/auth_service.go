package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/pkg/auth"
)

// LoginResult is returned to the admin UI after a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthService は管理者ログインのインターフェース
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	adminRepo repository.AdminRepository
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAuthService は AuthServiceImpl を生成する（DI: AdminRepository を注入）
func NewAuthService(adminRepo repository.AdminRepository, secret []byte, ttl time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{adminRepo: adminRepo, secret: secret, ttl: ttl, now: time.Now}
}

// dummyHash keeps the unknown-email path as slow as a real bcrypt compare.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("kuchnahi-unknown-admin")
	return h
})

// Login は email とパスワードを検証し、署名付きトークンを返す
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.CheckPassword(dummyHash(), password)
			slog.Info("admin login rejected", "reason", "unknown_email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		slog.Info("admin login rejected", "reason", "bad_password", "admin_id", admin.ID)
		return nil, ErrInvalidCredentials
	}

	token, exp, err := auth.IssueToken(admin.ID, s.secret, s.ttl, s.now())
	if err != nil {
		return nil, err
	}
	slog.Info("admin logged in", "admin_id", admin.ID)
	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}
