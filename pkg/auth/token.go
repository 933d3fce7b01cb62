package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the admin UI may carry the token in.
const CookieName = "kuchnahi_admin"

const issuer = "kuchnahi-backend"

// MinSecretLen is the shortest HS256 signing key accepted, in bytes.
const MinSecretLen = 32

var (
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWeakSecret is returned by SecretBytes for keys shorter than MinSecretLen.
	ErrWeakSecret = fmt.Errorf("signing secret must be at least %d bytes", MinSecretLen)
)

// SecretBytes は文字列から署名用のバイト列を生成する（32バイト未満はエラー）
func SecretBytes(s string) ([]byte, error) {
	if len(s) < MinSecretLen {
		return nil, ErrWeakSecret
	}
	return []byte(s), nil
}

// RandomSecret returns a fresh MinSecretLen-byte key for processes that
// never verify tokens across restarts.
func RandomSecret() ([]byte, error) {
	b := make([]byte, MinSecretLen)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	return b, nil
}

// IssueToken signs an HS256 JWT whose subject is adminID.
func IssueToken(adminID string, secret []byte, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyToken checks signature, issuer and expiry and returns the admin id.
func VerifyToken(token string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
