package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerifyToken(t *testing.T) {
	now := time.Now()
	token, exp, err := IssueToken("admin-1", testSecret, 2*time.Hour, now)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if !exp.Equal(now.Add(2 * time.Hour)) {
		t.Errorf("unexpected expiry %v", exp)
	}

	id, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if id != "admin-1" {
		t.Errorf("expected admin-1, got %q", id)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _, _ := IssueToken("admin-1", testSecret, time.Hour, time.Now())
	other, _ := SecretBytes("another-secret-another-secret-123")
	_, err := VerifyToken(token, other)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, _, _ := IssueToken("admin-1", testSecret, time.Minute, time.Now().Add(-time.Hour))
	if _, err := VerifyToken(token, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSecretBytes_RejectsShortSecrets(t *testing.T) {
	for _, s := range []string{"", "a", "short", "0123456789012345678901234567890"} {
		if _, err := SecretBytes(s); !errors.Is(err, ErrWeakSecret) {
			t.Errorf("SecretBytes(%q): expected ErrWeakSecret, got %v", s, err)
		}
	}
	long := "0123456789012345678901234567890123456789"
	got, err := SecretBytes(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != long {
		t.Errorf("long secret should be kept verbatim")
	}
}

func TestVerifyToken_ZeroPaddedKeyDoesNotVerify(t *testing.T) {
	token, _, err := IssueToken("admin-1", testSecret, time.Hour, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	guessed := make([]byte, MinSecretLen)
	copy(guessed, "t")
	if _, err := VerifyToken(token, guessed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for a guessed key, got %v", err)
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := RandomSecret()
	if len(a) != MinSecretLen {
		t.Errorf("expected %d bytes, got %d", MinSecretLen, len(a))
	}
	if string(a) == string(b) {
		t.Error("expected distinct secrets")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "password123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "password124") {
		t.Error("expected wrong password to fail")
	}
}
