package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/kuchnahi/backend/internal/storage"
)

// mockStorage は Storage のモック
type mockStorage struct {
	saved     map[string][]byte
	saveErr   error
	deleted   []string
	deleteErr error
}

func (m *mockStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, _ := io.ReadAll(data)
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[key] = b
	return "/uploads/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, key)
	return nil
}

var _ storage.Storage = (*mockStorage)(nil)

func multipartImage(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="logo"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadHandler_Upload_Success(t *testing.T) {
	store := &mockStorage{}
	h := NewUploadHandler(store)

	body, ct := multipartImage(t, "image", "image/png", []byte("\x89PNG fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.URL, "/uploads/media/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Errorf("unexpected url %q", resp.URL)
	}
	if len(store.saved) != 1 {
		t.Errorf("expected one saved object, got %d", len(store.saved))
	}
}

func TestUploadHandler_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		ct       string
		size     int
		wantCode string
	}{
		{"wrong field", "file", "image/png", 10, "image_required"},
		{"unsupported type", "image", "application/pdf", 10, "invalid_content_type"},
		{"too large", "image", "image/jpeg", maxImageSize + multipartOverhead + 1, "file_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUploadHandler(&mockStorage{})
			body, ct := multipartImage(t, tt.field, tt.ct, bytes.Repeat([]byte("x"), tt.size))
			req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			h.Upload(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := decodeError(t, rec); got.Code != tt.wantCode {
				t.Errorf("expected %s, got %s", tt.wantCode, got.Code)
			}
		})
	}
}

func TestUploadHandler_Upload_StorageFailure(t *testing.T) {
	h := NewUploadHandler(&mockStorage{saveErr: errors.New("disk full")})
	body, ct := multipartImage(t, "image", "image/webp", []byte("RIFF"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestUploadHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		deleteErr  error
		wantStatus int
		wantKey    string
	}{
		{name: "removes media key", file: "abc.png", wantStatus: http.StatusNoContent, wantKey: "media/abc.png"},
		{name: "escaping key is not found", file: "..", deleteErr: storage.ErrInvalidKey, wantStatus: http.StatusNotFound},
		{name: "storage failure", file: "abc.png", deleteErr: errors.New("disk gone"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStorage{deleteErr: tt.deleteErr}
			h := NewUploadHandler(store)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/uploads/"+tt.file, nil), "file", tt.file)
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantKey != "" && (len(store.deleted) != 1 || store.deleted[0] != tt.wantKey) {
				t.Errorf("expected delete of %q, got %v", tt.wantKey, store.deleted)
			}
		})
	}
}
