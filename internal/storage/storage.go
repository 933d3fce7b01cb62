// Package storage keeps uploaded media (project images, service icons).
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned for keys that are empty or escape the storage root.
var ErrInvalidKey = errors.New("storage: invalid key")

// Storage はアップロード画像の保存・削除を抽象化するインターフェース。
type Storage interface {
	// Save stores data under key and returns the public URL.
	// key is a slash-separated relative path such as "media/<uuid>.png".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
}
