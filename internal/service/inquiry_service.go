package service

import (
	"context"

	"github.com/kuchnahi/backend/internal/model"
)

// InquiryService is the moderation workflow for visitor inquiries.
type InquiryService interface {
	// Submit validates the payload and persists a new UNREAD inquiry.
	// A *validation.Error is returned for the first failed rule and nothing is stored.
	Submit(ctx context.Context, email, message string) (*model.Inquiry, error)

	// List returns inquiries newest first. The zero filter lists everything.
	List(ctx context.Context, filter model.InquiryFilter) ([]*model.Inquiry, error)

	// UpdateStatus sets the status of an existing inquiry. It fails with
	// ErrInvalidStatus for unknown values and repository.ErrNotFound for
	// unknown ids.
	UpdateStatus(ctx context.Context, id string, status string) (*model.Inquiry, error)
}
