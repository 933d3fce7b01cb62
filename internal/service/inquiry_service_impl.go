package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/notify"
	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/internal/validation"
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	repo     repository.InquiryRepository
	notifier notify.Notifier
}

// NewInquiryService creates an InquiryService backed by the given repository.
// A nil notifier disables event publishing.
func NewInquiryService(repo repository.InquiryRepository, notifier notify.Notifier) InquiryService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &inquiryServiceImpl{repo: repo, notifier: notifier}
}

func (s *inquiryServiceImpl) Submit(ctx context.Context, email, message string) (*model.Inquiry, error) {
	// PostgreSQL text cannot hold NUL; drop it before the length rule sees it.
	email = strings.ReplaceAll(email, "\x00", "")
	message = strings.ReplaceAll(message, "\x00", "")

	if err := validation.ValidateInquiry(email, message); err != nil {
		inquiriesSubmitted.WithLabelValues("invalid").Inc()
		return nil, err
	}

	inq := &model.Inquiry{
		Email:   email,
		Message: message,
		Status:  model.InquiryUnread,
	}
	if err := s.repo.Create(ctx, inq); err != nil {
		inquiriesSubmitted.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	inquiriesSubmitted.WithLabelValues("created").Inc()

	// The inquiry is already stored; a publish failure must not undo it.
	if err := s.notifier.InquirySubmitted(ctx, inq); err != nil {
		notifyFailures.Inc()
		slog.Error("inquiry notify failed", "error", err, "inquiry_id", inq.ID)
	}
	return inq, nil
}

func (s *inquiryServiceImpl) List(ctx context.Context, filter model.InquiryFilter) ([]*model.Inquiry, error) {
	if filter.Status != "" {
		if _, ok := model.ParseInquiryStatus(string(filter.Status)); !ok {
			return nil, ErrInvalidStatus
		}
	}
	inquiries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}
	return inquiries, nil
}

func (s *inquiryServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (*model.Inquiry, error) {
	st, ok := model.ParseInquiryStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	inq, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("update inquiry %s: %w", id, err)
	}
	inquiryStatusUpdates.WithLabelValues(string(st)).Inc()
	return inq, nil
}
