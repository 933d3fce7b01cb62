package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kuchnahi/backend/internal/model"
)

// MemoryInquiryRepository keeps inquiries in process memory. The workflow and
// handler tests run against it.
type MemoryInquiryRepository struct {
	mu        sync.RWMutex
	inquiries map[string]*model.Inquiry
	seq       map[string]int64
	next      int64
	now       func() time.Time
}

// NewMemoryInquiryRepository creates an empty in-memory store.
func NewMemoryInquiryRepository() *MemoryInquiryRepository {
	return &MemoryInquiryRepository{
		inquiries: make(map[string]*model.Inquiry),
		seq:       make(map[string]int64),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ InquiryRepository = (*MemoryInquiryRepository)(nil)

func (r *MemoryInquiryRepository) Create(_ context.Context, inq *model.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inq.ID = uuid.NewString()
	inq.CreatedAt = r.now()
	if inq.Status == "" {
		inq.Status = model.InquiryUnread
	}
	stored := *inq
	r.inquiries[inq.ID] = &stored
	r.next++
	r.seq[inq.ID] = r.next
	return nil
}

// List orders by CreatedAt descending; insertion order breaks ties so two
// submissions within the same clock tick still list newest first.
func (r *MemoryInquiryRepository) List(_ context.Context, filter model.InquiryFilter) ([]*model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Inquiry, 0, len(r.inquiries))
	for _, inq := range r.inquiries {
		if filter.Status != "" && inq.Status != filter.Status {
			continue
		}
		c := *inq
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

func (r *MemoryInquiryRepository) GetByID(_ context.Context, id string) (*model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inq, ok := r.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *inq
	return &c, nil
}

func (r *MemoryInquiryRepository) UpdateStatus(_ context.Context, id string, status model.InquiryStatus) (*model.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inq, ok := r.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	inq.Status = status
	c := *inq
	return &c, nil
}
