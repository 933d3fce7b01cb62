package service

import (
	"context"

	"github.com/kuchnahi/backend/internal/model"
)

// ServiceListingService manages the agency's service offerings.
type ServiceListingService interface {
	List(ctx context.Context) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}
