package service

import (
	"context"

	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/repository"
)

type serviceListingServiceImpl struct {
	repo      repository.ServiceRepository
	listCache *Cache[[]*model.Service]
	itemCache *Cache[*model.Service]
}

// NewServiceListingService creates a ServiceListingService. Nil caches disable caching.
func NewServiceListingService(repo repository.ServiceRepository, listCache *Cache[[]*model.Service], itemCache *Cache[*model.Service]) ServiceListingService {
	return &serviceListingServiceImpl{repo: repo, listCache: listCache, itemCache: itemCache}
}

func (s *serviceListingServiceImpl) List(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.listCache.Get(cacheKeyList); ok {
		return cached, nil
	}
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []*model.Service{}
	}
	s.listCache.Set(cacheKeyList, services)
	return services, nil
}

func (s *serviceListingServiceImpl) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if cached, ok := s.itemCache.Get(id); ok {
		return cached, nil
	}
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.itemCache.Set(id, svc)
	return svc, nil
}

func (s *serviceListingServiceImpl) Create(ctx context.Context, svc *model.Service) error {
	if err := requireFields(
		"name", svc.Name,
		"tagline", svc.Tagline,
		"iconUrl", svc.IconURL,
	); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return err
	}
	s.purge()
	return nil
}

func (s *serviceListingServiceImpl) Update(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error) {
	svc, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.purge()
	return svc, nil
}

func (s *serviceListingServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.purge()
	return nil
}

func (s *serviceListingServiceImpl) purge() {
	s.listCache.Purge()
	s.itemCache.Purge()
}
