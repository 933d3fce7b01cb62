package service

import (
	"context"
	"fmt"

	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/repository"
)

const cacheKeyList = "list"

// ProjectServiceImpl は ProjectService の実装。読み取りはキャッシュを経由する
type ProjectServiceImpl struct {
	repo      repository.ProjectRepository
	listCache *Cache[[]*model.Project]
	itemCache *Cache[*model.Project]
}

// NewProjectService は ProjectServiceImpl を生成する。cache が nil ならキャッシュしない
func NewProjectService(repo repository.ProjectRepository, listCache *Cache[[]*model.Project], itemCache *Cache[*model.Project]) ProjectService {
	return &ProjectServiceImpl{repo: repo, listCache: listCache, itemCache: itemCache}
}

// List はプロジェクト一覧を新しい順に返す
func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	if cached, ok := s.listCache.Get(cacheKeyList); ok {
		return cached, nil
	}
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	s.listCache.Set(cacheKeyList, projects)
	return projects, nil
}

// GetByID は ID でプロジェクトを取得する
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if cached, ok := s.itemCache.Get(id); ok {
		return cached, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.itemCache.Set(id, p)
	return p, nil
}

// Create は必須項目を確認し、既定値を補ってから作成する
func (s *ProjectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	if err := requireFields(
		"title", p.Title,
		"description", p.Description,
		"imageUrl", p.ImageURL,
		"category", p.Category,
	); err != nil {
		return err
	}
	p.ApplyDefaults()
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.purge()
	return nil
}

// Update は patch の指定項目のみ更新する
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.purge()
	return p, nil
}

// Delete はプロジェクトを削除する
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.purge()
	return nil
}

// requireFields takes name/value pairs and reports the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequired, pairs[i])
		}
	}
	return nil
}

func (s *ProjectServiceImpl) purge() {
	s.listCache.Purge()
	s.itemCache.Purge()
}
