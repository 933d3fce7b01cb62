package repository

import (
	"context"

	"github.com/kuchnahi/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// InquiryRepository persists visitor inquiries. There is no delete.
type InquiryRepository interface {
	// Create inserts inq and fills ID, Status and CreatedAt from the store.
	Create(ctx context.Context, inq *model.Inquiry) error
	// List returns inquiries newest first.
	List(ctx context.Context, filter model.InquiryFilter) ([]*model.Inquiry, error)
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
	// UpdateStatus overwrites status only and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.Inquiry, error)
}

// ProjectRepository はポートフォリオ案件の永続化インターフェース
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists service listings, ordered by Order.
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}

// AdminRepository は管理者アカウントの永続化インターフェース
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	// Upsert creates the admin or replaces name and password hash by email.
	Upsert(ctx context.Context, admin *model.Admin) error
}
