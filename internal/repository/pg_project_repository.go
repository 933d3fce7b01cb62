package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kuchnahi/backend/internal/model"
)

const projectColumns = `id, title, description, image_url, category, year, tags, featured, layout_type, accent_color, created_at, updated_at`

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// List はプロジェクト一覧を新しい順に取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

// Create はプロジェクトを作成する
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, image_url, category, year, tags, featured, layout_type, accent_color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.ImageURL, p.Category, p.Year, p.Tags, p.Featured, p.LayoutType, p.AccentColor,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update は行をロックして読み出し、patch を適用して書き戻す
func (r *PgProjectRepository) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	var updated *model.Project
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		p, err := scanProject(tx.QueryRow(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		patch.Apply(p)
		updated, err = scanProject(tx.QueryRow(ctx,
			`UPDATE projects SET
			   title = $1, description = $2, image_url = $3, category = $4, year = $5,
			   tags = $6, featured = $7, layout_type = $8, accent_color = $9, updated_at = NOW()
			 WHERE id = $10
			 RETURNING `+projectColumns,
			p.Title, p.Description, p.ImageURL, p.Category, p.Year,
			p.Tags, p.Featured, p.LayoutType, p.AccentColor, id,
		))
		return err
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return updated, nil
}

// Delete はプロジェクトを削除する
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return mapNotFound(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Category, &p.Year,
		&p.Tags, &p.Featured, &p.LayoutType, &p.AccentColor, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
