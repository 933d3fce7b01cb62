package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kuchnahi/backend/internal/model"
)

const serviceColumns = `id, name, tagline, icon_url, description, sort_order, created_at, updated_at`

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository backed by the given pool.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

// List returns services by sort_order, oldest first within the same order.
func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*model.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s, nil
}

func (r *PgServiceRepository) Create(ctx context.Context, s *model.Service) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO services (name, tagline, icon_url, description, sort_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Tagline, s.IconURL, s.Description, s.Order,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update locks the row, applies the patch and writes every column back.
func (r *PgServiceRepository) Update(ctx context.Context, id string, patch model.ServicePatch) (*model.Service, error) {
	var updated *model.Service
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		s, err := scanService(tx.QueryRow(ctx,
			`SELECT `+serviceColumns+` FROM services WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		patch.Apply(s)
		updated, err = scanService(tx.QueryRow(ctx,
			`UPDATE services SET
			   name = $1, tagline = $2, icon_url = $3, description = $4, sort_order = $5, updated_at = NOW()
			 WHERE id = $6
			 RETURNING `+serviceColumns,
			s.Name, s.Tagline, s.IconURL, s.Description, s.Order, id,
		))
		return err
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return updated, nil
}

func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return mapNotFound(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Tagline, &s.IconURL, &s.Description, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
