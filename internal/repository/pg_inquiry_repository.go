package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kuchnahi/backend/internal/model"
)

const inquiryColumns = `id, email, message, status, created_at`

// PgInquiryRepository is the PostgreSQL implementation of InquiryRepository.
type PgInquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPgInquiryRepository creates a PgInquiryRepository backed by the given pool.
func NewPgInquiryRepository(pool *pgxpool.Pool) *PgInquiryRepository {
	return &PgInquiryRepository{pool: pool}
}

// Ensure PgInquiryRepository implements InquiryRepository at compile time.
var _ InquiryRepository = (*PgInquiryRepository)(nil)

// Create inserts a new inquiries row and populates ID, Status and CreatedAt
// from the RETURNING clause.
func (r *PgInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	var status string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO inquiries (email, message, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, status, created_at`,
		inq.Email, inq.Message, string(inq.Status),
	).Scan(&inq.ID, &status, &inq.CreatedAt)
	if err != nil {
		return err
	}
	inq.Status = model.InquiryStatus(status)
	return nil
}

// List returns inquiries ordered by created_at descending, optionally
// restricted to one status.
func (r *PgInquiryRepository) List(ctx context.Context, filter model.InquiryFilter) ([]*model.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []*model.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

// GetByID returns ErrNotFound when no row matches.
func (r *PgInquiryRepository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)
	inq, err := scanInquiry(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return inq, nil
}

// UpdateStatus overwrites status in a single statement; no other column is touched.
func (r *PgInquiryRepository) UpdateStatus(ctx context.Context, id string, status model.InquiryStatus) (*model.Inquiry, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE inquiries SET status = $1 WHERE id = $2 RETURNING `+inquiryColumns,
		string(status), id,
	)
	inq, err := scanInquiry(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return inq, nil
}

func scanInquiry(row pgx.Row) (*model.Inquiry, error) {
	var inq model.Inquiry
	var status string
	if err := row.Scan(&inq.ID, &inq.Email, &inq.Message, &status, &inq.CreatedAt); err != nil {
		return nil, err
	}
	inq.Status = model.InquiryStatus(status)
	return &inq, nil
}
