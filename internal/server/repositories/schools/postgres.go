package schools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a school. A duplicate contact email surfaces as
// common.ErrAlreadyExists via the unique index.
func (r *PostgresRepository) Create(ctx context.Context, school *models.School) (*models.School, error) {

	query :=
		`INSERT INTO schools (id, name, address, contact_email, contact_phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	school.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		school.ID, school.Name, school.Address, school.ContactEmail, school.ContactPhone).
		Scan(&school.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return school, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.School, error) {
	query :=
		`SELECT id, name, address, contact_email, contact_phone, created_at
		 FROM schools ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var schools []models.School
	for rows.Next() {
		var s models.School
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.ContactEmail, &s.ContactPhone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		schools = append(schools, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return schools, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schools`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
