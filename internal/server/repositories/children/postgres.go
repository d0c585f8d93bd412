package children

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

func (r *PostgresRepository) Create(ctx context.Context, child *models.Child) (*models.Child, error) {

	query :=
		`INSERT INTO children (id, first_name, last_name, parent_name, parent_phone, school_id, destination_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	child.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		child.ID, child.FirstName, child.LastName, child.ParentName, child.ParentPhone,
		child.SchoolID, child.DestinationID).
		Scan(&child.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return child, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM children`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
