package destinations

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

// Create inserts a destination. Name uniqueness is case-insensitive,
// enforced by the lower(name) unique index.
func (r *PostgresRepository) Create(ctx context.Context, destination *models.Destination) (*models.Destination, error) {

	query :=
		`INSERT INTO destinations (id, name)
		 VALUES ($1, $2)
		 RETURNING created_at
		 `

	destination.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query, destination.ID, destination.Name).
		Scan(&destination.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return destination, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Destination, error) {
	query :=
		`SELECT id, name, created_at FROM destinations ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var destinations []models.Destination
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return destinations, nil
}
