package buses

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

// Create inserts a bus. Duplicate plates map to common.ErrAlreadyExists,
// unknown school/destination ids to common.ErrInvalidReference (FK checks).
func (r *PostgresRepository) Create(ctx context.Context, bus *models.Bus) (*models.Bus, error) {

	query :=
		`INSERT INTO buses (id, plate_number, gps_model, owner_name, school_id, destination_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	bus.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		bus.ID, bus.PlateNumber, bus.GpsModel, bus.OwnerName, bus.SchoolID, bus.DestinationID).
		Scan(&bus.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bus, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Bus, error) {
	query :=
		`SELECT id, plate_number, gps_model, owner_name, school_id, destination_id, created_at
		 FROM buses ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var buses []models.Bus
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.PlateNumber, &b.GpsModel, &b.OwnerName, &b.SchoolID, &b.DestinationID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		buses = append(buses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return buses, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM buses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, busID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM buses WHERE id = $1)`, busID).Scan(&exists)
	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return false, mapped
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
