package drivers

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

// Create inserts a driver. Duplicate license numbers map to
// common.ErrAlreadyExists, an unknown bus id to common.ErrInvalidReference.
func (r *PostgresRepository) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {

	query :=
		`INSERT INTO drivers (id, full_name, phone, license_number, bus_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	driver.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		driver.ID, driver.FullName, driver.Phone, driver.LicenseNumber, driver.BusID).
		Scan(&driver.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return driver, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Driver, error) {
	query :=
		`SELECT id, full_name, phone, license_number, bus_id, created_at
		 FROM drivers ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FullName, &d.Phone, &d.LicenseNumber, &d.BusID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return drivers, nil
}
