package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const deviceColumns = `id, serial_number, sim_number, device_model, added_by,
	latitude, longitude, speed, recorded_at, created_at`

func (r *PostgresRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {

	query :=
		`INSERT INTO devices (id, serial_number, sim_number, device_model, api_key_hash, added_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	device.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		device.ID, device.SerialNumber, device.SimNumber, device.DeviceModel,
		device.APIKeyHash, device.AddedBy).
		Scan(&device.CreatedAt)

	if err != nil {
		if mapped := dbx.ConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return device, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		d, err := scanDevice(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		devices = append(devices, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return devices, nil
}

func (r *PostgresRepository) GetByAPIKeyHash(ctx context.Context, keyHash string) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE api_key_hash = $1`

	row := r.db.QueryRowContext(ctx, query, keyHash)
	d, err := scanDevice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

// UpdatePosition overwrites the position sub-record in a single statement,
// so all four fields apply together or not at all. Last writer wins: no
// timestamp ordering is enforced against out-of-order delivery.
func (r *PostgresRepository) UpdatePosition(ctx context.Context, deviceID string, pos models.Position) (*models.Device, error) {

	query :=
		`UPDATE devices
		 SET latitude = $2, longitude = $3, speed = $4, recorded_at = $5
		 WHERE id = $1
		 RETURNING ` + deviceColumns

	row := r.db.QueryRowContext(ctx, query,
		deviceID, pos.Latitude, pos.Longitude, pos.Speed, pos.RecordedAt)

	d, err := scanDevice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if mapped := dbx.ConstraintError(err); mapped != nil {
			// malformed uuid literal in deviceID
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

// scanDevice reads one device row, folding the nullable position columns
// into the Position sub-record (nil until the first ping).
func scanDevice(scan func(dest ...any) error) (*models.Device, error) {
	d := &models.Device{}
	var lat, lon, speed sql.NullFloat64
	var recordedAt sql.NullTime

	err := scan(&d.ID, &d.SerialNumber, &d.SimNumber, &d.DeviceModel, &d.AddedBy,
		&lat, &lon, &speed, &recordedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}

	if recordedAt.Valid {
		d.Position = &models.Position{
			Latitude:   lat.Float64,
			Longitude:  lon.Float64,
			Speed:      speed.Float64,
			RecordedAt: recordedAt.Time,
		}
	}

	return d, nil
}
