package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/server/auth"
	"github.com/rwandev/busfleet/internal/server/models"
	"github.com/rwandev/busfleet/internal/server/repositories/repomanager"
)

// DeviceService manages GPS tracking units and their position ingestion.
// Each device carries an API key issued once at registration; only the
// hash is stored, so the key cannot be recovered later.
type DeviceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDeviceService(db *sql.DB, m repomanager.RepositoryManager) *DeviceService {
	return &DeviceService{db: db, repomanager: m}
}

// Register creates a device and returns it together with the plaintext
// ingestion key. The key is shown exactly once.
func (s *DeviceService) Register(ctx context.Context, device *models.Device) (*models.Device, string, error) {
	const op = "register device"

	key, keyHash, err := auth.NewAPIKey()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, common.ErrInternal)
	}
	device.APIKeyHash = keyHash

	created, err := s.repomanager.Devices(s.db).Create(ctx, device)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return created, key, nil
}

func (s *DeviceService) List(ctx context.Context) ([]models.Device, error) {
	const op = "list devices"
	list, err := s.repomanager.Devices(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// Authenticate resolves an ingestion key to the device it belongs to.
// An unknown key yields ErrInvalidToken so callers cannot probe for keys.
func (s *DeviceService) Authenticate(ctx context.Context, key string) (*models.Device, error) {
	device, err := s.repomanager.Devices(s.db).GetByAPIKeyHash(ctx, auth.HashAPIKey(key))
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	return device, nil
}

// RecordPosition overwrites the device's last known fix in one statement.
// Later writes win unconditionally; no position history is kept.
func (s *DeviceService) RecordPosition(ctx context.Context, deviceID string, pos models.Position) (*models.Device, error) {
	const op = "record position"

	if err := validatePosition(pos); err != nil {
		return nil, err
	}

	updated, err := s.repomanager.Devices(s.db).UpdatePosition(ctx, deviceID, pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func validatePosition(pos models.Position) error {
	if pos.Latitude < -90 || pos.Latitude > 90 {
		return fmt.Errorf("%w: latitude out of range", common.ErrValidation)
	}
	if pos.Longitude < -180 || pos.Longitude > 180 {
		return fmt.Errorf("%w: longitude out of range", common.ErrValidation)
	}
	if pos.Speed < 0 {
		return fmt.Errorf("%w: negative speed", common.ErrValidation)
	}
	if pos.RecordedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", common.ErrValidation)
	}
	return nil
}
