package devices

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, device *models.Device) (*models.Device, error)
	List(ctx context.Context) ([]models.Device, error)
	GetByAPIKeyHash(ctx context.Context, keyHash string) (*models.Device, error)
	UpdatePosition(ctx context.Context, deviceID string, pos models.Position) (*models.Device, error)
}
