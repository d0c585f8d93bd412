package buses

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, bus *models.Bus) (*models.Bus, error)
	List(ctx context.Context) ([]models.Bus, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, busID string) (bool, error)
}
