package drivers

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
}
