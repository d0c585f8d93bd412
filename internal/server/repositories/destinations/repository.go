package destinations

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, destination *models.Destination) (*models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
}
