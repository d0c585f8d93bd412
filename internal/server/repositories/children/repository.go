package children

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, child *models.Child) (*models.Child, error)
	Count(ctx context.Context) (int64, error)
}
