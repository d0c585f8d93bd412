package schools

import (
	"context"

	"github.com/rwandev/busfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, school *models.School) (*models.School, error)
	List(ctx context.Context) ([]models.School, error)
	Count(ctx context.Context) (int64, error)
}
