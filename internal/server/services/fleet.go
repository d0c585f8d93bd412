package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/models"
	"github.com/rwandev/busfleet/internal/server/repositories/repomanager"
)

// FleetService covers the administrative records: schools, destinations,
// buses, children and drivers. Referential checks (school, destination) are
// left to the store's foreign keys; only driver creation needs a transaction
// because the optional bus assignment is verified and written together.
type FleetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFleetService(db *sql.DB, m repomanager.RepositoryManager) *FleetService {
	return &FleetService{db: db, repomanager: m}
}

func (s *FleetService) CreateSchool(ctx context.Context, school *models.School) (*models.School, error) {
	const op = "create school"
	created, err := s.repomanager.Schools(s.db).Create(ctx, school)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *FleetService) ListSchools(ctx context.Context) ([]models.School, error) {
	const op = "list schools"
	list, err := s.repomanager.Schools(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *FleetService) CountSchools(ctx context.Context) (int64, error) {
	const op = "count schools"
	n, err := s.repomanager.Schools(s.db).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *FleetService) CreateDestination(ctx context.Context, destination *models.Destination) (*models.Destination, error) {
	const op = "create destination"
	created, err := s.repomanager.Destinations(s.db).Create(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *FleetService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	const op = "list destinations"
	list, err := s.repomanager.Destinations(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *FleetService) CreateBus(ctx context.Context, bus *models.Bus) (*models.Bus, error) {
	const op = "create bus"
	created, err := s.repomanager.Buses(s.db).Create(ctx, bus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *FleetService) ListBuses(ctx context.Context) ([]models.Bus, error) {
	const op = "list buses"
	list, err := s.repomanager.Buses(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *FleetService) CountBuses(ctx context.Context) (int64, error) {
	const op = "count buses"
	n, err := s.repomanager.Buses(s.db).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *FleetService) CreateChild(ctx context.Context, child *models.Child) (*models.Child, error) {
	const op = "create child"
	created, err := s.repomanager.Children(s.db).Create(ctx, child)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *FleetService) CountChildren(ctx context.Context) (int64, error) {
	const op = "count children"
	n, err := s.repomanager.Children(s.db).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// CreateDriver creates a driver record. When a bus id is supplied, the bus
// is verified inside the same transaction as the insert so the assignment
// cannot race with a bus removal.
func (s *FleetService) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	const op = "create driver"

	var created *models.Driver
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if driver.BusID != nil {
			ok, err := s.repomanager.Buses(tx).Exists(ctx, *driver.BusID)
			if err != nil {
				return err
			}
			if !ok {
				return common.ErrInvalidReference
			}
		}
		var txErr error
		created, txErr = s.repomanager.Drivers(tx).Create(ctx, driver)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *FleetService) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	const op = "list drivers"
	list, err := s.repomanager.Drivers(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}
