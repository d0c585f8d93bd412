package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/models"
	busesrepo "github.com/rwandev/busfleet/internal/server/repositories/buses"
	childrenrepo "github.com/rwandev/busfleet/internal/server/repositories/children"
	destinationsrepo "github.com/rwandev/busfleet/internal/server/repositories/destinations"
	devicesrepo "github.com/rwandev/busfleet/internal/server/repositories/devices"
	driversrepo "github.com/rwandev/busfleet/internal/server/repositories/drivers"
	schoolsrepo "github.com/rwandev/busfleet/internal/server/repositories/schools"
	usersrepo "github.com/rwandev/busfleet/internal/server/repositories/users"
)

// --- shared test helpers and repository fakes ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeSchoolsRepo struct {
	createOut *models.School
	createErr error
	listOut   []models.School
	listErr   error
	countOut  int64
	countErr  error
}

func (f *fakeSchoolsRepo) Create(ctx context.Context, s *models.School) (*models.School, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeSchoolsRepo) List(ctx context.Context) ([]models.School, error) {
	return f.listOut, f.listErr
}
func (f *fakeSchoolsRepo) Count(ctx context.Context) (int64, error) { return f.countOut, f.countErr }

type fakeDestinationsRepo struct {
	createOut *models.Destination
	createErr error
	listOut   []models.Destination
	listErr   error
}

func (f *fakeDestinationsRepo) Create(ctx context.Context, d *models.Destination) (*models.Destination, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeDestinationsRepo) List(ctx context.Context) ([]models.Destination, error) {
	return f.listOut, f.listErr
}

type fakeBusesRepo struct {
	createOut *models.Bus
	createErr error
	listOut   []models.Bus
	listErr   error
	countOut  int64
	countErr  error
	existsOut bool
	existsErr error
}

func (f *fakeBusesRepo) Create(ctx context.Context, b *models.Bus) (*models.Bus, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeBusesRepo) List(ctx context.Context) ([]models.Bus, error) { return f.listOut, f.listErr }
func (f *fakeBusesRepo) Count(ctx context.Context) (int64, error)      { return f.countOut, f.countErr }
func (f *fakeBusesRepo) Exists(ctx context.Context, busID string) (bool, error) {
	return f.existsOut, f.existsErr
}

type fakeChildrenRepo struct {
	createOut *models.Child
	createErr error
	countOut  int64
	countErr  error
}

func (f *fakeChildrenRepo) Create(ctx context.Context, c *models.Child) (*models.Child, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeChildrenRepo) Count(ctx context.Context) (int64, error) { return f.countOut, f.countErr }

type fakeDriversRepo struct {
	createOut *models.Driver
	createErr error
	listOut   []models.Driver
	listErr   error
}

func (f *fakeDriversRepo) Create(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeDriversRepo) List(ctx context.Context) ([]models.Driver, error) {
	return f.listOut, f.listErr
}

type fakeDevicesRepo struct {
	createIn  *models.Device
	createOut *models.Device
	createErr error

	listOut []models.Device
	listErr error

	getByHashIn  string
	getByHashOut *models.Device
	getByHashErr error

	updateIn  models.Position
	updateOut *models.Device
	updateErr error
}

func (f *fakeDevicesRepo) Create(ctx context.Context, d *models.Device) (*models.Device, error) {
	f.createIn = d
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeDevicesRepo) List(ctx context.Context) ([]models.Device, error) {
	return f.listOut, f.listErr
}
func (f *fakeDevicesRepo) GetByAPIKeyHash(ctx context.Context, keyHash string) (*models.Device, error) {
	f.getByHashIn = keyHash
	if f.getByHashErr != nil {
		return nil, f.getByHashErr
	}
	return f.getByHashOut, nil
}
func (f *fakeDevicesRepo) UpdatePosition(ctx context.Context, deviceID string, pos models.Position) (*models.Device, error) {
	f.updateIn = pos
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	sc *fakeSchoolsRepo
	de *fakeDestinationsRepo
	b  *fakeBusesRepo
	ch *fakeChildrenRepo
	dr *fakeDriversRepo
	dv *fakeDevicesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Schools(db dbx.DBTX) schoolsrepo.Repository   { return m.sc }
func (m *fakeRepoManager) Destinations(db dbx.DBTX) destinationsrepo.Repository {
	return m.de
}
func (m *fakeRepoManager) Buses(db dbx.DBTX) busesrepo.Repository       { return m.b }
func (m *fakeRepoManager) Children(db dbx.DBTX) childrenrepo.Repository { return m.ch }
func (m *fakeRepoManager) Drivers(db dbx.DBTX) driversrepo.Repository   { return m.dr }
func (m *fakeRepoManager) Devices(db dbx.DBTX) devicesrepo.Repository   { return m.dv }
