package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/migrations"
	"github.com/rwandev/busfleet/internal/server/repositories/buses"
	"github.com/rwandev/busfleet/internal/server/repositories/children"
	"github.com/rwandev/busfleet/internal/server/repositories/destinations"
	"github.com/rwandev/busfleet/internal/server/repositories/devices"
	"github.com/rwandev/busfleet/internal/server/repositories/drivers"
	"github.com/rwandev/busfleet/internal/server/repositories/schools"
	"github.com/rwandev/busfleet/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Schools(db dbx.DBTX) schools.Repository {
	return schools.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Destinations(db dbx.DBTX) destinations.Repository {
	return destinations.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Buses(db dbx.DBTX) buses.Repository {
	return buses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Children(db dbx.DBTX) children.Repository {
	return children.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Drivers(db dbx.DBTX) drivers.Repository {
	return drivers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Devices(db dbx.DBTX) devices.Repository {
	return devices.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	return gooseUpContext(ctx, db, ".")
}
