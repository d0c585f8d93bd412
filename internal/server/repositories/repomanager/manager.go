// Package repomanager wires the per-entity repositories to a database
// handle. Factories take a dbx.DBTX so callers can hand in either the pool
// or a transaction from dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/rwandev/busfleet/internal/dbx"
	"github.com/rwandev/busfleet/internal/server/repositories/buses"
	"github.com/rwandev/busfleet/internal/server/repositories/children"
	"github.com/rwandev/busfleet/internal/server/repositories/destinations"
	"github.com/rwandev/busfleet/internal/server/repositories/devices"
	"github.com/rwandev/busfleet/internal/server/repositories/drivers"
	"github.com/rwandev/busfleet/internal/server/repositories/schools"
	"github.com/rwandev/busfleet/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Schools(db dbx.DBTX) schools.Repository
	Destinations(db dbx.DBTX) destinations.Repository
	Buses(db dbx.DBTX) buses.Repository
	Children(db dbx.DBTX) children.Repository
	Drivers(db dbx.DBTX) drivers.Repository
	Devices(db dbx.DBTX) devices.Repository
}
