package devices

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var deviceCols = []string{"id", "serial_number", "sim_number", "device_model", "added_by",
	"latitude", "longitude", "speed", "recorded_at", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+devices`

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "SN-1", "SIM-1", "TK103", "hash-1", "u-1").
		WillReturnRows(rows)

	d := &models.Device{SerialNumber: "SN-1", SimNumber: "SIM-1", DeviceModel: "TK103",
		APIKeyHash: "hash-1", AddedBy: "u-1"}
	got, err := repo.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
}

func TestUpdatePosition_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+devices\s+SET\s+latitude\s*=\s*\$2,\s*longitude\s*=\s*\$3,\s*speed\s*=\s*\$4,\s*recorded_at\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`

	ts := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(deviceCols).
		AddRow("d-1", "SN-1", "SIM-1", "TK103", "u-1", -1.95088, 30.05885, 60.0, ts, time.Now())
	mock.ExpectQuery(q).
		WithArgs("d-1", -1.95088, 30.05885, 60.0, ts).
		WillReturnRows(rows)

	got, err := repo.UpdatePosition(context.Background(), "d-1",
		models.Position{Latitude: -1.95088, Longitude: 30.05885, Speed: 60, RecordedAt: ts})
	if err != nil {
		t.Fatalf("UpdatePosition error: %v", err)
	}
	if got.Position == nil {
		t.Fatalf("expected position on updated device")
	}
	if got.Position.Latitude != -1.95088 || got.Position.Speed != 60 {
		t.Fatalf("unexpected position: %+v", got.Position)
	}
}

func TestUpdatePosition_UnknownDevice(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+devices`

	mock.ExpectQuery(q).
		WithArgs("nope", 0.0, 0.0, 0.0, sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePosition(context.Background(), "nope", models.Position{RecordedAt: time.Now()})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestGetByAPIKeyHash_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+devices\s+WHERE\s+api_key_hash\s*=\s*\$1`

	mock.ExpectQuery(q).
		WithArgs("missing-hash").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByAPIKeyHash(context.Background(), "missing-hash")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestList_NoPositionYet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+devices\s+ORDER\s+BY\s+created_at`

	rows := sqlmock.NewRows(deviceCols).
		AddRow("d-1", "SN-1", "SIM-1", "TK103", "u-1", nil, nil, nil, nil, time.Now())
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 device, got %d", len(got))
	}
	if got[0].Position != nil {
		t.Fatalf("expected nil position before first ping, got %+v", got[0].Position)
	}
}
