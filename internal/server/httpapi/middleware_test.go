package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rwandev/busfleet/internal/server/auth"
)

func TestProtectedRoute_MissingToken(t *testing.T) {
	s, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/schools", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Access denied" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestProtectedRoute_MissingToken_NeverHitsStore(t *testing.T) {
	s, mock := newTestServer(t)

	// no expectations registered: any store access would fail the test
	req := jsonRequest(t, http.MethodPost, "/api/schools", map[string]string{
		"name":         "Green Hills",
		"address":      "KG 200 St",
		"contactEmail": "office@greenhills.rw",
	})
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store touched without credentials: %v", err)
	}
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	s, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/schools", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	s, _ := newTestServer(t)

	token, err := auth.GenerateToken("u-1", []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	req := jsonRequest(t, http.MethodGet, "/api/schools", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Token expired" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestProtectedRoute_WrongSecret(t *testing.T) {
	s, _ := newTestServer(t)

	token, err := auth.GenerateToken("u-1", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	req := jsonRequest(t, http.MethodGet, "/api/schools", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestProtectedRoute_ValidToken(t *testing.T) {
	s, mock := newTestServer(t)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(3))
	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+schools`).WillReturnRows(rows)

	req := jsonRequest(t, http.MethodGet, "/api/schools/count", nil)
	req.Header.Set("Authorization", bearerToken(t, "u-1"))
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["count"] != float64(3) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestIngestion_MissingKey(t *testing.T) {
	s, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/gps-data",
		map[string]any{"deviceId": "d-1", "latitude": 0.0, "longitude": 0.0, "speed": 0.0})
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestIngestion_UnknownKey(t *testing.T) {
	s, mock := newTestServer(t)

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+devices\s+WHERE\s+api_key_hash`).
		WillReturnRows(sqlmock.NewRows(deviceCols))

	req := jsonRequest(t, http.MethodPost, "/api/gps-data",
		map[string]any{"deviceId": "d-1", "latitude": 0.0, "longitude": 0.0, "speed": 0.0})
	req.Header.Set(headerAPIKey, "bogus-key")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}
