package models

import "time"

// Position is a device's last known fix. It is overwritten as a whole on
// every ingestion event; no history is kept.
type Position struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      float64   `json:"speed"`
	RecordedAt time.Time `json:"timestamp"`
}

// Device is a GPS tracking unit installed on a bus. APIKeyHash is the
// lookup hash of its ingestion credential; the plaintext key is returned
// once at registration and never stored.
type Device struct {
	ID           string    `json:"id"`
	SerialNumber string    `json:"serialNumber"`
	SimNumber    string    `json:"simNumber"`
	DeviceModel  string    `json:"deviceModel"`
	AddedBy      string    `json:"addedBy"`
	APIKeyHash   string    `json:"-"`
	Position     *Position `json:"position,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
