package models

import "time"

type Bus struct {
	ID            string    `json:"id"`
	PlateNumber   string    `json:"plateNumber"`
	GpsModel      string    `json:"gpsModel"`
	OwnerName     string    `json:"ownerName"`
	SchoolID      string    `json:"schoolId"`
	DestinationID string    `json:"destinationId"`
	CreatedAt     time.Time `json:"creationDate"`
}

type Child struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	ParentName    string    `json:"parentName"`
	ParentPhone   string    `json:"parentPhone"`
	SchoolID      string    `json:"schoolId"`
	DestinationID string    `json:"destinationId"`
	CreatedAt     time.Time `json:"creationDate"`
}

type Driver struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"licenseNumber"`
	BusID         *string   `json:"busId,omitempty"`
	CreatedAt     time.Time `json:"creationDate"`
}
