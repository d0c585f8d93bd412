package models

import "time"

type School struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"creationDate"`
}

type Destination struct {
	ID        string    `json:"id"`
	Name      string    `json:"destinationName"`
	CreatedAt time.Time `json:"creationDate"`
}
