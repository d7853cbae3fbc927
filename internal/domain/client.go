package domain

import "time"

// Client represents a salon client, identified uniquely by cedula
type Client struct {
	ID             string
	Name           string
	Phone          string
	Cedula         string
	Email          *string
	HealthAlerts   *string
	Preferences    *string
	FavoriteColors *string
	NailShape      *string
	Notes          *string
	CreatedAt      time.Time
}
