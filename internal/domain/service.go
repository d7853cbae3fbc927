package domain

import "time"

// Service represents a bookable salon service
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    int // minutes
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
}
