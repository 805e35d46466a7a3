package domain

import "time"

type ArtistProfile struct {
	ID         string    `json:"id"`
	ArtistName string    `json:"artist_name"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Performance is a touring production by one artist. Performances of the
// same artist may overlap in date range; double-booking is resolved per
// scheduled event, not here.
type Performance struct {
	ID        string    `json:"id"`
	ArtistID  string    `json:"artist_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PerformanceInput struct {
	ArtistID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsActive  *bool
}
