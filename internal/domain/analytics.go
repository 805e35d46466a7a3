package domain

import "github.com/shopspring/decimal"

// ArtistSales is one row of the top-artists report: lifetime gross across
// all of the artist's events plus the venue where they moved the most
// tickets.
type ArtistSales struct {
	ArtistID      string          `json:"artist_id"`
	ArtistName    string          `json:"artist_name"`
	ImageURL      string          `json:"image_url"`
	GrossSales    decimal.Decimal `json:"gross_sales"`
	TicketsSold   int             `json:"tickets_sold"`
	FavoriteVenue VenueRef        `json:"favorite_venue"`
}

type VenueRef struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}
