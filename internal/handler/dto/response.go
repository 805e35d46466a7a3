package dto

import (
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
)

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type ArtistResponse struct {
	ID         string `json:"id"`
	ArtistName string `json:"artist_name"`
	ImageURL   string `json:"image_url,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type PerformanceResponse struct {
	ID        string `json:"id"`
	ArtistID  string `json:"artist_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type EventResponse struct {
	ID            string `json:"id"`
	PerformanceID string `json:"performance_id"`
	VenueID       string `json:"venue_id"`
	DistributorID string `json:"distributor_id"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	Status        string `json:"status"`
	TicketPrice   string `json:"ticket_price"`
	TicketsSold   int    `json:"tickets_sold"`
	CreatedAt     string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event            EventResponse `json:"event"`
	PerformanceName  string        `json:"performance_name"`
	ArtistName       string        `json:"artist_name"`
	VenueName        string        `json:"venue_name"`
	VenueCity        string        `json:"venue_city"`
	VenueState       string        `json:"venue_state"`
	Capacity         int           `json:"capacity"`
	TicketsRemaining int           `json:"tickets_remaining"`
}

type TransactionResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	EventID   string `json:"event_id"`
	Amount    string `json:"amount"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type TicketResponse struct {
	ID              string `json:"id"`
	EventID         string `json:"event_id"`
	UserID          string `json:"user_id"`
	TransactionID   string `json:"transaction_id"`
	Price           string `json:"price"`
	Status          string `json:"status"`
	PurchasedAt     string `json:"purchased_at"`
	EventStartAt    string `json:"event_start_at"`
	EventEndAt      string `json:"event_end_at"`
	PerformanceName string `json:"performance_name"`
	ArtistName      string `json:"artist_name"`
	VenueName       string `json:"venue_name"`
	VenueCity       string `json:"venue_city"`
	VenueState      string `json:"venue_state"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ArtistSalesResponse struct {
	ArtistID      string `json:"artist_id"`
	ArtistName    string `json:"artist_name"`
	ImageURL      string `json:"image_url,omitempty"`
	GrossSales    string `json:"gross_sales"`
	TicketsSold   int    `json:"tickets_sold"`
	FavoriteVenue string `json:"favorite_venue"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		Zip:       v.Zip,
		Capacity:  v.Capacity,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToArtistResponse(a *domain.ArtistProfile) ArtistResponse {
	return ArtistResponse{
		ID:         a.ID,
		ArtistName: a.ArtistName,
		ImageURL:   a.ImageURL,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func ToPerformanceResponse(p *domain.Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:        p.ID,
		ArtistID:  p.ArtistID,
		Name:      p.Name,
		StartDate: p.StartDate.Format(time.RFC3339),
		EndDate:   p.EndDate.Format(time.RFC3339),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		PerformanceID: e.PerformanceID,
		VenueID:       e.VenueID,
		DistributorID: e.DistributorID,
		StartAt:       e.StartAt.Format(time.RFC3339),
		EndAt:         e.EndAt.Format(time.RFC3339),
		Status:        string(e.Status),
		TicketPrice:   e.TicketPrice.StringFixed(2),
		TicketsSold:   e.TicketsSold,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:            ToEventResponse(&d.Event),
		PerformanceName:  d.PerformanceName,
		ArtistName:       d.ArtistName,
		VenueName:        d.VenueName,
		VenueCity:        d.VenueCity,
		VenueState:       d.VenueState,
		Capacity:         d.Capacity,
		TicketsRemaining: d.Remaining(),
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		EventID:   t.EventID,
		Amount:    t.Amount.StringFixed(2),
		Quantity:  t.Quantity,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(d *domain.TicketDetail) TicketResponse {
	return TicketResponse{
		ID:              d.Ticket.ID,
		EventID:         d.Ticket.EventID,
		UserID:          d.Ticket.UserID,
		TransactionID:   d.Ticket.TransactionID,
		Price:           d.Ticket.Price.StringFixed(2),
		Status:          string(d.Ticket.Status),
		PurchasedAt:     d.Ticket.PurchasedAt.Format(time.RFC3339),
		EventStartAt:    d.EventStartAt.Format(time.RFC3339),
		EventEndAt:      d.EventEndAt.Format(time.RFC3339),
		PerformanceName: d.PerformanceName,
		ArtistName:      d.ArtistName,
		VenueName:       d.VenueName,
		VenueCity:       d.VenueCity,
		VenueState:      d.VenueState,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToArtistSalesResponse(s *domain.ArtistSales) ArtistSalesResponse {
	venue := s.FavoriteVenue.Name
	if s.FavoriteVenue.City != "" {
		venue += ", " + s.FavoriteVenue.City + ", " + s.FavoriteVenue.State
	}

	return ArtistSalesResponse{
		ArtistID:      s.ArtistID,
		ArtistName:    s.ArtistName,
		ImageURL:      s.ImageURL,
		GrossSales:    s.GrossSales.StringFixed(2),
		TicketsSold:   s.TicketsSold,
		FavoriteVenue: venue,
	}
}
