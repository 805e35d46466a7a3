package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusActive   TicketStatus = "active"
	TicketStatusUsed     TicketStatus = "used"
	TicketStatusRefunded TicketStatus = "refunded"
)

// Ticket is one admission unit. A purchase of quantity N mints N tickets
// referencing the same transaction; price is the unit price frozen at
// purchase time even if the event is re-priced later.
type Ticket struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	Price         decimal.Decimal `json:"price"`
	Status        TicketStatus    `json:"status"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

// TicketDetail is a ticket joined with the display data a "my tickets"
// page needs.
type TicketDetail struct {
	Ticket          Ticket    `json:"ticket"`
	EventStartAt    time.Time `json:"event_start_at"`
	EventEndAt      time.Time `json:"event_end_at"`
	PerformanceName string    `json:"performance_name"`
	ArtistName      string    `json:"artist_name"`
	VenueName       string    `json:"venue_name"`
	VenueCity       string    `json:"venue_city"`
	VenueState      string    `json:"venue_state"`
}
