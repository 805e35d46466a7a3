package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
	EventStatusCanceled EventStatus = "canceled"
)

// statusTransitions is the guarded state machine for events. The original
// approval flow let a caller move an event to any status; here every
// transition is explicit. A rejected event may be re-approved (reversal of
// a mistaken rejection), cancellation is terminal.
var statusTransitions = map[EventStatus][]EventStatus{
	EventStatusPending:  {EventStatusApproved, EventStatusRejected},
	EventStatusRejected: {EventStatusApproved},
	EventStatusApproved: {EventStatusCanceled},
}

// CanTransition reports whether an event in status from may move to to.
func CanTransition(from, to EventStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionSources returns every status from which to is reachable.
// Repositories use it to guard status updates in a single statement.
func TransitionSources(to EventStatus) []EventStatus {
	var res []EventStatus
	for from, targets := range statusTransitions {
		for _, t := range targets {
			if t == to {
				res = append(res, from)
			}
		}
	}
	return res
}

type Event struct {
	ID            string          `json:"id"`
	PerformanceID string          `json:"performance_id"`
	VenueID       string          `json:"venue_id"`
	DistributorID string          `json:"distributor_id"`
	StartAt       time.Time       `json:"start_at"`
	EndAt         time.Time       `json:"end_at"`
	Status        EventStatus     `json:"status"`
	TicketPrice   decimal.Decimal `json:"ticket_price"`
	TicketsSold   int             `json:"tickets_sold"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EventDetails is an event joined with the display data a catalog listing
// needs: performance/artist names and the venue with its capacity.
type EventDetails struct {
	Event           Event  `json:"event"`
	PerformanceName string `json:"performance_name"`
	ArtistName      string `json:"artist_name"`
	VenueName       string `json:"venue_name"`
	VenueCity       string `json:"venue_city"`
	VenueState      string `json:"venue_state"`
	Capacity        int    `json:"capacity"`
}

// Remaining is the number of tickets still available at the venue.
func (d *EventDetails) Remaining() int {
	return d.Capacity - d.Event.TicketsSold
}

type CreateEventInput struct {
	PerformanceID string
	VenueID       string
	DistributorID string
	StartAt       time.Time
	EndAt         time.Time
	TicketPrice   decimal.Decimal
}

type UpdateEventInput struct {
	PerformanceID string
	VenueID       string
	StartAt       time.Time
	EndAt         time.Time
	TicketPrice   decimal.Decimal
}
