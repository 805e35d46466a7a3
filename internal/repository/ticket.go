package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TicketRepository is the read side of the ledger. Tickets are written only
// by the purchase path; everything here is a projection for display.
type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const ticketDetailQuery = `SELECT t.id, t.event_id, t.user_id, t.transaction_id, t.price, t.status, t.purchased_at,
								  e.start_at, e.end_at, p.name, a.artist_name, v.name, v.city, v.state
						   FROM tickets t
						   JOIN events e ON e.id = t.event_id
						   JOIN performances p ON p.id = e.performance_id
						   JOIN artist_profiles a ON a.id = p.artist_id
						   JOIN venues v ON v.id = e.venue_id`

func (r *TicketRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.TicketDetail, error) {
	query := ticketDetailQuery + `
			 WHERE t.user_id = $1
			 ORDER BY t.purchased_at DESC
			 LIMIT $2 OFFSET $3`

	return r.queryDetails(ctx, query, userID, limit, offset)
}

func (r *TicketRepository) ListAll(ctx context.Context, limit, offset int) ([]*domain.TicketDetail, error) {
	query := ticketDetailQuery + `
			 ORDER BY t.purchased_at DESC
			 LIMIT $1 OFFSET $2`

	return r.queryDetails(ctx, query, limit, offset)
}

func (r *TicketRepository) queryDetails(ctx context.Context, query string, args ...any) ([]*domain.TicketDetail, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketDetail
	for rows.Next() {
		var d domain.TicketDetail
		if err = rows.Scan(
			&d.Ticket.ID, &d.Ticket.EventID, &d.Ticket.UserID, &d.Ticket.TransactionID,
			&d.Ticket.Price, &d.Ticket.Status, &d.Ticket.PurchasedAt,
			&d.EventStartAt, &d.EventEndAt, &d.PerformanceName, &d.ArtistName,
			&d.VenueName, &d.VenueCity, &d.VenueState,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
