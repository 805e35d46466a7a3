package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, performance_id, venue_id, distributor_id, start_at, end_at,
					  status, ticket_price, tickets_sold, created_at, updated_at`

const eventDetailColumns = `e.id, e.performance_id, e.venue_id, e.distributor_id, e.start_at, e.end_at,
					  e.status, e.ticket_price, e.tickets_sold, e.created_at, e.updated_at,
					  p.name, a.artist_name, v.name, v.city, v.state, v.capacity`

const eventDetailJoins = `FROM events e
					  JOIN performances p ON p.id = e.performance_id
					  JOIN artist_profiles a ON a.id = p.artist_id
					  JOIN venues v ON v.id = e.venue_id`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, performance_id, venue_id, distributor_id, start_at, end_at, status, ticket_price, tickets_sold, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.PerformanceID, e.VenueID, e.DistributorID,
		e.StartAt, e.EndAt, e.Status, e.TicketPrice, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `SELECT ` + eventDetailColumns + `
			  ` + eventDetailJoins + `
			  WHERE e.id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	if err = scanEventDetails(row.Scan, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) List(ctx context.Context, distributorID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE ($1 = '' OR distributor_id::text = $1)
			  ORDER BY start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.EventDetails, error) {
	query := `SELECT ` + eventDetailColumns + `
			  ` + eventDetailJoins + `
			  WHERE e.status = $1 AND e.start_at >= $2
			  ORDER BY e.start_at ASC`

	return r.queryDetails(ctx, query, domain.EventStatusApproved, now)
}

func (r *EventRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.EventDetails, error) {
	query := `SELECT ` + eventDetailColumns + `
			  ` + eventDetailJoins + `
			  WHERE e.venue_id = $1 AND e.status = $2
			  ORDER BY e.start_at ASC`

	return r.queryDetails(ctx, query, venueID, domain.EventStatusApproved)
}

func (r *EventRepository) ListForArtist(ctx context.Context, artistID string) ([]*domain.EventDetails, error) {
	query := `SELECT ` + eventDetailColumns + `
			  ` + eventDetailJoins + `
			  WHERE p.artist_id = $1 AND e.status = ANY($2)
			  ORDER BY e.start_at ASC`

	visible := []domain.EventStatus{domain.EventStatusPending, domain.EventStatusApproved}
	return r.queryDetails(ctx, query, artistID, pq.Array(visible))
}

func (r *EventRepository) queryDetails(ctx context.Context, query string, args ...any) ([]*domain.EventDetails, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list event details: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventDetails
	for rows.Next() {
		var d domain.EventDetails
		if err = scanEventDetails(rows.Scan, &d); err != nil {
			return nil, fmt.Errorf("scan event details: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET performance_id=$2, venue_id=$3, start_at=$4, end_at=$5, ticket_price=$6, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.PerformanceID, e.VenueID, e.StartAt, e.EndAt, e.TicketPrice,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// UpdateStatus applies a guarded status transition in a single statement.
// When nothing changed it distinguishes a missing event from an event whose
// current status does not allow the move.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, to domain.EventStatus, from []domain.EventStatus) (*domain.Event, error) {
	query := `UPDATE events
			  SET status=$2, updated_at=now()
			  WHERE id=$1 AND status = ANY($3)
			  RETURNING ` + eventColumns

	var e domain.Event
	err := scanEvent(r.db.Master.QueryRowContext(ctx, query, id, to, pq.Array(from)).Scan, &e)
	if err == nil {
		return &e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	// Nothing matched: event missing, or transition illegal
	var current domain.EventStatus
	checkErr := r.db.Master.QueryRowContext(ctx, `SELECT status FROM events WHERE id=$1`, id).Scan(&current)
	if checkErr != nil {
		if errors.Is(checkErr, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("check event status: %w", checkErr)
	}

	return nil, fmt.Errorf("%w: cannot move %s event to %s", domain.ErrInvalidStateChange, current, to)
}

// Delete removes an event only while it is still pending.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id=$1 AND status=$2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EventStatusPending)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.EventStatus
		checkErr := r.db.Master.QueryRowContext(ctx, `SELECT status FROM events WHERE id=$1`, id).Scan(&current)
		if checkErr != nil {
			if errors.Is(checkErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event status: %w", checkErr)
		}
		return fmt.Errorf("%w: only pending events can be deleted, event is %s", domain.ErrInvalidStateChange, current)
	}

	return nil
}

// HasVenueOverlap reports whether any approved event at the venue intersects
// the half-open window [startAt, endAt). excludeID skips the event's own row
// on update.
func (r *EventRepository) HasVenueOverlap(ctx context.Context, venueID string, startAt, endAt time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM events
				  WHERE venue_id = $1
					AND status = $2
					AND start_at < $4 AND end_at > $3
					AND ($5 = '' OR id::text <> $5)
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, venueID, domain.EventStatusApproved, startAt, endAt, excludeID)
	if err != nil {
		return false, fmt.Errorf("venue overlap: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan venue overlap: %w", err)
	}

	return exists, nil
}

// HasArtistOverlap is the same window check across every performance owned
// by the artist, so an artist cannot be double-booked across venues.
func (r *EventRepository) HasArtistOverlap(ctx context.Context, artistID string, startAt, endAt time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM events e
				  JOIN performances p ON p.id = e.performance_id
				  WHERE p.artist_id = $1
					AND e.status = $2
					AND e.start_at < $4 AND e.end_at > $3
					AND ($5 = '' OR e.id::text <> $5)
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, artistID, domain.EventStatusApproved, startAt, endAt, excludeID)
	if err != nil {
		return false, fmt.Errorf("artist overlap: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan artist overlap: %w", err)
	}

	return exists, nil
}

func scanEvent(scan func(...any) error, e *domain.Event) error {
	return scan(
		&e.ID, &e.PerformanceID, &e.VenueID, &e.DistributorID,
		&e.StartAt, &e.EndAt, &e.Status, &e.TicketPrice, &e.TicketsSold,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func scanEventDetails(scan func(...any) error, d *domain.EventDetails) error {
	return scan(
		&d.Event.ID, &d.Event.PerformanceID, &d.Event.VenueID, &d.Event.DistributorID,
		&d.Event.StartAt, &d.Event.EndAt, &d.Event.Status, &d.Event.TicketPrice, &d.Event.TicketsSold,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.PerformanceName, &d.ArtistName, &d.VenueName, &d.VenueCity, &d.VenueState, &d.Capacity,
	)
}
