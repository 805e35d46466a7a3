package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
)

// PurchaseRepository owns the multi-record purchase write. Nothing else in
// the codebase inserts transactions or tickets, or touches tickets_sold.
type PurchaseRepository struct {
	db *dbpg.DB
}

func NewPurchaseRepo(db *dbpg.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Purchase validates and commits one purchase as a single database
// transaction. The event row is locked with FOR UPDATE, so concurrent
// purchases against the same event serialize on the row and the re-read of
// tickets_sold is authoritative: the capacity invariant cannot be violated
// by racing requests. Any failure rolls the whole unit back.
func (r *PurchaseRepository) Purchase(ctx context.Context, in domain.PurchaseInput) (*domain.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Lock the event row and read everything needed to validate
	const eventQuery = `SELECT e.status, e.start_at, e.ticket_price, e.tickets_sold, v.capacity
						FROM events e
						JOIN venues v ON v.id = e.venue_id
						WHERE e.id = $1
						FOR UPDATE OF e`

	var (
		status      domain.EventStatus
		startAt     time.Time
		ticketPrice decimal.Decimal
		ticketsSold int
		capacity    int
	)
	if err = tx.QueryRowContext(ctx, eventQuery, in.EventID).Scan(
		&status, &startAt, &ticketPrice, &ticketsSold, &capacity,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	now := time.Now().UTC()
	if err = domain.ValidatePurchase(status, startAt, now, ticketsSold, capacity, in.Quantity); err != nil {
		return nil, err
	}

	record := &domain.Transaction{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		EventID:   in.EventID,
		Amount:    ticketPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Quantity:  in.Quantity,
		Status:    domain.TransactionStatusCompleted,
		CreatedAt: now,
	}

	const txQuery = `INSERT INTO transactions (id, user_id, event_id, amount, quantity, status, created_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, txQuery,
		record.ID, record.UserID, record.EventID,
		record.Amount, record.Quantity, record.Status, record.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if err = insertTicketsBulk(ctx, tx, record, ticketPrice, now); err != nil {
		return nil, err
	}

	const counterQuery = `UPDATE events
						  SET tickets_sold = tickets_sold + $2, updated_at = $3
						  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, counterQuery, in.EventID, in.Quantity, now); err != nil {
		return nil, fmt.Errorf("update sold counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	return record, nil
}

// insertTicketsBulk mints quantity ticket rows in one statement, each with
// the unit price snapshotted at purchase time.
func insertTicketsBulk(ctx context.Context, tx *sql.Tx, record *domain.Transaction, price decimal.Decimal, now time.Time) error {
	var (
		sb   strings.Builder
		args = make([]any, 0, record.Quantity*7)
	)
	sb.WriteString(`INSERT INTO tickets (id, event_id, user_id, transaction_id, price, status, purchased_at) VALUES `)
	for i := 0; i < record.Quantity; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args,
			uuid.New().String(), record.EventID, record.UserID, record.ID,
			price, domain.TicketStatusActive, now,
		)
	}

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert tickets: %w", err)
	}

	return nil
}
