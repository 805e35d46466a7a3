package ports

import (
	"context"

	"github.com/itspeasi/etds-project/internal/domain"
)

// PurchaseRepo is the only writer of transactions and tickets and the only
// mutator of an event's sold counter.
type PurchaseRepo interface {
	// Purchase performs the whole purchase as one database transaction:
	// lock the event row, re-validate state/schedule/capacity, insert the
	// transaction and its tickets, bump tickets_sold. All or nothing.
	Purchase(ctx context.Context, in domain.PurchaseInput) (*domain.Transaction, error)
}
