package ports

import (
	"context"

	"github.com/itspeasi/etds-project/internal/domain"
)

type TicketRepo interface {
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.TicketDetail, error)
	ListAll(ctx context.Context, limit, offset int) ([]*domain.TicketDetail, error)
}
