package service

import (
	"context"
	"fmt"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports"
)

const (
	defaultUserPageSize = 20
	defaultFullPageSize = 50
	maxPageSize         = 100
)

// TicketService is the read side of the ledger.
type TicketService struct {
	ticketRepo ports.TicketRepo
	userRepo   ports.UserRepo
}

func NewTicketService(ticketRepo ports.TicketRepo, userRepo ports.UserRepo) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
	}
}

func (s *TicketService) ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.TicketDetail, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	limit, offset := normalizePage(page, limit, defaultUserPageSize)
	return s.ticketRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *TicketService) ListAll(ctx context.Context, page, limit int) ([]*domain.TicketDetail, error) {
	limit, offset := normalizePage(page, limit, defaultFullPageSize)
	return s.ticketRepo.ListAll(ctx, limit, offset)
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return limit, (page - 1) * limit
}
