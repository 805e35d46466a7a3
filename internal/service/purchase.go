package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/monitoring"
	"github.com/itspeasi/etds-project/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PurchaseService struct {
	purchaseRepo ports.PurchaseRepo
	userRepo     ports.UserRepo
	notifier     ports.PurchaseNotifier
	logger       logger.Logger
}

func NewPurchaseService(
	purchaseRepo ports.PurchaseRepo,
	userRepo ports.UserRepo,
	notifier ports.PurchaseNotifier,
	logger logger.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *PurchaseService) Purchase(ctx context.Context, in domain.PurchaseInput) (*domain.Transaction, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	start := time.Now()
	record, err := s.purchaseRepo.Purchase(ctx, in)
	if err != nil {
		monitoring.TrackPurchase("rejected", in.Quantity, time.Since(start))
		return nil, err
	}
	monitoring.TrackPurchase("completed", in.Quantity, time.Since(start))

	s.logger.Info("purchase completed",
		logger.String("transaction_id", record.ID),
		logger.String("event_id", in.EventID),
		logger.String("user_id", in.UserID),
		logger.Int("quantity", in.Quantity),
		logger.String("amount", record.Amount.String()),
	)

	go s.notifier.NotifyPurchase(context.WithoutCancel(ctx), user, record)

	return record, nil
}
