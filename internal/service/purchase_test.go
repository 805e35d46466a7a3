package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	purchaseRepo := mocks.NewMockPurchaseRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockPurchaseNotifier(t)
	log := newTestLogger(t)

	svc := NewPurchaseService(purchaseRepo, userRepo, notifier, log)

	user := &domain.User{ID: "u1", Username: "alice"}
	record := &domain.Transaction{
		ID:       "tx1",
		UserID:   "u1",
		EventID:  "e1",
		Quantity: 3,
		Amount:   decimal.RequireFromString("150.00"),
		Status:   domain.TransactionStatusCompleted,
	}
	in := domain.PurchaseInput{EventID: "e1", UserID: "u1", Quantity: 3}

	notified := make(chan struct{})

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	purchaseRepo.EXPECT().Purchase(mock.Anything, in).Return(record, nil)
	notifier.EXPECT().NotifyPurchase(mock.Anything, user, record).
		Run(func(ctx context.Context, user *domain.User, tx *domain.Transaction) {
			close(notified)
		}).
		Return()

	got, err := svc.Purchase(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "tx1", got.ID)
	assert.Equal(t, 3, got.Quantity)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("purchase notification was not sent")
	}
}

func TestPurchaseService_Purchase_NonPositiveQuantity(t *testing.T) {
	purchaseRepo := mocks.NewMockPurchaseRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockPurchaseNotifier(t)
	log := newTestLogger(t)

	svc := NewPurchaseService(purchaseRepo, userRepo, notifier, log)

	for _, q := range []int{0, -1} {
		_, err := svc.Purchase(context.Background(), domain.PurchaseInput{EventID: "e1", UserID: "u1", Quantity: q})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestPurchaseService_Purchase_UserNotFound(t *testing.T) {
	purchaseRepo := mocks.NewMockPurchaseRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockPurchaseNotifier(t)
	log := newTestLogger(t)

	svc := NewPurchaseService(purchaseRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Purchase(context.Background(), domain.PurchaseInput{EventID: "e1", UserID: "missing", Quantity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPurchaseService_Purchase_RepoRejections(t *testing.T) {
	rejections := []error{
		domain.ErrEventNotFound,
		domain.ErrEventNotOnSale,
		domain.ErrSalesClosed,
		domain.ErrSoldOut,
		domain.ErrCapacityExceeded,
	}

	for _, want := range rejections {
		t.Run(want.Error(), func(t *testing.T) {
			purchaseRepo := mocks.NewMockPurchaseRepo(t)
			userRepo := mocks.NewMockUserRepo(t)
			notifier := mocks.NewMockPurchaseNotifier(t)
			log := newTestLogger(t)

			svc := NewPurchaseService(purchaseRepo, userRepo, notifier, log)

			in := domain.PurchaseInput{EventID: "e1", UserID: "u1", Quantity: 2}

			userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
			purchaseRepo.EXPECT().Purchase(mock.Anything, in).Return(nil, want)

			_, err := svc.Purchase(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestPurchaseService_Purchase_RepoError(t *testing.T) {
	purchaseRepo := mocks.NewMockPurchaseRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockPurchaseNotifier(t)
	log := newTestLogger(t)

	svc := NewPurchaseService(purchaseRepo, userRepo, notifier, log)

	in := domain.PurchaseInput{EventID: "e1", UserID: "u1", Quantity: 1}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	purchaseRepo.EXPECT().Purchase(mock.Anything, in).Return(nil, errors.New("db error"))

	_, err := svc.Purchase(context.Background(), in)

	require.Error(t, err)
}
