package ports

import (
	"context"

	"github.com/itspeasi/etds-project/internal/domain"
)

type PurchaseNotifier interface {
	NotifyPurchase(ctx context.Context, user *domain.User, tx *domain.Transaction)
}
