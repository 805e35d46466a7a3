package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction is one completed purchase call. Write-once: the purchase
// engine is its only creator and nothing mutates it afterwards.
type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	EventID   string            `json:"event_id"`
	Amount    decimal.Decimal   `json:"amount"`
	Quantity  int               `json:"quantity"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type PurchaseInput struct {
	EventID  string
	UserID   string
	Quantity int
}
