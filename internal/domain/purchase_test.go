package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePurchase(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		status   EventStatus
		startAt  time.Time
		sold     int
		capacity int
		quantity int
		wantErr  error
	}{
		{"approved with room", EventStatusApproved, future, 0, 100, 5, nil},
		{"fills venue exactly", EventStatusApproved, future, 8, 10, 2, nil},
		{"exceeds remaining capacity", EventStatusApproved, future, 8, 10, 3, ErrCapacityExceeded},
		{"sold out", EventStatusApproved, future, 10, 10, 1, ErrSoldOut},
		{"oversold counter still reads sold out", EventStatusApproved, future, 11, 10, 1, ErrSoldOut},
		{"last ticket", EventStatusApproved, future, 9, 10, 1, nil},
		{"pending not on sale", EventStatusPending, future, 0, 100, 1, ErrEventNotOnSale},
		{"rejected not on sale", EventStatusRejected, future, 0, 100, 1, ErrEventNotOnSale},
		{"canceled not on sale", EventStatusCanceled, future, 0, 100, 1, ErrEventNotOnSale},
		{"sales close at start time", EventStatusApproved, now, 0, 100, 1, ErrSalesClosed},
		{"sales closed after start", EventStatusApproved, now.Add(-time.Minute), 0, 100, 1, ErrSalesClosed},
		{"open until the last instant", EventStatusApproved, now.Add(time.Second), 0, 100, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePurchase(tt.status, tt.startAt, now, tt.sold, tt.capacity, tt.quantity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePurchase_ReportsRemaining(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	err := ValidatePurchase(EventStatusApproved, future, time.Now(), 8, 10, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "only 2 tickets remaining")
}

func TestValidatePurchase_StatusCheckedBeforeCapacity(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	// A pending event that is also full must report not-on-sale, not sold-out.
	err := ValidatePurchase(EventStatusPending, future, time.Now(), 10, 10, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEventNotOnSale)
}
