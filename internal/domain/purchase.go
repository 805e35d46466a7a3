package domain

import (
	"fmt"
	"time"
)

// ValidatePurchase decides whether quantity tickets may be sold against an
// event in the given state. Checks run in order: the event must be approved,
// sales close the instant the event starts, and the sold count plus the
// request must fit the venue. Callers pass the sold count read under the
// event row lock, so the decision here is authoritative.
func ValidatePurchase(status EventStatus, startAt, now time.Time, sold, capacity, quantity int) error {
	if status != EventStatusApproved {
		return ErrEventNotOnSale
	}
	if !now.Before(startAt) {
		return ErrSalesClosed
	}
	if sold+quantity > capacity {
		remaining := capacity - sold
		if remaining <= 0 {
			return ErrSoldOut
		}
		return fmt.Errorf("%w: only %d tickets remaining", ErrCapacityExceeded, remaining)
	}

	return nil
}
