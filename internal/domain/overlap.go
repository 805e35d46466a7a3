package domain

import "time"

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. Touching intervals (e1 == s2) do not overlap, so back-to-back
// bookings at the same venue are allowed.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
