package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical windows", at(0), at(2), at(0), at(2), true},
		{"partial overlap at end", at(0), at(2), at(1), at(3), true},
		{"partial overlap at start", at(1), at(3), at(0), at(2), true},
		{"first contains second", at(0), at(4), at(1), at(2), true},
		{"second contains first", at(1), at(2), at(0), at(4), true},
		{"back to back, first ends as second starts", at(0), at(2), at(2), at(4), false},
		{"back to back, second ends as first starts", at(2), at(4), at(0), at(2), false},
		{"fully disjoint before", at(0), at(1), at(2), at(3), false},
		{"fully disjoint after", at(2), at(3), at(0), at(1), false},
		{"one minute overlap", at(0), at(2).Add(time.Minute), at(2), at(4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}
