package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from EventStatus
		to   EventStatus
		want bool
	}{
		{"pending to approved", EventStatusPending, EventStatusApproved, true},
		{"pending to rejected", EventStatusPending, EventStatusRejected, true},
		{"pending to canceled", EventStatusPending, EventStatusCanceled, false},
		{"rejected to approved", EventStatusRejected, EventStatusApproved, true},
		{"rejected to canceled", EventStatusRejected, EventStatusCanceled, false},
		{"approved to canceled", EventStatusApproved, EventStatusCanceled, true},
		{"approved to rejected", EventStatusApproved, EventStatusRejected, false},
		{"approved to pending", EventStatusApproved, EventStatusPending, false},
		{"canceled is terminal", EventStatusCanceled, EventStatusApproved, false},
		{"no self transition", EventStatusPending, EventStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransitionSources(t *testing.T) {
	assert.ElementsMatch(t,
		[]EventStatus{EventStatusPending, EventStatusRejected},
		TransitionSources(EventStatusApproved),
	)
	assert.ElementsMatch(t,
		[]EventStatus{EventStatusPending},
		TransitionSources(EventStatusRejected),
	)
	assert.ElementsMatch(t,
		[]EventStatus{EventStatusApproved},
		TransitionSources(EventStatusCanceled),
	)
	assert.Empty(t, TransitionSources(EventStatusPending))
}

func TestEventDetails_Remaining(t *testing.T) {
	d := &EventDetails{
		Event:    Event{TicketsSold: 180},
		Capacity: 200,
	}
	assert.Equal(t, 20, d.Remaining())

	d.Event.TicketsSold = 200
	assert.Equal(t, 0, d.Remaining())
}
