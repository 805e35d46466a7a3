package service

import (
	"context"
	"testing"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceMocks struct {
	repo            *mocks.MockEventRepo
	venueRepo       *mocks.MockVenueRepo
	performanceRepo *mocks.MockPerformanceRepo
	userRepo        *mocks.MockUserRepo
	conflicts       *mocks.MockConflictChecker
}

func newEventService(t *testing.T) (*EventService, eventServiceMocks) {
	m := eventServiceMocks{
		repo:            mocks.NewMockEventRepo(t),
		venueRepo:       mocks.NewMockVenueRepo(t),
		performanceRepo: mocks.NewMockPerformanceRepo(t),
		userRepo:        mocks.NewMockUserRepo(t),
		conflicts:       mocks.NewMockConflictChecker(t),
	}
	svc := NewEventService(m.repo, m.venueRepo, m.performanceRepo, m.userRepo, m.conflicts)
	return svc, m
}

func validCreateInput() domain.CreateEventInput {
	start := time.Now().Add(48 * time.Hour)
	return domain.CreateEventInput{
		PerformanceID: "p1",
		VenueID:       "v1",
		DistributorID: "u1",
		StartAt:       start,
		EndAt:         start.Add(3 * time.Hour),
		TicketPrice:   decimal.RequireFromString("49.99"),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newEventService(t)
	in := validCreateInput()

	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", ArtistID: "a1", IsActive: true}, nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.conflicts.EXPECT().CheckVenue(mock.Anything, "v1", in.StartAt, in.EndAt, "").Return(nil)
	m.conflicts.EXPECT().CheckArtist(mock.Anything, "p1", in.StartAt, in.EndAt, "").Return(nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusPending, event.Status)
	assert.Equal(t, "p1", event.PerformanceID)
	assert.True(t, event.TicketPrice.Equal(in.TicketPrice))
}

func TestEventService_Create_InvalidWindow(t *testing.T) {
	svc, _ := newEventService(t)

	in := validCreateInput()
	in.EndAt = in.StartAt // empty window

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_StartInPast(t *testing.T) {
	svc, _ := newEventService(t)

	in := validCreateInput()
	in.StartAt = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_NegativePrice(t *testing.T) {
	svc, _ := newEventService(t)

	in := validCreateInput()
	in.TicketPrice = decimal.RequireFromString("-1")

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_InactivePerformance(t *testing.T) {
	svc, m := newEventService(t)
	in := validCreateInput()

	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", IsActive: false}, nil)

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_VenueConflict(t *testing.T) {
	svc, m := newEventService(t)
	in := validCreateInput()

	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", IsActive: true}, nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.conflicts.EXPECT().CheckVenue(mock.Anything, "v1", in.StartAt, in.EndAt, "").Return(domain.ErrVenueConflict)

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueConflict)
}

func TestEventService_Create_ArtistConflict(t *testing.T) {
	svc, m := newEventService(t)
	in := validCreateInput()

	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", IsActive: true}, nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.conflicts.EXPECT().CheckVenue(mock.Anything, "v1", in.StartAt, in.EndAt, "").Return(nil)
	m.conflicts.EXPECT().CheckArtist(mock.Anything, "p1", in.StartAt, in.EndAt, "").Return(domain.ErrArtistConflict)

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtistConflict)
}

func TestEventService_Create_VenueNotFound(t *testing.T) {
	svc, m := newEventService(t)
	in := validCreateInput()

	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", IsActive: true}, nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.Create(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestEventService_Update_ExcludesOwnSlot(t *testing.T) {
	svc, m := newEventService(t)

	start := time.Now().Add(72 * time.Hour)
	in := domain.UpdateEventInput{
		PerformanceID: "p1",
		VenueID:       "v1",
		StartAt:       start,
		EndAt:         start.Add(2 * time.Hour),
		TicketPrice:   decimal.RequireFromString("60.00"),
	}
	existing := &domain.Event{ID: "e1", PerformanceID: "p1", VenueID: "v1", Status: domain.EventStatusPending}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	m.performanceRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Performance{ID: "p1", IsActive: true}, nil)
	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	m.conflicts.EXPECT().CheckVenue(mock.Anything, "v1", in.StartAt, in.EndAt, "e1").Return(nil)
	m.conflicts.EXPECT().CheckArtist(mock.Anything, "p1", in.StartAt, in.EndAt, "e1").Return(nil)
	m.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), "e1", in)

	require.NoError(t, err)
	assert.Equal(t, in.StartAt, event.StartAt)
	assert.True(t, event.TicketPrice.Equal(in.TicketPrice))
}

func TestEventService_Update_EventNotFound(t *testing.T) {
	svc, m := newEventService(t)

	start := time.Now().Add(72 * time.Hour)
	in := domain.UpdateEventInput{
		PerformanceID: "p1",
		VenueID:       "v1",
		StartAt:       start,
		EndAt:         start.Add(2 * time.Hour),
	}

	m.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "missing", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ChangeStatus_Approve(t *testing.T) {
	svc, m := newEventService(t)

	approved := &domain.Event{ID: "e1", Status: domain.EventStatusApproved}
	m.repo.EXPECT().
		UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, mock.Anything).
		Run(func(ctx context.Context, id string, to domain.EventStatus, from []domain.EventStatus) {
			assert.ElementsMatch(t, []domain.EventStatus{domain.EventStatusPending, domain.EventStatusRejected}, from)
		}).
		Return(approved, nil)

	event, err := svc.ChangeStatus(context.Background(), "e1", domain.EventStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, event.Status)
}

func TestEventService_ChangeStatus_UnreachableStatus(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.ChangeStatus(context.Background(), "e1", domain.EventStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_ChangeStatus_IllegalTransition(t *testing.T) {
	svc, m := newEventService(t)

	m.repo.EXPECT().
		UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, mock.Anything).
		Return(nil, domain.ErrInvalidStateChange)

	_, err := svc.ChangeStatus(context.Background(), "e1", domain.EventStatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStateChange)
}

func TestEventService_Cancel(t *testing.T) {
	svc, m := newEventService(t)

	canceled := &domain.Event{ID: "e1", Status: domain.EventStatusCanceled}
	m.repo.EXPECT().
		UpdateStatus(mock.Anything, "e1", domain.EventStatusCanceled, []domain.EventStatus{domain.EventStatusApproved}).
		Return(canceled, nil)

	event, err := svc.Cancel(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCanceled, event.Status)
}

func TestEventService_ListByVenue_VenueNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.venueRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.ListByVenue(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestEventService_ListByVenue_Success(t *testing.T) {
	svc, m := newEventService(t)

	details := []*domain.EventDetails{
		{Event: domain.Event{ID: "e1"}, VenueName: "The Fillmore"},
	}

	m.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	m.repo.EXPECT().ListByVenue(mock.Anything, "v1").Return(details, nil)

	got, err := svc.ListByVenue(context.Background(), "v1")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
