package service

import (
	"context"
	"testing"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVenueService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), domain.VenueInput{
		Name:     "The Fillmore",
		Address:  "1805 Geary Blvd",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94115",
		Capacity: 1150,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	assert.Equal(t, "The Fillmore", venue.Name)
	assert.Equal(t, 1150, venue.Capacity)
}

func TestVenueService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	_, err := svc.Create(context.Background(), domain.VenueInput{Capacity: 100})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Create_NonPositiveCapacity(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	_, err := svc.Create(context.Background(), domain.VenueInput{Name: "Hall", Capacity: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Update_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	existing := &domain.Venue{ID: "v1", Name: "Old Name", Capacity: 500}

	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Update(context.Background(), "v1", domain.VenueInput{Name: "New Name", Capacity: 800})

	require.NoError(t, err)
	assert.Equal(t, "New Name", venue.Name)
	assert.Equal(t, 800, venue.Capacity)
}

func TestVenueService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.VenueInput{Name: "X", Capacity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestVenueService_Delete(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo)

	repo.EXPECT().Delete(mock.Anything, "v1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "v1"))
}
