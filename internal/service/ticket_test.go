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

func TestTicketService_ListByUser_DefaultPagination(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewTicketService(ticketRepo, userRepo)

	tickets := []*domain.TicketDetail{{Ticket: domain.Ticket{ID: "t1"}}}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	ticketRepo.EXPECT().ListByUser(mock.Anything, "u1", 20, 0).Return(tickets, nil)

	got, err := svc.ListByUser(context.Background(), "u1", 0, 0)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTicketService_ListByUser_SecondPage(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewTicketService(ticketRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	ticketRepo.EXPECT().ListByUser(mock.Anything, "u1", 10, 20).Return(nil, nil)

	_, err := svc.ListByUser(context.Background(), "u1", 3, 10)

	require.NoError(t, err)
}

func TestTicketService_ListByUser_UserNotFound(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewTicketService(ticketRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByUser(context.Background(), "missing", 1, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTicketService_ListAll_ClampsLimit(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewTicketService(ticketRepo, userRepo)

	ticketRepo.EXPECT().ListAll(mock.Anything, 100, 0).Return(nil, nil)

	_, err := svc.ListAll(context.Background(), 1, 5000)

	require.NoError(t, err)
}

func TestTicketService_ListAll_Defaults(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewTicketService(ticketRepo, userRepo)

	ticketRepo.EXPECT().ListAll(mock.Anything, 50, 0).Return(nil, nil)

	_, err := svc.ListAll(context.Background(), -1, 0)

	require.NoError(t, err)
}
