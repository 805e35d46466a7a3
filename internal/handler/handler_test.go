package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/handler/dto"
	hmocks "github.com/itspeasi/etds-project/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	venue       *hmocks.MockVenueSvc
	performance *hmocks.MockPerformanceSvc
	event       *hmocks.MockEventSvc
	purchase    *hmocks.MockPurchaseSvc
	ticket      *hmocks.MockTicketSvc
	user        *hmocks.MockUserSvc
	analytics   *hmocks.MockAnalyticsSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		venue:       hmocks.NewMockVenueSvc(t),
		performance: hmocks.NewMockPerformanceSvc(t),
		event:       hmocks.NewMockEventSvc(t),
		purchase:    hmocks.NewMockPurchaseSvc(t),
		ticket:      hmocks.NewMockTicketSvc(t),
		user:        hmocks.NewMockUserSvc(t),
		analytics:   hmocks.NewMockAnalyticsSvc(t),
	}

	h := NewHandler(m.venue, m.performance, m.event, m.purchase, m.ticket, m.user, m.analytics)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PUT("/venues/:id", h.UpdateVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)

		api.POST("/artists", h.CreateArtist)
		api.GET("/artists", h.ListArtists)
		api.GET("/artists/:id", h.GetArtist)

		api.POST("/performances", h.CreatePerformance)
		api.GET("/performances", h.ListPerformances)
		api.GET("/performances/by-artist/:id", h.ListPerformancesByArtist)
		api.PUT("/performances/:id", h.UpdatePerformance)
		api.DELETE("/performances/:id", h.DeletePerformance)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/upcoming", h.ListUpcomingEvents)
		api.GET("/events/by-venue/:id", h.ListEventsByVenue)
		api.GET("/events/for-artist/:id", h.ListEventsForArtist)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.PUT("/events/:id/status", h.ChangeEventStatus)
		api.PUT("/events/:id/cancel", h.CancelEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.POST("/tickets/purchase", h.PurchaseTickets)
		api.GET("/tickets", h.ListTickets)
		api.GET("/users/:id/tickets", h.GetUserTickets)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		api.GET("/analytics/top-artists", h.TopArtists)
	}

	return m, r
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	m, r := setupRouter(t)

	venue := &domain.Venue{
		ID:       uuid.New().String(),
		Name:     "The Fillmore",
		Address:  "1805 Geary Blvd",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94115",
		Capacity: 1150,
	}

	m.venue.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	body, _ := json.Marshal(dto.CreateVenueRequest{
		Name:     "The Fillmore",
		Address:  "1805 Geary Blvd",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94115",
		Capacity: 1150,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The Fillmore", resp.Name)
	assert.Equal(t, 1150, resp.Capacity)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	venueID := uuid.New().String()
	m.venue.EXPECT().GetByID(mock.Anything, venueID).Return(nil, domain.ErrVenueNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/"+venueID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	event := &domain.Event{
		ID:            uuid.New().String(),
		PerformanceID: uuid.New().String(),
		VenueID:       uuid.New().String(),
		DistributorID: uuid.New().String(),
		StartAt:       start,
		EndAt:         start.Add(3 * time.Hour),
		Status:        domain.EventStatusPending,
		TicketPrice:   decimal.RequireFromString("49.99"),
	}

	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		PerformanceID: event.PerformanceID,
		VenueID:       event.VenueID,
		DistributorID: event.DistributorID,
		StartAt:       start.Format(time.RFC3339),
		EndAt:         start.Add(3 * time.Hour).Format(time.RFC3339),
		TicketPrice:   "49.99",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "49.99", resp.TicketPrice)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateEventRequest{
		PerformanceID: uuid.New().String(),
		VenueID:       uuid.New().String(),
		DistributorID: uuid.New().String(),
		StartAt:       "not-a-date",
		EndAt:         "also-not-a-date",
		TicketPrice:   "10.00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidPrice(t *testing.T) {
	_, r := setupRouter(t)

	start := time.Now().Add(48 * time.Hour)
	body, _ := json.Marshal(dto.CreateEventRequest{
		PerformanceID: uuid.New().String(),
		VenueID:       uuid.New().String(),
		DistributorID: uuid.New().String(),
		StartAt:       start.Format(time.RFC3339),
		EndAt:         start.Add(time.Hour).Format(time.RFC3339),
		TicketPrice:   "not-a-price",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_VenueConflict(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Now().Add(48 * time.Hour)

	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrVenueConflict)

	body, _ := json.Marshal(dto.CreateEventRequest{
		PerformanceID: uuid.New().String(),
		VenueID:       uuid.New().String(),
		DistributorID: uuid.New().String(),
		StartAt:       start.Format(time.RFC3339),
		EndAt:         start.Add(time.Hour).Format(time.RFC3339),
		TicketPrice:   "25.00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{
			ID:          eventID,
			Status:      domain.EventStatusApproved,
			TicketPrice: decimal.RequireFromString("30.00"),
			TicketsSold: 120,
		},
		PerformanceName: "World Tour 2026",
		ArtistName:      "The Headliners",
		VenueName:       "The Fillmore",
		Capacity:        1150,
	}

	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1030, resp.TicketsRemaining)
	assert.Equal(t, "The Headliners", resp.ArtistName)
}

func TestHandler_ChangeEventStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	approved := &domain.Event{ID: eventID, Status: domain.EventStatusApproved}

	m.event.EXPECT().ChangeStatus(mock.Anything, eventID, domain.EventStatusApproved).Return(approved, nil)

	body := []byte(`{"status":"approved"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ChangeEventStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()
	body := []byte(`{"status":"archived"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeEventStatus_IllegalTransition(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().ChangeStatus(mock.Anything, eventID, domain.EventStatusRejected).Return(nil, domain.ErrInvalidStateChange)

	body := []byte(`{"status":"rejected"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	canceled := &domain.Event{ID: eventID, Status: domain.EventStatusCanceled}

	m.event.EXPECT().Cancel(mock.Anything, eventID).Return(canceled, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListUpcomingEvents(t *testing.T) {
	m, r := setupRouter(t)

	details := []*domain.EventDetails{
		{Event: domain.Event{ID: uuid.New().String(), Status: domain.EventStatusApproved}, VenueName: "The Fillmore"},
	}
	m.event.EXPECT().ListUpcoming(mock.Anything).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/upcoming", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Purchases ---

func TestHandler_PurchaseTickets_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	record := &domain.Transaction{
		ID:       uuid.New().String(),
		UserID:   userID,
		EventID:  eventID,
		Amount:   decimal.RequireFromString("99.98"),
		Quantity: 2,
		Status:   domain.TransactionStatusCompleted,
	}

	m.purchase.EXPECT().
		Purchase(mock.Anything, domain.PurchaseInput{EventID: eventID, UserID: userID, Quantity: 2}).
		Return(record, nil)

	body, _ := json.Marshal(dto.PurchaseRequest{EventID: eventID, UserID: userID, Quantity: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "99.98", resp.Amount)
	assert.Equal(t, 2, resp.Quantity)
}

func TestHandler_PurchaseTickets_BadQuantity(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"event_id": uuid.New().String(),
		"user_id":  uuid.New().String(),
		"quantity": 0,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PurchaseTickets_Rejections(t *testing.T) {
	rejections := []error{
		domain.ErrEventNotOnSale,
		domain.ErrSalesClosed,
		domain.ErrSoldOut,
		domain.ErrCapacityExceeded,
	}

	for _, svcErr := range rejections {
		t.Run(svcErr.Error(), func(t *testing.T) {
			m, r := setupRouter(t)

			m.purchase.EXPECT().Purchase(mock.Anything, mock.Anything).Return(nil, svcErr)

			body, _ := json.Marshal(dto.PurchaseRequest{
				EventID:  uuid.New().String(),
				UserID:   uuid.New().String(),
				Quantity: 1,
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

// --- Tickets ---

func TestHandler_GetUserTickets_PassesPagination(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.ticket.EXPECT().ListByUser(mock.Anything, userID, 2, 10).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/tickets?page=2&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserTickets_UserNotFound(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.ticket.EXPECT().ListByUser(mock.Anything, userID, 0, 0).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/tickets", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListTickets(t *testing.T) {
	m, r := setupRouter(t)

	tickets := []*domain.TicketDetail{
		{
			Ticket: domain.Ticket{
				ID:     uuid.New().String(),
				Price:  decimal.RequireFromString("25.00"),
				Status: domain.TicketStatusActive,
			},
			VenueName: "The Fillmore",
		},
	}
	m.ticket.EXPECT().ListAll(mock.Anything, 0, 0).Return(tickets, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "25.00", resp[0].Price)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice"}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Analytics ---

func TestHandler_TopArtists(t *testing.T) {
	m, r := setupRouter(t)

	sales := []*domain.ArtistSales{
		{
			ArtistID:    uuid.New().String(),
			ArtistName:  "The Headliners",
			GrossSales:  decimal.RequireFromString("12500.00"),
			TicketsSold: 250,
			FavoriteVenue: domain.VenueRef{
				Name: "The Fillmore", City: "San Francisco", State: "CA",
			},
		},
	}
	m.analytics.EXPECT().TopArtists(mock.Anything, false).Return(sales, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-artists", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ArtistSalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "12500.00", resp[0].GrossSales)
	assert.Equal(t, "The Fillmore, San Francisco, CA", resp[0].FavoriteVenue)
}

func TestHandler_TopArtists_ForceRefresh(t *testing.T) {
	m, r := setupRouter(t)

	m.analytics.EXPECT().TopArtists(mock.Anything, true).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-artists?refresh=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
