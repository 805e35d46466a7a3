package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/itspeasi/etds-project/internal/handler/dto"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type VenueSvc interface {
	Create(ctx context.Context, input domain.VenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, id string, input domain.VenueInput) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
}

type PerformanceSvc interface {
	Create(ctx context.Context, input domain.PerformanceInput) (*domain.Performance, error)
	List(ctx context.Context) ([]*domain.Performance, error)
	ListByArtist(ctx context.Context, artistID string) ([]*domain.Performance, error)
	Update(ctx context.Context, id string, input domain.PerformanceInput) (*domain.Performance, error)
	Delete(ctx context.Context, id string) error
	CreateArtist(ctx context.Context, name, imageURL string) (*domain.ArtistProfile, error)
	GetArtist(ctx context.Context, id string) (*domain.ArtistProfile, error)
	ListArtists(ctx context.Context) ([]*domain.ArtistProfile, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	ChangeStatus(ctx context.Context, id string, to domain.EventStatus) (*domain.Event, error)
	Cancel(ctx context.Context, id string) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, distributorID string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.EventDetails, error)
	ListForArtist(ctx context.Context, artistID string) ([]*domain.EventDetails, error)
}

type PurchaseSvc interface {
	Purchase(ctx context.Context, in domain.PurchaseInput) (*domain.Transaction, error)
}

type TicketSvc interface {
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.TicketDetail, error)
	ListAll(ctx context.Context, page, limit int) ([]*domain.TicketDetail, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type AnalyticsSvc interface {
	TopArtists(ctx context.Context, force bool) ([]*domain.ArtistSales, error)
}

type Handler struct {
	venueService       VenueSvc
	performanceService PerformanceSvc
	eventService       EventSvc
	purchaseService    PurchaseSvc
	ticketService      TicketSvc
	userService        UserSvc
	analyticsService   AnalyticsSvc
}

func NewHandler(
	venueService VenueSvc,
	performanceService PerformanceSvc,
	eventService EventSvc,
	purchaseService PurchaseSvc,
	ticketService TicketSvc,
	userService UserSvc,
	analyticsService AnalyticsSvc,
) *Handler {
	return &Handler{
		venueService:       venueService,
		performanceService: performanceService,
		eventService:       eventService,
		purchaseService:    purchaseService,
		ticketService:      ticketService,
		userService:        userService,
		analyticsService:   analyticsService,
	}
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), domain.VenueInput{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid venue id")
	if !ok {
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid venue id")
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, domain.VenueInput{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid venue id")
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Artists

func (h *Handler) CreateArtist(c *ginext.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	artist, err := h.performanceService.CreateArtist(c.Request.Context(), req.ArtistName, req.ImageURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtistResponse(artist))
}

func (h *Handler) GetArtist(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid artist id")
	if !ok {
		return
	}

	artist, err := h.performanceService.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

func (h *Handler) ListArtists(c *ginext.Context) {
	artists, err := h.performanceService.ListArtists(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ArtistResponse, 0, len(artists))
	for _, a := range artists {
		resp = append(resp, dto.ToArtistResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Performances

func (h *Handler) CreatePerformance(c *ginext.Context) {
	input, ok := h.bindPerformance(c)
	if !ok {
		return
	}

	performance, err := h.performanceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPerformanceResponse(performance))
}

func (h *Handler) ListPerformances(c *ginext.Context) {
	performances, err := h.performanceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPerformanceResponses(performances))
}

func (h *Handler) ListPerformancesByArtist(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid artist id")
	if !ok {
		return
	}

	performances, err := h.performanceService.ListByArtist(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPerformanceResponses(performances))
}

func (h *Handler) UpdatePerformance(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid performance id")
	if !ok {
		return
	}

	input, bound := h.bindPerformance(c)
	if !bound {
		return
	}

	performance, err := h.performanceService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPerformanceResponse(performance))
}

func (h *Handler) DeletePerformance(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid performance id")
	if !ok {
		return
	}

	if err := h.performanceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, endAt, ok := h.parseWindow(c, req.StartAt, req.EndAt)
	if !ok {
		return
	}

	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket_price"})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		PerformanceID: req.PerformanceID,
		VenueID:       req.VenueID,
		DistributorID: req.DistributorID,
		StartAt:       startAt,
		EndAt:         endAt,
		TicketPrice:   price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("distributor_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUpcomingEvents(c *ginext.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventDetailsResponses(events))
}

func (h *Handler) ListEventsByVenue(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid venue id")
	if !ok {
		return
	}

	events, err := h.eventService.ListByVenue(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventDetailsResponses(events))
}

func (h *Handler) ListEventsForArtist(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid artist id")
	if !ok {
		return
	}

	events, err := h.eventService.ListForArtist(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventDetailsResponses(events))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, endAt, parsed := h.parseWindow(c, req.StartAt, req.EndAt)
	if !parsed {
		return
	}

	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket_price"})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, domain.UpdateEventInput{
		PerformanceID: req.PerformanceID,
		VenueID:       req.VenueID,
		StartAt:       startAt,
		EndAt:         endAt,
		TicketPrice:   price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ChangeEventStatus(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	var req dto.ChangeEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.ChangeStatus(c.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Purchases and tickets

func (h *Handler) PurchaseTickets(c *ginext.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.purchaseService.Purchase(c.Request.Context(), domain.PurchaseInput{
		EventID:  req.EventID,
		UserID:   req.UserID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(record))
}

func (h *Handler) GetUserTickets(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid user id")
	if !ok {
		return
	}

	page, limit := pagination(c)
	tickets, err := h.ticketService.ListByUser(c.Request.Context(), id, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	page, limit := pagination(c)
	tickets, err := h.ticketService.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Analytics

func (h *Handler) TopArtists(c *ginext.Context) {
	force := c.Query("refresh") == "true"

	sales, err := h.analyticsService.TopArtists(c.Request.Context(), force)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ArtistSalesResponse, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, dto.ToArtistSalesResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// helpers

func (h *Handler) pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}

	return id, true
}

func (h *Handler) parseWindow(c *ginext.Context, start, end string) (time.Time, time.Time, bool) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_at format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	return startAt, endAt, true
}

func (h *Handler) bindPerformance(c *ginext.Context) (domain.PerformanceInput, bool) {
	var req dto.PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.PerformanceInput{}, false
	}

	startDate, endDate, ok := h.parseWindow(c, req.StartDate, req.EndDate)
	if !ok {
		return domain.PerformanceInput{}, false
	}

	return domain.PerformanceInput{
		ArtistID:  req.ArtistID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  req.IsActive,
	}, true
}

func pagination(c *ginext.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

func toPerformanceResponses(performances []*domain.Performance) []dto.PerformanceResponse {
	resp := make([]dto.PerformanceResponse, 0, len(performances))
	for _, p := range performances {
		resp = append(resp, dto.ToPerformanceResponse(p))
	}
	return resp
}

func toEventDetailsResponses(events []*domain.EventDetails) []dto.EventDetailsResponse {
	resp := make([]dto.EventDetailsResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventDetailsResponse(e))
	}
	return resp
}

func toTicketResponses(tickets []*domain.TicketDetail) []dto.TicketResponse {
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrPerformanceNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVenueConflict),
		errors.Is(err, domain.ErrArtistConflict),
		errors.Is(err, domain.ErrEventNotOnSale),
		errors.Is(err, domain.ErrSalesClosed),
		errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidStateChange):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
