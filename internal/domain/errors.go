package domain

import "errors"

var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrArtistNotFound      = errors.New("artist profile not found")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTicketNotFound      = errors.New("ticket not found")
)

var (
	ErrVenueConflict  = errors.New("venue is already booked for an overlapping time")
	ErrArtistConflict = errors.New("artist already has a conflicting event scheduled at this time")
)

var (
	ErrEventNotOnSale     = errors.New("event is not open for ticket sales")
	ErrSalesClosed        = errors.New("event has already started, sales are closed")
	ErrSoldOut            = errors.New("event is sold out")
	ErrCapacityExceeded   = errors.New("not enough tickets remaining")
	ErrInvalidStateChange = errors.New("event status does not permit this operation")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
