package dto

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type CreateArtistRequest struct {
	ArtistName string `json:"artist_name" binding:"required"`
	ImageURL   string `json:"image_url"`
}

type PerformanceRequest struct {
	ArtistID  string `json:"artist_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

type CreateEventRequest struct {
	PerformanceID string `json:"performance_id" binding:"required,uuid"`
	VenueID       string `json:"venue_id" binding:"required,uuid"`
	DistributorID string `json:"distributor_id" binding:"required,uuid"`
	StartAt       string `json:"start_at" binding:"required"`
	EndAt         string `json:"end_at" binding:"required"`
	TicketPrice   string `json:"ticket_price" binding:"required"`
}

type UpdateEventRequest struct {
	PerformanceID string `json:"performance_id" binding:"required,uuid"`
	VenueID       string `json:"venue_id" binding:"required,uuid"`
	StartAt       string `json:"start_at" binding:"required"`
	EndAt         string `json:"end_at" binding:"required"`
	TicketPrice   string `json:"ticket_price" binding:"required"`
}

type ChangeEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected canceled"`
}

type PurchaseRequest struct {
	EventID  string `json:"event_id" binding:"required,uuid"`
	UserID   string `json:"user_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
