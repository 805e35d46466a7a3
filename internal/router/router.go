package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	UpdateVenue(c *ginext.Context)
	DeleteVenue(c *ginext.Context)
	CreateArtist(c *ginext.Context)
	GetArtist(c *ginext.Context)
	ListArtists(c *ginext.Context)
	CreatePerformance(c *ginext.Context)
	ListPerformances(c *ginext.Context)
	ListPerformancesByArtist(c *ginext.Context)
	UpdatePerformance(c *ginext.Context)
	DeletePerformance(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListUpcomingEvents(c *ginext.Context)
	ListEventsByVenue(c *ginext.Context)
	ListEventsForArtist(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	ChangeEventStatus(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	PurchaseTickets(c *ginext.Context)
	GetUserTickets(c *ginext.Context)
	ListTickets(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	TopArtists(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PUT("/venues/:id", h.UpdateVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)

		// Artists
		api.POST("/artists", h.CreateArtist)
		api.GET("/artists", h.ListArtists)
		api.GET("/artists/:id", h.GetArtist)

		// Performances
		api.POST("/performances", h.CreatePerformance)
		api.GET("/performances", h.ListPerformances)
		api.GET("/performances/by-artist/:id", h.ListPerformancesByArtist)
		api.PUT("/performances/:id", h.UpdatePerformance)
		api.DELETE("/performances/:id", h.DeletePerformance)

		// Events
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

		// Purchases and tickets
		api.POST("/tickets/purchase", h.PurchaseTickets)
		api.GET("/tickets", h.ListTickets)
		api.GET("/users/:id/tickets", h.GetUserTickets)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Analytics
		api.GET("/analytics/top-artists", h.TopArtists)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
