package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTrip(c *ginext.Context)
	GetTrip(c *ginext.Context)
	ListTrips(c *ginext.Context)
	Reserve(c *ginext.Context)
	JoinWaitlist(c *ginext.Context)
	ReleaseHold(c *ginext.Context)
	Checkout(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetUserCart(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Trips
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips", h.ListTrips)
		api.GET("/trips/:id", h.GetTrip)

		// Reservations
		api.POST("/trips/:id/reserve", h.Reserve)
		api.POST("/trips/:id/waitlist", h.JoinWaitlist)
		api.DELETE("/cart/:id", h.ReleaseHold)
		api.POST("/cart/:id/checkout", h.Checkout)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/cart", h.GetUserCart)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
