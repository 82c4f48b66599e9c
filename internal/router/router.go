package router

import (
	"net/http"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	AuthTelegram(c *ginext.Context)
	RegisterUser(c *ginext.Context)
	GetMe(c *ginext.Context)
	UpdateMe(c *ginext.Context)
	ListRooms(c *ginext.Context)
	RoomSchedule(c *ginext.Context)
	RoomAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	CreateRecurring(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	CreateNotification(c *ginext.Context)
	DeleteNotification(c *ginext.Context)
	ClearSystem(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW *middleware.AuthMiddleware, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/telegram", h.AuthTelegram)

		authed := api.Group("")
		authed.Use(authMW.RequireAuth())
		{
			// Users
			authed.POST("/users", h.RegisterUser)
			authed.GET("/users/me", h.GetMe)
			authed.PUT("/users/me", h.UpdateMe)

			// Rooms
			authed.GET("/rooms", h.ListRooms)
			authed.GET("/rooms/:id/schedule", h.RoomSchedule)
			authed.GET("/rooms/:id/availability", h.RoomAvailability)
			authed.POST("/rooms/:id/recurring", h.CreateRecurring)

			// Bookings
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings/my", h.MyBookings)
			authed.PUT("/bookings/:id", h.UpdateBooking)
			authed.DELETE("/bookings/:id", h.DeleteBooking)

			// Notifications
			authed.GET("/notifications", h.ListNotifications)
			authed.POST("/notifications", h.CreateNotification)
			authed.DELETE("/notifications/:id", h.DeleteNotification)

			// Admin
			authed.POST("/admin/clear",
				authMW.RequireAdmin(domain.AdminLevelRoot),
				h.ClearSystem,
			)
		}
	}

	return router
}
