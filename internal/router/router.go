package router

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	Login(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	DeleteAllEvents(c *ginext.Context)
	ListAttendees(c *ginext.Context)
	GetUserRegistrations(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	tokens middleware.TokenParser,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)

		authed := api.Group("", middleware.Authenticate(tokens))

		// Events
		authed.GET("/events", h.ListEvents)

		admin := authed.Group("", middleware.RequireAdmin())
		admin.POST("/events", h.CreateEvent)
		admin.PUT("/events/:id", h.UpdateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)
		admin.DELETE("/events", h.DeleteAllEvents)
		admin.GET("/events/:id/attendees", h.ListAttendees)

		// Registrations
		authed.GET("/users/:id/registrations", h.GetUserRegistrations)
		authed.POST("/users/:id/registrations", h.RegisterForEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
