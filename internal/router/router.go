package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/auth"
	"github.com/HarshAvichal/EventEase/internal/handler"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

func InitRouter(mode string, h *handler.Handler, tm *auth.TokenManager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authed := middleware.Auth(tm)
	organizer := middleware.RequireOrganizer()
	participant := middleware.RequireParticipant()

	api := router.Group("/api/v1")
	{
		// Auth
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", h.Signup)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/logout", h.Logout)
			authGroup.POST("/refresh-token", h.RefreshToken)
			authGroup.POST("/request-reset", h.RequestPasswordReset)
			authGroup.POST("/reset-password/:token", h.ResetPassword)

			authGroup.GET("/me", authed, h.GetProfile)
			authGroup.PATCH("/me", authed, h.UpdateProfile)
			authGroup.DELETE("/me", authed, h.DeleteAccount)
		}

		// Events
		events := api.Group("/events", authed)
		{
			events.POST("/", organizer, h.CreateEvent)
			events.GET("/organizer/upcoming", organizer, h.ListOrganizerUpcoming)
			events.GET("/organizer/completed", organizer, h.ListOrganizerCompleted)
			events.GET("/organizer/all", organizer, h.ListOrganizerAll)

			events.GET("/participant/upcoming", participant, h.ListParticipantUpcoming)
			events.GET("/participant/completed", participant, h.ListParticipantCompleted)
			events.GET("/participant/my-events", participant, h.ListMyEvents)

			events.GET("/search", h.SearchEvents)
			events.GET("/details/:id", h.GetEventDetails)
			events.PATCH("/:id", organizer, h.UpdateEvent)
			events.PATCH("/:id/cancel", organizer, h.CancelEvent)
			events.DELETE("/:id", organizer, h.DeleteEvent)

			// RSVPs
			events.POST("/:id/rsvp", participant, h.RegisterRSVP)
			events.POST("/:id/rsvp/cancel", participant, h.CancelRSVP)
			events.GET("/:id/rsvp/count", h.RSVPCount)
			events.GET("/:id/attendees", h.ListAttendees)

			// Feedback
			events.POST("/:id/feedback", participant, h.SubmitFeedback)
			events.GET("/:id/feedback", h.ListFeedback)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
