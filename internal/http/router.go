// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roost/internal/http/handlers"
	"roost/internal/http/middleware"
	"roost/internal/modules/appointment"
	"roost/internal/modules/assistant"
	"roost/internal/modules/favorite"
	"roost/internal/modules/listing"
	"roost/internal/modules/reminder"
)

func NewRouter(
	assistantService *assistant.Service,
	listingService *listing.Service,
	reminderService *reminder.Service,
	favoriteService *favorite.Service,
	appointmentService *appointment.Service,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	assistantHandler := handlers.NewAssistantHandler(assistantService)
	r.POST("/api/bot/chat", assistantHandler.Chat)

	listingHandler := handlers.NewListingHandler(listingService, favoriteService)
	r.GET("/api/rentals/public", listingHandler.ListPublished)
	r.GET("/api/rentals/list", listingHandler.ListByLandlord)
	r.GET("/api/rentals/amenities", listingHandler.Amenities)
	r.GET("/api/rentals/:id", listingHandler.Get)
	r.POST("/api/rentals/add", listingHandler.Create)
	r.POST("/api/rentals/update", listingHandler.Update)
	r.POST("/api/rentals/delete", listingHandler.Delete)

	reminderHandler := handlers.NewReminderHandler(reminderService)
	r.GET("/api/reminders", reminderHandler.List)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	r.POST("/api/favorites", favoriteHandler.Add)
	r.GET("/api/favorites", favoriteHandler.List)
	r.GET("/api/favorites/check", favoriteHandler.Check)
	r.DELETE("/api/favorites/:id", favoriteHandler.Remove)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	r.POST("/api/appointments/create", appointmentHandler.Create)
	r.GET("/api/appointments/tenant/:id", appointmentHandler.ListByTenant)
	r.GET("/api/appointments/landlord/:id", appointmentHandler.ListByLandlord)
	r.POST("/api/appointments/:id/status", appointmentHandler.UpdateStatus)
	r.POST("/api/appointments/:id/message", appointmentHandler.AddMessage)
	r.POST("/api/appointments/:id/negotiate", appointmentHandler.Negotiate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
