package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Browsing requires login, same as the rest of the app
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/hotels - List hotels
		r.Get("/api/hotels", hotelHandler.ListHotels)

		// GET /api/hotels/{hotelId} - Hotel detail with plans
		r.Get("/api/hotels/{hotelId}", hotelHandler.GetHotel)

		// GET /api/hotels/{hotelId}/plans/{planId}/calendar - Month availability view
		r.Get("/api/hotels/{hotelId}/plans/{planId}/calendar", hotelHandler.GetPlanCalendar)
	})
}
