package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/reservations - Commit a reservation
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// GET /api/reservations/{id} - Confirmation view
		r.Get("/api/reservations/{id}", reservationHandler.GetReservation)

		// GET /api/user/reservations - Own reservation history
		r.Get("/api/user/reservations", reservationHandler.GetUserReservations)
	})
}
