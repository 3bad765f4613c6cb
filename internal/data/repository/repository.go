package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrNoCapacity is returned when a conditional booked-increment matches no
// row, either because the date has no availability entry or because
// booked has already reached rooms.
var ErrNoCapacity = errors.New("no remaining capacity")

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Hotel        HotelRepository
	Plan         PlanRepository
	Availability AvailabilityRepository
	Reservation  ReservationRepository
	Tweet        TweetRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Hotel:        NewHotelRepository(db, log),
		Plan:         NewPlanRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Tweet:        NewTweetRepository(db, log),
	}
}
