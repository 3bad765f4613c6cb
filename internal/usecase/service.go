package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Hotel       HotelService
	Calendar    CalendarService
	Reservation ReservationService
	Tweet       TweetService
}

func NewService(repo *repository.Repository, config *utils.Config, m mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Hotel:       NewHotelService(repo, log),
		Calendar:    NewCalendarService(repo, log),
		Reservation: NewReservationService(repo, m, log),
		Tweet:       NewTweetService(repo, log),
	}
}
