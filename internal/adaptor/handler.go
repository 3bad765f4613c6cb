package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Hotel       *HotelHandler
	Reservation *ReservationHandler
	Tweet       *TweetHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Hotel:       NewHotelHandler(service.Hotel, service.Calendar, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Tweet:       NewTweetHandler(service.Tweet, log),
	}
}

// handleServiceError maps the service failure taxonomy onto HTTP
// responses. NotificationError is handled by the reservation handler
// directly since it is a partial success, not a failure.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var capacityErr *usecase.CapacityError
	var persistenceErr *usecase.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Message, validationErr.Fields)

	case errors.As(err, &capacityErr):
		log.Info(operation+" rejected - fully booked",
			zap.String("date_key", capacityErr.DateKey))
		utils.ResponseConflict(w, "Selected dates are fully booked")

	case errors.As(err, &persistenceErr):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	case strings.Contains(err.Error(), "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "invalid credentials"):
		log.Warn(operation+" failed - bad credentials")
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case strings.Contains(err.Error(), "already registered"):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
