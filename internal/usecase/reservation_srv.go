package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, userEmail string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
}

type reservationService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	log    *zap.Logger
	now    func() time.Time
}

func NewReservationService(repo *repository.Repository, m mailer.Mailer, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:   repo,
		mailer: m,
		log:    log.With(zap.String("service", "reservation")),
		now:    time.Now,
	}
}

// CreateReservation runs the whole commit sequence: validate the selected
// date against the availability snapshot, persist the reservation and the
// two booked increments atomically, then send the confirmation email.
// An email failure after the commit returns the created reservation
// together with a NotificationError; the reservation is never rolled back.
func (s *reservationService) CreateReservation(ctx context.Context, userID uuid.UUID, userEmail string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if userID == uuid.Nil || userEmail == "" {
		return nil, newValidationError("authentication required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid hotel ID format %s", req.HotelID))
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid plan ID format %s", req.PlanID))
	}

	checkInDate, err := entity.ParseDateKey(req.CheckInDate)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid check-in date %s", req.CheckInDate))
	}

	plan, err := s.repo.Plan.FindByID(ctx, hotelID, planID)
	if err != nil {
		return nil, &PersistenceError{Op: "find plan", Err: err}
	}
	if plan == nil {
		return nil, newValidationError(fmt.Sprintf("plan %s not found", req.PlanID))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, &PersistenceError{Op: "find hotel", Err: err}
	}
	if hotel == nil {
		return nil, newValidationError(fmt.Sprintf("hotel %s not found", req.HotelID))
	}

	// Checkout for an n-night plan lands n-1 days after check-in; a
	// 1-night plan checks out on the check-in date itself.
	checkOutDate := checkInDate.AddDate(0, 0, plan.Duration-1)
	checkInKey := entity.DateKey(checkInDate)
	checkOutKey := entity.DateKey(checkOutDate)

	// Pre-check against a snapshot so a fully booked date is rejected
	// before any write. The commit below re-checks atomically; this read
	// can go stale the moment it returns.
	availability, err := s.repo.Availability.LoadForPlan(ctx, planID)
	if err != nil {
		return nil, &PersistenceError{Op: "load availability", Err: err}
	}

	for _, dateKey := range []string{checkInKey, checkOutKey} {
		entry, exists := availability[dateKey]
		if !exists || entry.Remaining() <= 0 {
			s.log.Info("Reservation rejected, date fully booked",
				zap.String("plan_id", req.PlanID),
				zap.String("date_key", dateKey),
			)
			return nil, &CapacityError{DateKey: dateKey}
		}
	}

	now := s.now()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ReservationNumber: utils.GenerateReservationNumber(),
		HotelID:           hotelID,
		PlanID:            planID,
		UserID:            userID,
		CheckInDate:       checkInDate,
		CheckOutDate:      checkOutDate,
		Status:            entity.ReservationStatusPending,

		PlanName:     plan.Name,
		HotelName:    hotel.Name,
		Price:        plan.Price,
		CheckInTime:  plan.CheckInTime,
		CheckOutTime: plan.CheckOutTime,
		UserEmail:    userEmail,
		ReservedAt:   now,
	}

	// Insert plus both booked increments commit or fail as one unit, so
	// an oversold date can never leave an orphaned reservation behind.
	if err := s.repo.Reservation.CreateWithBookedIncrements(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrNoCapacity) {
			return nil, &CapacityError{DateKey: checkInKey}
		}
		s.log.Error("Failed to persist reservation",
			zap.Error(err),
			zap.String("reservation_number", reservation.ReservationNumber),
		)
		return nil, &PersistenceError{Op: "create reservation", Err: err}
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("reservation_number", reservation.ReservationNumber),
		zap.String("user_id", userID.String()),
		zap.String("plan_id", req.PlanID),
		zap.String("check_in", checkInKey),
		zap.String("check_out", checkOutKey),
	)

	details := &mailer.ReservationDetails{
		PlanName:        reservation.PlanName,
		HotelName:       reservation.HotelName,
		ReservationDate: reservation.ReservedAt.Format("2006-01-02 15:04"),
		CheckInDate:     checkInKey,
		CheckInTime:     reservation.CheckInTime,
		CheckOutDate:    checkOutKey,
		CheckOutTime:    reservation.CheckOutTime,
		Price:           reservation.Price,
	}

	if err := s.mailer.SendReservationConfirmation(userEmail, details); err != nil {
		s.log.Error("Reservation saved but confirmation email failed",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return response.ReservationToResponse(reservation, false),
			&NotificationError{ReservationID: reservation.ID.String(), Err: err}
	}

	return response.ReservationToResponse(reservation, true), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, userID uuid.UUID, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid reservation ID format %s", reservationID))
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find reservation", Err: err}
	}
	if reservation == nil || reservation.UserID != userID {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return response.ReservationToResponse(reservation, true), nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, &PersistenceError{Op: "find user reservations", Err: err}
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "count user reservations", Err: err}
	}

	items := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		items[i] = *response.ReservationToResponse(reservation, true)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}
