package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	ListHotels(ctx context.Context) ([]response.HotelResponse, error)
	GetHotelWithPlans(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) ListHotels(ctx context.Context) ([]response.HotelResponse, error) {
	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list hotels", Err: err}
	}

	items := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		items[i] = response.HotelToResponse(hotel)
	}

	return items, nil
}

func (s *hotelService) GetHotelWithPlans(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid hotel ID format %s", hotelID))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find hotel", Err: err}
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}

	plans, err := s.repo.Plan.FindByHotelID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find plans", Err: err}
	}

	planItems := make([]response.PlanResponse, len(plans))
	for i, plan := range plans {
		planItems[i] = response.PlanToResponse(plan)
	}

	return &response.HotelDetailResponse{
		HotelResponse: response.HotelToResponse(hotel),
		Plans:         planItems,
	}, nil
}
