package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	return response.ProfileToResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	user.Username = req.Username
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, &PersistenceError{Op: "update user", Err: err}
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	return response.ProfileToResponse(user), nil
}
