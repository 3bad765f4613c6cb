package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TweetService interface {
	CreateTweet(ctx context.Context, userID uuid.UUID, req *request.CreateTweetRequest) (*response.TweetResponse, error)
	GetTimeline(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TweetResponse], error)
}

type tweetService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTweetService(repo *repository.Repository, log *zap.Logger) TweetService {
	return &tweetService{
		repo: repo,
		log:  log.With(zap.String("service", "tweet")),
	}
}

func (s *tweetService) CreateTweet(ctx context.Context, userID uuid.UUID, req *request.CreateTweetRequest) (*response.TweetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	tweet := &entity.Tweet{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       user.ID,
		UserEmail:    user.Email,
		UserUsername: user.Username,
		Content:      req.Content,
	}

	if err := s.repo.Tweet.Create(ctx, tweet); err != nil {
		s.log.Error("Failed to create tweet",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, &PersistenceError{Op: "create tweet", Err: err}
	}

	s.log.Info("Tweet posted", zap.String("tweet_id", tweet.ID.String()))

	resp := response.TweetToResponse(tweet)
	return &resp, nil
}

func (s *tweetService) GetTimeline(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TweetResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	tweets, err := s.repo.Tweet.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, &PersistenceError{Op: "find recent tweets", Err: err}
	}

	total, err := s.repo.Tweet.Count(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "count tweets", Err: err}
	}

	items := make([]response.TweetResponse, len(tweets))
	for i, tweet := range tweets {
		items[i] = response.TweetToResponse(tweet)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}
