package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTweet(
	r chi.Router,
	tweetHandler *adaptor.TweetHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/tweets - Post to the feed
		r.Post("/api/tweets", tweetHandler.CreateTweet)

		// GET /api/tweets - Timeline, newest first
		r.Get("/api/tweets", tweetHandler.GetTimeline)
	})
}
