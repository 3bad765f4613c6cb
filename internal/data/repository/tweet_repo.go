package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.Tweet, error)
	Count(ctx context.Context) (int64, error)
}

type tweetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTweetRepository(db database.PgxIface, log *zap.Logger) TweetRepository {
	return &tweetRepository{
		db:  db,
		log: log.With(zap.String("repository", "tweet")),
	}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	query := `
		INSERT INTO tweets (id, user_id, user_email, user_username, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		tweet.ID,
		tweet.UserID,
		tweet.UserEmail,
		tweet.UserUsername,
		tweet.Content,
		tweet.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tweet",
			zap.Error(err),
			zap.String("user_id", tweet.UserID.String()),
		)
		return fmt.Errorf("create tweet: %w", err)
	}

	return nil
}

func (r *tweetRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.Tweet, error) {
	query := `
		SELECT id, user_id, user_email, user_username, content, created_at
		FROM tweets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find recent tweets", zap.Error(err))
		return nil, fmt.Errorf("find recent tweets: %w", err)
	}
	defer rows.Close()

	var tweets []*entity.Tweet
	for rows.Next() {
		var tweet entity.Tweet
		err := rows.Scan(
			&tweet.ID,
			&tweet.UserID,
			&tweet.UserEmail,
			&tweet.UserUsername,
			&tweet.Content,
			&tweet.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tweet row", zap.Error(err))
			return nil, fmt.Errorf("scan tweet row: %w", err)
		}
		tweets = append(tweets, &tweet)
	}

	return tweets, nil
}

func (r *tweetRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tweets`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tweets", zap.Error(err))
		return 0, fmt.Errorf("count tweets: %w", err)
	}

	return count, nil
}
