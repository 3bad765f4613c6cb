package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type TweetResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func TweetToResponse(tweet *entity.Tweet) TweetResponse {
	return TweetResponse{
		ID:        tweet.ID.String(),
		Content:   tweet.Content,
		Email:     tweet.UserEmail,
		Username:  tweet.UserUsername,
		CreatedAt: tweet.CreatedAt,
	}
}
