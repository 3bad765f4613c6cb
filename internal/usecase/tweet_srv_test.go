package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
)

func seedUser(store *memStore, email, username string) uuid.UUID {
	id := uuid.New()
	store.users[id] = &entity.User{
		Base:     entity.Base{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:    email,
		Username: username,
	}
	return id
}

func TestCreateTweetDenormalizesAuthor(t *testing.T) {
	store := newMemStore()
	userID := seedUser(store, "guest@example.com", "guest")
	svc := NewTweetService(newMockRepository(store), testLogger())

	tweet, err := svc.CreateTweet(context.Background(), userID, &request.CreateTweetRequest{Content: "checked in!"})
	if err != nil {
		t.Fatalf("CreateTweet: %v", err)
	}
	if tweet.Email != "guest@example.com" || tweet.Username != "guest" {
		t.Errorf("author = %s/%s", tweet.Email, tweet.Username)
	}
	if tweet.Content != "checked in!" {
		t.Errorf("content = %q", tweet.Content)
	}
}

func TestCreateTweetValidation(t *testing.T) {
	store := newMemStore()
	userID := seedUser(store, "guest@example.com", "guest")
	svc := NewTweetService(newMockRepository(store), testLogger())

	for _, content := range []string{"", strings.Repeat("x", 281)} {
		_, err := svc.CreateTweet(context.Background(), userID, &request.CreateTweetRequest{Content: content})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("content len %d: err = %v, want ValidationError", len(content), err)
		}
	}

	if _, err := svc.CreateTweet(context.Background(), uuid.New(), &request.CreateTweetRequest{Content: "hi"}); err == nil {
		t.Error("tweet accepted for unknown user")
	}
}

func TestGetTimelineNewestFirst(t *testing.T) {
	store := newMemStore()
	userID := seedUser(store, "guest@example.com", "guest")
	svc := NewTweetService(newMockRepository(store), testLogger())
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := svc.CreateTweet(ctx, userID, &request.CreateTweetRequest{Content: content}); err != nil {
			t.Fatalf("CreateTweet %q: %v", content, err)
		}
	}

	timeline, err := svc.GetTimeline(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	if len(timeline.Data) != 3 {
		t.Fatalf("%d tweets, want 3", len(timeline.Data))
	}
	if timeline.Data[0].Content != "third" || timeline.Data[2].Content != "first" {
		t.Errorf("order = %s..%s, want newest first", timeline.Data[0].Content, timeline.Data[2].Content)
	}
	if timeline.Pagination.Total != 3 {
		t.Errorf("total = %d", timeline.Pagination.Total)
	}
}
