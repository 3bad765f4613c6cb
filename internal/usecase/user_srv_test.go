package usecase

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
)

func TestGetProfile(t *testing.T) {
	store := newMemStore()
	userID := seedUser(store, "guest@example.com", "guest")
	svc := NewUserService(&mockUserRepo{store: store}, testLogger())

	profile, err := svc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Email != "guest@example.com" || profile.Username != "guest" {
		t.Errorf("profile = %+v", profile)
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New()); err == nil {
		t.Error("unknown user returned a profile")
	}
}

func TestUpdateProfile(t *testing.T) {
	store := newMemStore()
	userID := seedUser(store, "guest@example.com", "guest")
	svc := NewUserService(&mockUserRepo{store: store}, testLogger())

	updated, err := svc.UpdateProfile(context.Background(), userID, &request.UpdateProfileRequest{Username: "traveler"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Username != "traveler" {
		t.Errorf("username = %s, want traveler", updated.Username)
	}
	if store.users[userID].Username != "traveler" {
		t.Error("update not persisted")
	}

	_, err = svc.UpdateProfile(context.Background(), userID, &request.UpdateProfileRequest{Username: "ab"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("short username: err = %v, want ValidationError", err)
	}
}
