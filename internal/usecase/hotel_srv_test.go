package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

func TestGetHotelWithPlans(t *testing.T) {
	store := newMemStore()
	hotelID := uuid.New()
	store.hotels[hotelID] = &entity.Hotel{
		BaseSimple: entity.BaseSimple{ID: hotelID},
		Name:       "Tokyo Hotel",
		Location:   "Tokyo",
	}
	for _, p := range []struct {
		name     string
		price    int
		duration int
	}{
		{"Basic Plan", 2000, 2},
		{"Standard Plan", 4000, 3},
		{"Luxury Plan", 10000, 7},
	} {
		id := uuid.New()
		store.plans[id] = &entity.Plan{
			BaseSimple: entity.BaseSimple{ID: id},
			HotelID:    hotelID,
			Name:       p.name,
			Price:      p.price,
			Duration:   p.duration,
		}
	}
	// A plan on a different hotel must not leak in.
	otherID := uuid.New()
	store.plans[otherID] = &entity.Plan{
		BaseSimple: entity.BaseSimple{ID: otherID},
		HotelID:    uuid.New(),
		Name:       "Other Plan",
	}

	svc := NewHotelService(newMockRepository(store), testLogger())

	detail, err := svc.GetHotelWithPlans(context.Background(), hotelID.String())
	if err != nil {
		t.Fatalf("GetHotelWithPlans: %v", err)
	}
	if detail.Name != "Tokyo Hotel" {
		t.Errorf("name = %s", detail.Name)
	}
	if len(detail.Plans) != 3 {
		t.Errorf("%d plans, want 3", len(detail.Plans))
	}
	for _, plan := range detail.Plans {
		if plan.Name == "Other Plan" {
			t.Error("plan from another hotel returned")
		}
	}
}

func TestGetHotelWithPlansNotFound(t *testing.T) {
	svc := NewHotelService(newMockRepository(newMemStore()), testLogger())

	if _, err := svc.GetHotelWithPlans(context.Background(), uuid.New().String()); err == nil {
		t.Error("unknown hotel returned no error")
	}
	if _, err := svc.GetHotelWithPlans(context.Background(), "not-a-uuid"); err == nil {
		t.Error("malformed hotel id returned no error")
	}
}

func TestListHotels(t *testing.T) {
	store := newMemStore()
	for _, name := range []string{"Tokyo Hotel", "Osaka Hotel"} {
		id := uuid.New()
		store.hotels[id] = &entity.Hotel{BaseSimple: entity.BaseSimple{ID: id}, Name: name}
	}

	svc := NewHotelService(newMockRepository(store), testLogger())

	hotels, err := svc.ListHotels(context.Background())
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if len(hotels) != 2 {
		t.Errorf("%d hotels, want 2", len(hotels))
	}
}
