package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availMap(entries ...entity.Availability) map[string]entity.Availability {
	m := make(map[string]entity.Availability)
	for _, e := range entries {
		m[e.DateKey] = e
	}
	return m
}

func TestBuildMonthGridPaddedToWholeWeeks(t *testing.T) {
	months := []time.Time{
		date(2025, time.January, 15),
		date(2025, time.February, 1),  // starts on Saturday
		date(2025, time.June, 30),     // starts on Sunday
		date(2024, time.February, 10), // leap year
		date(2025, time.December, 25),
	}

	for _, cursor := range months {
		days := BuildMonthGrid(cursor, nil, nil, date(2020, time.January, 1))

		if len(days)%7 != 0 {
			t.Errorf("%s: grid length %d is not a multiple of 7", cursor.Month(), len(days))
		}

		first := MonthStart(cursor)
		last := first.AddDate(0, 1, -1)

		if got, want := days[0].DateKey, entity.DateKey(first.AddDate(0, 0, -int(first.Weekday()))); got != want {
			t.Errorf("%s: grid starts at %s, want Sunday %s", cursor.Month(), got, want)
		}

		inMonth := 0
		for _, cell := range days {
			if cell.InMonth {
				inMonth++
			}
		}
		if inMonth != last.Day() {
			t.Errorf("%s: %d in-month cells, want %d", cursor.Month(), inMonth, last.Day())
		}
	}
}

func TestBuildMonthGridJune2025Shape(t *testing.T) {
	// June 2025 starts on a Sunday and ends on a Monday, so the grid is
	// exactly 5 weeks with 5 trailing July cells.
	days := BuildMonthGrid(date(2025, time.June, 1), nil, nil, date(2020, time.January, 1))

	if len(days) != 35 {
		t.Fatalf("grid length = %d, want 35", len(days))
	}
	if days[0].DateKey != "2025_06_01" {
		t.Errorf("first cell = %s, want 2025_06_01", days[0].DateKey)
	}
	if days[34].DateKey != "2025_07_05" {
		t.Errorf("last cell = %s, want 2025_07_05", days[34].DateKey)
	}
	if days[30].InMonth {
		t.Error("July padding cell marked in-month")
	}
}

func TestBuildMonthGridAvailabilityFlags(t *testing.T) {
	planID := uuid.New()
	availability := availMap(
		entity.Availability{PlanID: planID, DateKey: "2025_01_01", Rooms: 5, Booked: 3},
		entity.Availability{PlanID: planID, DateKey: "2025_01_02", Rooms: 3, Booked: 3},
	)

	days := BuildMonthGrid(date(2025, time.January, 1), availability, nil, date(2020, time.January, 1))

	byKey := make(map[string]response.DayCell)
	for _, cell := range days {
		byKey[cell.DateKey] = cell
	}

	jan1 := byKey["2025_01_01"]
	if !jan1.IsAvailable || jan1.Remaining != 2 || !jan1.Selectable {
		t.Errorf("jan 1 = %+v, want available with remaining 2 and selectable", jan1)
	}

	// Fully booked date renders as unavailable.
	jan2 := byKey["2025_01_02"]
	if jan2.IsAvailable || jan2.Selectable || jan2.Remaining != 0 {
		t.Errorf("jan 2 = %+v, want unavailable", jan2)
	}

	// A date with no entry at all is treated the same as fully booked.
	jan3 := byKey["2025_01_03"]
	if jan3.IsAvailable || jan3.Selectable {
		t.Errorf("jan 3 = %+v, want unavailable when no entry exists", jan3)
	}
}

func TestBuildMonthGridTodayAndSelected(t *testing.T) {
	selected := date(2025, time.January, 10)
	today := date(2025, time.January, 15)

	days := BuildMonthGrid(date(2025, time.January, 1), nil, &selected, today)

	for _, cell := range days {
		switch cell.DateKey {
		case "2025_01_10":
			if !cell.IsSelected {
				t.Error("selected date not flagged")
			}
		case "2025_01_15":
			if !cell.IsToday {
				t.Error("today not flagged")
			}
		default:
			if cell.IsSelected || cell.IsToday {
				t.Errorf("%s unexpectedly flagged selected/today", cell.DateKey)
			}
		}
	}
}

func TestCanSelect(t *testing.T) {
	planID := uuid.New()
	availability := availMap(
		entity.Availability{PlanID: planID, DateKey: "2025_01_15", Rooms: 2, Booked: 1},
		entity.Availability{PlanID: planID, DateKey: "2025_01_16", Rooms: 2, Booked: 2},
		entity.Availability{PlanID: planID, DateKey: "2025_02_01", Rooms: 2, Booked: 0},
	)
	cursor := date(2025, time.January, 1)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"available in-month day", date(2025, time.January, 15), true},
		{"fully booked day", date(2025, time.January, 16), false},
		{"day without entry", date(2025, time.January, 17), false},
		{"available day outside displayed month", date(2025, time.February, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanSelect(tc.day, cursor, availability); got != tc.want {
				t.Errorf("CanSelect(%s) = %v, want %v", entity.DateKey(tc.day), got, tc.want)
			}
		})
	}
}

func TestMonthNavigationNormalizesCursor(t *testing.T) {
	// Jan 31 + 1 month must land in February, not March.
	next := NextMonth(date(2025, time.January, 31))
	if next.Month() != time.February || next.Day() != 1 {
		t.Errorf("NextMonth(Jan 31) = %s, want Feb 1", next.Format("2006-01-02"))
	}

	prev := PrevMonth(date(2025, time.March, 31))
	if prev.Month() != time.February || prev.Day() != 1 {
		t.Errorf("PrevMonth(Mar 31) = %s, want Feb 1", prev.Format("2006-01-02"))
	}

	// Year boundaries.
	if got := NextMonth(date(2024, time.December, 15)); got.Year() != 2025 || got.Month() != time.January {
		t.Errorf("NextMonth(Dec 2024) = %s", got.Format("2006-01-02"))
	}
	if got := PrevMonth(date(2025, time.January, 15)); got.Year() != 2024 || got.Month() != time.December {
		t.Errorf("PrevMonth(Jan 2025) = %s", got.Format("2006-01-02"))
	}
}

func TestMonthViewUsesSnapshot(t *testing.T) {
	store := newMemStore()
	hotelID := uuid.New()
	planID := uuid.New()
	store.hotels[hotelID] = &entity.Hotel{BaseSimple: entity.BaseSimple{ID: hotelID}, Name: "Tokyo Hotel"}
	store.plans[planID] = &entity.Plan{
		BaseSimple: entity.BaseSimple{ID: planID},
		HotelID:    hotelID,
		Name:       "Standard Plan",
		Duration:   3,
	}
	store.setAvailability(planID, "2025_01_01", 5, 3)

	svc := &calendarService{
		repo: newMockRepository(store),
		log:  testLogger(),
		now:  func() time.Time { return date(2025, time.January, 15) },
	}

	view, err := svc.MonthView(context.Background(), hotelID.String(), planID.String(), "2025_01_01", "2025_01_01")
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}
	if view.Year != 2025 || view.Month != 1 {
		t.Fatalf("view is %d-%d, want 2025-1", view.Year, view.Month)
	}

	for _, cell := range view.Days {
		if cell.DateKey != "2025_01_01" {
			continue
		}
		if !cell.IsAvailable || cell.Remaining != 2 || !cell.IsSelected {
			t.Errorf("jan 1 cell = %+v", cell)
		}
	}
}

func TestMonthViewUnknownPlan(t *testing.T) {
	store := newMemStore()
	svc := &calendarService{
		repo: newMockRepository(store),
		log:  testLogger(),
		now:  time.Now,
	}

	_, err := svc.MonthView(context.Background(), uuid.New().String(), uuid.New().String(), "", "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
