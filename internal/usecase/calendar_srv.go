package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CalendarService interface {
	// MonthView renders the availability calendar for one plan. cursor is
	// any date within the displayed month (date-key encoded); selected is
	// the externally held selection, empty when none.
	MonthView(ctx context.Context, hotelID, planID, cursor, selected string) (*response.CalendarResponse, error)
}

type calendarService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCalendarService(repo *repository.Repository, log *zap.Logger) CalendarService {
	return &calendarService{
		repo: repo,
		log:  log.With(zap.String("service", "calendar")),
		now:  time.Now,
	}
}

func (s *calendarService) MonthView(ctx context.Context, hotelID, planID, cursor, selected string) (*response.CalendarResponse, error) {
	hotelUUID, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid hotel ID format %s", hotelID))
	}

	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("invalid plan ID format %s", planID))
	}

	plan, err := s.repo.Plan.FindByID(ctx, hotelUUID, planUUID)
	if err != nil {
		return nil, &PersistenceError{Op: "find plan", Err: err}
	}
	if plan == nil {
		return nil, newValidationError(fmt.Sprintf("plan %s not found", planID))
	}

	cursorDate := s.now()
	if cursor != "" {
		cursorDate, err = entity.ParseDateKey(cursor)
		if err != nil {
			return nil, newValidationError(fmt.Sprintf("invalid month cursor %s", cursor))
		}
	}

	var selectedDate *time.Time
	if selected != "" {
		d, err := entity.ParseDateKey(selected)
		if err != nil {
			return nil, newValidationError(fmt.Sprintf("invalid selected date %s", selected))
		}
		selectedDate = &d
	}

	// Snapshot load, once per view. Concurrent reservations made after
	// this read are invisible until the next load.
	availability, err := s.repo.Availability.LoadForPlan(ctx, planUUID)
	if err != nil {
		return nil, &PersistenceError{Op: "load availability", Err: err}
	}

	days := BuildMonthGrid(cursorDate, availability, selectedDate, s.now())

	s.log.Debug("Calendar month rendered",
		zap.String("plan_id", planID),
		zap.Int("year", cursorDate.Year()),
		zap.Int("month", int(cursorDate.Month())),
		zap.Int("cells", len(days)),
	)

	return &response.CalendarResponse{
		Year:  cursorDate.Year(),
		Month: int(cursorDate.Month()),
		Days:  days,
	}, nil
}

// BuildMonthGrid renders the full calendar month padded to whole weeks:
// the grid starts on the Sunday on/before the 1st and ends on the
// Saturday on/after the month's last day, so its length is always a
// multiple of 7.
func BuildMonthGrid(cursor time.Time, availability map[string]entity.Availability, selected *time.Time, today time.Time) []response.DayCell {
	first := MonthStart(cursor)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []response.DayCell
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := entity.DateKey(date)
		inMonth := date.Month() == first.Month() && date.Year() == first.Year()

		entry, exists := availability[key]
		available := exists && entry.Remaining() > 0

		cell := response.DayCell{
			DateKey:     key,
			Day:         date.Day(),
			InMonth:     inMonth,
			IsToday:     sameDay(date, today),
			IsSelected:  selected != nil && sameDay(date, *selected),
			IsAvailable: available,
			Selectable:  available && inMonth,
		}
		if available {
			cell.Remaining = entry.Remaining()
		}

		days = append(days, cell)
	}

	return days
}

// CanSelect reports whether a click on date may be forwarded to the
// caller: the day must be available and inside the displayed month.
func CanSelect(date, cursor time.Time, availability map[string]entity.Availability) bool {
	entry, exists := availability[entity.DateKey(date)]
	if !exists || entry.Remaining() <= 0 {
		return false
	}
	return date.Month() == cursor.Month() && date.Year() == cursor.Year()
}

// MonthStart normalizes any date to the 1st of its month. Cursor
// arithmetic always runs on the normalized value so adding a month from
// e.g. Jan 31 cannot skip February.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PrevMonth shifts the cursor back by exactly one calendar month.
func PrevMonth(cursor time.Time) time.Time {
	return MonthStart(cursor).AddDate(0, -1, 0)
}

// NextMonth shifts the cursor forward by exactly one calendar month.
func NextMonth(cursor time.Time) time.Time {
	return MonthStart(cursor).AddDate(0, 1, 0)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
