package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the calendar-date encoding shared by the seed data,
// the availability table and every runtime lookup. Lookups are by exact
// string match, so this must never drift.
const DateKeyLayout = "2006_01_02"

// DateKey encodes a calendar date as a map/row key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey is the inverse of DateKey.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}

// Availability is the per-date room/booked counter pair for one plan.
// Remaining capacity is Rooms - Booked; Booked never exceeds Rooms.
type Availability struct {
	PlanID  uuid.UUID `db:"plan_id"`
	DateKey string    `db:"date_key"`
	Rooms   int       `db:"rooms"`
	Booked  int       `db:"booked"`
}

// Remaining returns rooms still bookable for the date.
func (a Availability) Remaining() int {
	return a.Rooms - a.Booked
}
