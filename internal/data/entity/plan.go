package entity

import (
	"github.com/google/uuid"
)

// Plan belongs to exactly one hotel. Duration is the number of nights a
// stay spans; check-in/check-out times are local time-of-day strings.
type Plan struct {
	BaseSimple
	HotelID      uuid.UUID `db:"hotel_id"`
	Name         string    `db:"name"`
	Price        int       `db:"price"`
	Description  string    `db:"description"`
	Duration     int       `db:"duration"`
	CheckInTime  string    `db:"check_in_time"`
	CheckOutTime string    `db:"check_out_time"`
}
