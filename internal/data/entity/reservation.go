package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	// ReservationStatusPending is the initial and, in the current flow,
	// terminal status. No transition is implemented.
	ReservationStatusPending ReservationStatus = "Pending"
)

// Reservation keeps denormalized plan/hotel/user snapshot fields so the
// confirmation view and emails never re-join plans or hotels.
type Reservation struct {
	BaseSimple
	ReservationNumber string            `db:"reservation_number"`
	HotelID           uuid.UUID         `db:"hotel_id"`
	PlanID            uuid.UUID         `db:"plan_id"`
	UserID            uuid.UUID         `db:"user_id"`
	CheckInDate       time.Time         `db:"check_in_date"`
	CheckOutDate      time.Time         `db:"check_out_date"`
	Status            ReservationStatus `db:"status"`

	// Snapshot fields captured at creation time
	PlanName     string    `db:"plan_name"`
	HotelName    string    `db:"hotel_name"`
	Price        int       `db:"price"`
	CheckInTime  string    `db:"check_in_time"`
	CheckOutTime string    `db:"check_out_time"`
	UserEmail    string    `db:"user_email"`
	ReservedAt   time.Time `db:"reserved_at"`
}
