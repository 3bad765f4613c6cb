package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID                string                   `json:"id"`
	ReservationNumber string                   `json:"reservation_number"`
	HotelID           string                   `json:"hotel_id"`
	PlanID            string                   `json:"plan_id"`
	UserID            string                   `json:"user_id"`
	CheckInDate       string                   `json:"check_in_date"`
	CheckOutDate      string                   `json:"check_out_date"`
	Status            entity.ReservationStatus `json:"status"`
	PlanName          string                   `json:"plan_name"`
	HotelName         string                   `json:"hotel_name"`
	Price             int                      `json:"price"`
	CheckInTime       string                   `json:"check_in_time"`
	CheckOutTime      string                   `json:"check_out_time"`
	ReservedAt        time.Time                `json:"reserved_at"`

	// EmailSent is false on partial success: the reservation was stored
	// but the confirmation email could not be delivered.
	EmailSent bool `json:"email_sent"`
}

func ReservationToResponse(reservation *entity.Reservation, emailSent bool) *ReservationResponse {
	return &ReservationResponse{
		ID:                reservation.ID.String(),
		ReservationNumber: reservation.ReservationNumber,
		HotelID:           reservation.HotelID.String(),
		PlanID:            reservation.PlanID.String(),
		UserID:            reservation.UserID.String(),
		CheckInDate:       entity.DateKey(reservation.CheckInDate),
		CheckOutDate:      entity.DateKey(reservation.CheckOutDate),
		Status:            reservation.Status,
		PlanName:          reservation.PlanName,
		HotelName:         reservation.HotelName,
		Price:             reservation.Price,
		CheckInTime:       reservation.CheckInTime,
		CheckOutTime:      reservation.CheckOutTime,
		ReservedAt:        reservation.ReservedAt,
		EmailSent:         emailSent,
	}
}
