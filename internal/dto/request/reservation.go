package request

// CreateReservationRequest carries the user's date selection. The check-in
// date uses the shared availability date-key encoding (yyyy_MM_dd); the
// check-out date is derived from the plan duration, never submitted.
type CreateReservationRequest struct {
	HotelID     string `json:"hotel_id" validate:"required,uuid4"`
	PlanID      string `json:"plan_id" validate:"required,uuid4"`
	CheckInDate string `json:"check_in_date" validate:"required,datetime=2006_01_02"`
}
