package response

import (
	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type PlanResponse struct {
	ID           string `json:"id"`
	HotelID      string `json:"hotel_id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

type HotelDetailResponse struct {
	HotelResponse
	Plans []PlanResponse `json:"plans"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID.String(),
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
	}
}

func PlanToResponse(plan *entity.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID.String(),
		HotelID:      plan.HotelID.String(),
		Name:         plan.Name,
		Price:        plan.Price,
		Description:  plan.Description,
		Duration:     plan.Duration,
		CheckInTime:  plan.CheckInTime,
		CheckOutTime: plan.CheckOutTime,
	}
}
