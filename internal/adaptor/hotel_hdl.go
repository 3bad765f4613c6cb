package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service  usecase.HotelService
	calendar usecase.CalendarService
	log      *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, calendar usecase.CalendarService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service:  service,
		calendar: calendar,
		log:      log.With(zap.String("handler", "hotel")),
	}
}

// ListHotels handles GET /api/hotels (protected)
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.ListHotels(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotel handles GET /api/hotels/{hotelId} (protected)
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelId")
	if hotelID == "" {
		utils.ResponseBadRequest(w, "Hotel ID is required", nil)
		return
	}

	hotel, err := h.service.GetHotelWithPlans(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// GetPlanCalendar handles GET /api/hotels/{hotelId}/plans/{planId}/calendar (protected)
//
// Query params: month (any date key inside the displayed month, defaults
// to the current month) and selected (the held selection, optional).
func (h *HotelHandler) GetPlanCalendar(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelId")
	planID := chi.URLParam(r, "planId")
	if hotelID == "" || planID == "" {
		utils.ResponseBadRequest(w, "Hotel ID and plan ID are required", nil)
		return
	}

	query := r.URL.Query()
	month := query.Get("month")
	selected := query.Get("selected")

	calendar, err := h.calendar.MonthView(r.Context(), hotelID, planID, month, selected)
	if err != nil {
		handleServiceError(w, h.log, err, "render calendar")
		return
	}

	utils.ResponseSuccess(w, "success", calendar)
}
