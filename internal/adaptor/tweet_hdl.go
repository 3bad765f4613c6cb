package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type TweetHandler struct {
	service usecase.TweetService
	log     *zap.Logger
}

func NewTweetHandler(service usecase.TweetService, log *zap.Logger) *TweetHandler {
	return &TweetHandler{
		service: service,
		log:     log.With(zap.String("handler", "tweet")),
	}
}

// CreateTweet handles POST /api/tweets (protected)
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tweet, err := h.service.CreateTweet(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tweet")
		return
	}

	utils.ResponseCreated(w, "success", tweet)
}

// GetTimeline handles GET /api/tweets (protected)
func (h *TweetHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 20,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 20)

	tweets, err := h.service.GetTimeline(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get timeline")
		return
	}

	utils.ResponseSuccess(w, "success", tweets)
}
