package handler

import (
	"net/http"

	"github.com/fortuna-games/fortuna/internal/logger"
	"github.com/fortuna-games/fortuna/internal/wheel"
)

// WheelHandler handles prize wheel HTTP requests
type WheelHandler struct {
	service wheel.Service
}

// NewWheelHandler creates a new wheel handler
func NewWheelHandler(service wheel.Service) *WheelHandler {
	return &WheelHandler{service: service}
}

// WheelRequest represents a request to spin the prize wheel
type WheelRequest struct {
	Key string `json:"key" validate:"omitempty,max=128"`
}

// WheelResponse represents a wheel outcome
type WheelResponse struct {
	PrizeIndex int    `json:"prize_index"`
	PrizeName  string `json:"prize_name"`
	IsWin      bool   `json:"is_win"`
}

// HandleWheel processes a wheel spin request
// @Summary Spin the prize wheel
// @Description Selects a slot by weighted random draw. Winning outcomes are recorded best-effort; recording failures never change the response.
// @Tags games
// @Accept json
// @Produce json
// @Param request body WheelRequest false "Optional identity key"
// @Success 200 {object} WheelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wheel [post]
func (h *WheelHandler) HandleWheel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req WheelRequest
	if err := DecodeOptionalRequest(r, w, &req, "Wheel"); err != nil {
		return
	}

	result, err := h.service.Play(ctx, req.Key)
	if err != nil {
		respondServiceError(w, r, "Wheel", err)
		return
	}

	log.Debug("Wheel played", "prize_index", result.PrizeIndex, "is_win", result.IsWin)
	respondJSON(w, http.StatusOK, WheelResponse{
		PrizeIndex: result.PrizeIndex,
		PrizeName:  result.PrizeName,
		IsWin:      result.IsWin,
	})
}
