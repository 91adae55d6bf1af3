package handler

import (
	"net/http"

	"github.com/fortuna-games/fortuna/internal/logger"
	"github.com/fortuna-games/fortuna/internal/spin"
)

// SpinHandler handles spin game HTTP requests
type SpinHandler struct {
	service spin.Service
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(service spin.Service) *SpinHandler {
	return &SpinHandler{service: service}
}

// SpinRequest represents a request to play the spin game. The identity key is
// optional; requests without one are not correlated for rate limiting.
type SpinRequest struct {
	Key string `json:"key" validate:"omitempty,max=128"`
}

// SpinResponse represents a spin outcome
type SpinResponse struct {
	Numbers [3]string `json:"numbers"`
	IsWin   bool      `json:"is_win"`
}

// HandleSpin processes a spin play request
// @Summary Play the spin game
// @Description Draws three digits. A winning outcome is recorded before it is returned; a reached daily limit or a store failure withholds the outcome.
// @Tags games
// @Accept json
// @Produce json
// @Param request body SpinRequest false "Optional identity key"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SpinRequest
	if err := DecodeOptionalRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.service.Play(ctx, req.Key)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	log.Debug("Spin played", "is_win", result.IsWin)
	respondJSON(w, http.StatusOK, SpinResponse{
		Numbers: result.Numbers,
		IsWin:   result.IsWin,
	})
}
