package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fortuna-games/fortuna/internal/domain"
	"github.com/fortuna-games/fortuna/internal/logger"
	"github.com/fortuna-games/fortuna/internal/repository"
)

// RecordsHandler handles prize record CRUD requests
type RecordsHandler struct {
	records repository.Records
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(records repository.Records) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// RecordRequest represents a request to create or update a prize record
type RecordRequest struct {
	Key       string `json:"key" validate:"required,max=128"`
	Timestamp string `json:"timestamp" validate:"omitempty"` // RFC 3339, defaults to now
	Number    int    `json:"number" validate:"gte=0"`
	IsWin     bool   `json:"is_win"`
	Checked   bool   `json:"checked"`
}

// toRecord converts the request into a domain record. An absent timestamp
// defaults to the current UTC time.
func (req RecordRequest) toRecord() (domain.PrizeRecord, error) {
	ts := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return domain.PrizeRecord{}, err
		}
		ts = parsed.UTC()
	}

	return domain.PrizeRecord{
		Key:       req.Key,
		Timestamp: ts,
		Number:    req.Number,
		IsWin:     req.IsWin,
		Checked:   req.Checked,
	}, nil
}

// gameFromURL parses the {game} URL parameter, writing the error response on
// failure.
func gameFromURL(w http.ResponseWriter, r *http.Request) (domain.Game, bool) {
	game, err := domain.ParseGame(chi.URLParam(r, "game"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidGameError)
		return "", false
	}
	return game, true
}

// HandleCreateRecord creates a prize record
// @Summary Create a prize record
// @Description Writes a record into the game's database
// @Tags records
// @Accept json
// @Produce json
// @Param game path string true "Game type (spin or wheel)"
// @Param request body RecordRequest true "Record to create"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/{game} [post]
func (h *RecordsHandler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	game, ok := gameFromURL(w, r)
	if !ok {
		return
	}

	var req RecordRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create record"); err != nil {
		return
	}

	rec, err := req.toRecord()
	if err != nil {
		log.Warn("Create record with bad timestamp", "timestamp", req.Timestamp, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTimestamp)
		return
	}
	rec.Game = game

	if err := h.records.Create(ctx, rec, game); err != nil {
		respondServiceError(w, r, "Create record", err)
		return
	}

	log.Info("Record created", "game", game, "key", rec.Key)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgRecordCreatedSuccess})
}

// HandleListRecords lists every record in the game's database
// @Summary List prize records
// @Description Returns all records for the game, paging through the store internally
// @Tags records
// @Produce json
// @Param game path string true "Game type (spin or wheel)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/{game} [get]
func (h *RecordsHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	game, ok := gameFromURL(w, r)
	if !ok {
		return
	}

	records, err := h.records.List(ctx, game)
	if err != nil {
		respondServiceError(w, r, "List records", err)
		return
	}

	if records == nil {
		records = []domain.PrizeRecord{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: records})
}

// HandleUpdateRecord rewrites the properties of an existing record
// @Summary Update a prize record
// @Description Replaces the record's properties with the request body
// @Tags records
// @Accept json
// @Produce json
// @Param game path string true "Game type (spin or wheel)"
// @Param id path string true "Record id"
// @Param request body RecordRequest true "New record properties"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/{game}/{id} [put]
func (h *RecordsHandler) HandleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	game, ok := gameFromURL(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgRecordIDRequired)
		return
	}

	var req RecordRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update record"); err != nil {
		return
	}

	rec, err := req.toRecord()
	if err != nil {
		log.Warn("Update record with bad timestamp", "timestamp", req.Timestamp, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTimestamp)
		return
	}
	rec.Game = game

	if err := h.records.Update(ctx, id, rec, game); err != nil {
		respondServiceError(w, r, "Update record", err)
		return
	}

	log.Info("Record updated", "game", game, "id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecordUpdatedSuccess})
}

// HandleDeleteRecord soft-deletes a record
// @Summary Delete a prize record
// @Description Archives the record in the store; it stops appearing in listings
// @Tags records
// @Produce json
// @Param game path string true "Game type (spin or wheel)"
// @Param id path string true "Record id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/{game}/{id} [delete]
func (h *RecordsHandler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	game, ok := gameFromURL(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgRecordIDRequired)
		return
	}

	if err := h.records.Delete(ctx, id, game); err != nil {
		respondServiceError(w, r, "Delete record", err)
		return
	}

	log.Info("Record deleted", "game", game, "id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecordDeletedSuccess})
}
