package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
)

// EventReader queries the crop event journal
type EventReader interface {
	GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error)
}

// EventsResponse is the body of the crop event endpoint
type EventsResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// HandleGetCropEvents lists journaled crop events, newest first.
// Supports ?slot=, ?type=, ?since= (RFC 3339) and ?limit=.
// @Summary List crop events
// @Description Journaled crop.tracked, crop.killed and crop.released events, newest first
// @Tags events
// @Produce json
// @Param slot query string false "Save slot"
// @Param type query string false "Event type (crop.tracked, crop.killed, crop.released)"
// @Param since query string false "RFC 3339 timestamp"
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/events [get]
func HandleGetCropEvents(reader EventReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := eventlog.Filter{
			Slot:      q.Get(ParamSlot),
			EventType: q.Get(ParamType),
		}

		if raw := q.Get(ParamLimit); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			filter.Limit = limit
		}

		if raw := q.Get(ParamSince); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		entries, err := reader.GetEvents(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgGetEventsFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: entries})
	}
}
