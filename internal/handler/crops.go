package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

// TableSource exposes the tables a running saver holds in memory
type TableSource interface {
	Slot() string
	Tables() savedata.Tables
}

// CropsResponse is the body of the crop table endpoints
type CropsResponse struct {
	Slot      string          `json:"slot"`
	Tracked   int             `json:"tracked"`
	Snapshots int             `json:"snapshots"`
	Tables    savedata.Tables `json:"tables"`
}

// SlotsResponse lists the save slots a store holds
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

// HandleGetLiveCrops returns the saver's in-memory tables.
// ?location=Name limits the result to one location.
// @Summary Get live crop tables
// @Description Tracked records and morning snapshots held by the running saver
// @Tags crops
// @Produce json
// @Param location query string false "Location name"
// @Success 200 {object} CropsResponse
// @Router /api/v1/crops [get]
func HandleGetLiveCrops(source TableSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables := source.Tables().InLocation(r.URL.Query().Get(ParamLocation))
		respondJSON(w, http.StatusOK, newCropsResponse(source.Slot(), tables))
	}
}

// HandleGetStoredCrops decodes the tables persisted for the {slot} URL parameter
// @Summary Get stored crop tables
// @Description Decodes the crop tables persisted for a save slot
// @Tags crops
// @Produce json
// @Param slot path string true "Save slot"
// @Param location query string false "Location name"
// @Success 200 {object} CropsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/slots/{slot}/crops [get]
func HandleGetStoredCrops(store repository.SaveDataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot := chi.URLParam(r, ParamSlot)
		if slot == "" {
			respondError(w, http.StatusBadRequest, ErrMsgSlotRequired)
			return
		}

		log := logger.FromContext(r.Context())
		blob, err := store.ReadSaveData(r.Context(), slot, savedata.DataKey)
		if errors.Is(err, domain.ErrSaveDataNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgSlotNotFound)
			return
		}
		if err != nil {
			log.Error(LogMsgReadSlotFailed, "slot", slot, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		tables, err := savedata.Decode(blob)
		if err != nil {
			log.Warn(LogMsgReadSlotFailed, "slot", slot, "error", err)
			respondError(w, http.StatusUnprocessableEntity, ErrMsgCorruptSaveData)
			return
		}

		tables = tables.InLocation(r.URL.Query().Get(ParamLocation))
		respondJSON(w, http.StatusOK, newCropsResponse(slot, tables))
	}
}

// HandleListSlots lists the slots held by store, if it can enumerate them
// @Summary List save slots
// @Description Save slots with stored crop data, most recently written first
// @Tags crops
// @Produce json
// @Success 200 {object} SlotsResponse
// @Failure 500 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/slots [get]
func HandleListSlots(store repository.SaveDataStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lister, ok := store.(repository.SlotLister)
		if !ok {
			respondError(w, http.StatusNotImplemented, ErrMsgListingUnsupported)
			return
		}

		slots, err := lister.ListSlots(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgListSlotsFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		if slots == nil {
			slots = []string{}
		}
		respondJSON(w, http.StatusOK, SlotsResponse{Slots: slots})
	}
}

func newCropsResponse(slot string, t savedata.Tables) CropsResponse {
	return CropsResponse{
		Slot:      slot,
		Tracked:   len(t.CropDictionary),
		Snapshots: len(t.BeginningOfDayCrops),
		Tables:    t,
	}
}
