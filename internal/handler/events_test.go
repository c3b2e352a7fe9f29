package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
)

// MockEventReader is a mock implementation of EventReader
type MockEventReader struct {
	mock.Mock
}

func (m *MockEventReader) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Entry), args.Error(1)
}

func TestHandleGetCropEvents(t *testing.T) {
	since := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	entries := []eventlog.Entry{{ID: 2, Slot: "Farmer_1", EventType: "crop.killed", Location: "Farm|1|2"}}

	reader := new(MockEventReader)
	reader.On("GetEvents", mock.Anything, eventlog.Filter{
		Slot: "Farmer_1", EventType: "crop.killed", Since: &since, Limit: 5,
	}).Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/events?slot=Farmer_1&type=crop.killed&since=2024-03-01T06:00:00Z&limit=5", nil)
	w := httptest.NewRecorder()
	HandleGetCropEvents(reader)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp EventsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Farm|1|2", resp.Events[0].Location)
	reader.AssertExpectations(t)
}

func TestHandleGetCropEvents_EmptyIsArray(t *testing.T) {
	reader := new(MockEventReader)
	reader.On("GetEvents", mock.Anything, eventlog.Filter{}).Return(nil, nil)

	w := httptest.NewRecorder()
	HandleGetCropEvents(reader)(w, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"events":[]}`, w.Body.String())
}

func TestHandleGetCropEvents_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"non numeric limit", "?limit=ten", ErrMsgInvalidLimit},
		{"zero limit", "?limit=0", ErrMsgInvalidLimit},
		{"bad since", "?since=yesterday", ErrMsgInvalidSince},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(MockEventReader)
			w := httptest.NewRecorder()
			HandleGetCropEvents(reader)(w, httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			reader.AssertNotCalled(t, "GetEvents", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetCropEvents_ReaderError(t *testing.T) {
	reader := new(MockEventReader)
	reader.On("GetEvents", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	HandleGetCropEvents(reader)(w, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
