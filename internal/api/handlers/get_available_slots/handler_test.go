package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/tcsoares1914/test-gbi-backend/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *stubUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/available-slots"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			WashType:        "SIMPLE",
			DurationMinutes: 30,
			Slots: []getAvailableSlots.Slot{
				{StartTime: "10:00"},
				{StartTime: "10:15"},
			},
		},
	}

	rec := doRequest(t, uc, "?date=2026-09-01&type=SIMPLE")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2026-09-01", got.Date)
	assert.Equal(t, "SIMPLE", got.ServiceType)
	assert.Equal(t, 30, got.DurationMinutes)
	assert.Equal(t, []string{"10:00", "10:15"}, got.Slots)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), uc.lastReq.Date)
}

func TestHandle_EmptySlotListStaysArray(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			WashType:        "SIMPLE",
			DurationMinutes: 30,
			Slots:           []getAvailableSlots.Slot{},
		},
	}

	rec := doRequest(t, uc, "?date=2026-09-05&type=SIMPLE")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
	}{
		{"missing date", "?type=SIMPLE", nil},
		{"missing type", "?date=2026-09-01", nil},
		{"bad date format", "?date=01/09/2026&type=SIMPLE", nil},
		{"unknown type", "?date=2026-09-01&type=DELUXE", getAvailableSlots.ErrInvalidServiceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: getAvailableSlots.ErrInternal}, "?date=2026-09-01&type=SIMPLE")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
