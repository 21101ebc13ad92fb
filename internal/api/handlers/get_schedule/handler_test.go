package get_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules"
	"github.com/tcsoares1914/test-gbi-backend/internal/service/schedules/models"
)

type stubService struct {
	resp *models.ScheduleResponse
	err  error
}

func (s *stubService) GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *stubService, scheduleID string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/"+scheduleID, nil)
	req = mux.SetURLVars(req, map[string]string{"scheduleId": scheduleID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validID = "a3bb189e-8bf9-3888-9912-ace4e6543002"

func TestHandle_ReturnsSchedule(t *testing.T) {
	svc := &stubService{
		resp: &models.ScheduleResponse{
			ID:           validID,
			ServiceType:  "SIMPLE",
			VehiclePlate: "ABC1234",
		},
	}

	rec := doRequest(t, svc, validID)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, validID, got.ID)
	assert.Equal(t, "ABC1234", got.VehiclePlate)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &stubService{}, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	rec := doRequest(t, &stubService{err: schedules.ErrScheduleNotFound}, validID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubService{err: errors.New("boom")}, validID)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
