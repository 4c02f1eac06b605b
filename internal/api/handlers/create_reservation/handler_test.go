package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	allocateReservation "github.com/blackrooms/BR-ReservationService/internal/usecase/allocate_reservation"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

type fakeUseCase struct {
	resp *allocateReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *allocateReservation.Request) (*allocateReservation.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

const validBody = `{
	"questId": 1,
	"roomId": 1,
	"clientId": 10,
	"employeeId": 20,
	"date": "2026-03-14",
	"startTime": "18:00",
	"participantsCount": 4
}`

func doRequest(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &allocateReservation.Response{
			ScheduleID:        7,
			BookingID:         3,
			QuestID:           1,
			RoomID:            1,
			ClientID:          10,
			EmployeeID:        20,
			Date:              time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime:         mustTime(t, "18:00"),
			EndTime:           mustTime(t, "19:00"),
			Status:            "requested",
			QuestTitle:        "Побег",
			QuestPrice:        2500,
			ParticipantsCount: 4,
			CreatedAt:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ScheduleID)
	assert.Equal(t, int64(3), resp.BookingID)
	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, "19:00", resp.EndTime)
	assert.Equal(t, "2026-03-14", resp.Date)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(&fakeUseCase{}, `{"questId": "не число"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2026-03-14", "14.03.2026", 1)
	rec := doRequest(&fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", allocateReservation.ErrInvalidInput, http.StatusBadRequest},
		{"quest not found", allocateReservation.ErrQuestNotFound, http.StatusNotFound},
		{"room not found", allocateReservation.ErrRoomNotFound, http.StatusNotFound},
		{"room unavailable", allocateReservation.ErrRoomUnavailable, http.StatusConflict},
		{"slot conflict", allocateReservation.ErrSlotConflict, http.StatusConflict},
		{"capacity exceeded", allocateReservation.ErrCapacityExceeded, http.StatusBadRequest},
		{"busy", allocateReservation.ErrBusy, http.StatusServiceUnavailable},
		{"internal", errors.New("database is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.code, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
