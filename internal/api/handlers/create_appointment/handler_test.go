package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type mockUseCase struct {
	resp    *createAppointment.Response
	err     error
	lastReq *createAppointment.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"staffId":3,"clientName":"Ivan","serviceName":"haircut","date":"2026-11-02","startTime":"11:30","durationMinutes":45}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	date, _ := types.ParseDate("2026-11-02")
	now := time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: &createAppointment.Response{
		ID:              10,
		StaffID:         3,
		ClientName:      "Ivan",
		ServiceName:     "haircut",
		Date:            date,
		StartTime:       types.MustTimeOfDay("11:30"),
		EndTime:         types.MustTimeOfDay("12:15"),
		DurationMinutes: 45,
		Status:          "confirmed",
		CreatedAt:       now,
		UpdatedAt:       now,
	}}

	w := post(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, types.MustTimeOfDay("11:30"), uc.lastReq.StartTime)
	assert.Equal(t, 45, uc.lastReq.DurationMinutes)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "12:15", body.EndTime)
	assert.Equal(t, "2026-11-02", body.Date)
}

func TestHandle_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"staffId":1,"carId":2}`},
		{name: "bad date", body: `{"staffId":1,"date":"2026/11/02","startTime":"10:00"}`},
		{name: "bad time", body: `{"staffId":1,"date":"2026-11-02","startTime":"25:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := post(NewHandler(uc, nopLogger{}), tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: createAppointment.ErrSlotNotAvailable, code: http.StatusConflict},
		{err: createAppointment.ErrShopClosed, code: http.StatusConflict},
		{err: createAppointment.ErrInvalidTimeSlot, code: http.StatusUnprocessableEntity},
		{err: createAppointment.ErrTooLateToBook, code: http.StatusUnprocessableEntity},
		{err: createAppointment.ErrInvalidDate, code: http.StatusBadRequest},
		{err: createAppointment.ErrDateTooFarInFuture, code: http.StatusBadRequest},
		{err: createAppointment.ErrInvalidInput, code: http.StatusBadRequest},
		{err: createAppointment.ErrBusinessHoursNotConfigured, code: http.StatusNotFound},
		{err: createAppointment.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(NewHandler(&mockUseCase{err: tt.err}, nopLogger{}), validBody)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
