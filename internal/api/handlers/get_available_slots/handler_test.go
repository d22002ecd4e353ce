package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type mockUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, staffID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/staff/"+staffID+"/available-slots?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"staffId": staffID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	date, _ := types.ParseDate("2026-11-02")
	uc := &mockUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		StaffID:         7,
		DurationMinutes: 30,
		Closure: getAvailableSlots.Closure{
			IsPartial: true,
			Reason:    "training",
			Windows:   []getAvailableSlots.Window{{Start: types.MustTimeOfDay("10:00"), End: types.MustTimeOfDay("11:00")}},
		},
		Slots: []types.TimeOfDay{types.MustTimeOfDay("09:00"), types.MustTimeOfDay("11:00")},
	}}

	w := doRequest(NewHandler(uc, nopLogger{}), "7", "date=2026-11-02&duration=45")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(7), uc.lastReq.StaffID)
	assert.Equal(t, 45, uc.lastReq.ServiceDurationMinutes)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-11-02", body.Date)
	assert.True(t, body.Closure.IsPartial)
	require.Len(t, body.Closure.Windows, 1)
	assert.Equal(t, "10:00", body.Closure.Windows[0].Start.String())
	assert.Equal(t, []types.TimeOfDay{types.MustTimeOfDay("09:00"), types.MustTimeOfDay("11:00")}, body.Slots)
}

func TestHandle_EmptySlotsSerializedAsArray(t *testing.T) {
	date, _ := types.ParseDate("2026-11-02")
	uc := &mockUseCase{resp: &getAvailableSlots.Response{Date: date, Closure: getAvailableSlots.Closure{IsClosed: true}}}

	w := doRequest(NewHandler(uc, nopLogger{}), "1", "date=2026-11-02")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		staffID string
		query   string
	}{
		{name: "invalid staff id", staffID: "abc", query: "date=2026-11-02"},
		{name: "missing date", staffID: "1", query: ""},
		{name: "invalid date", staffID: "1", query: "date=02.11.2026"},
		{name: "invalid duration", staffID: "1", query: "date=2026-11-02&duration=x"},
		{name: "zero duration", staffID: "1", query: "date=2026-11-02&duration=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := doRequest(NewHandler(uc, nopLogger{}), tt.staffID, tt.query)
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
		{err: getAvailableSlots.ErrInvalidInput, code: http.StatusBadRequest},
		{err: getAvailableSlots.ErrInvalidDate, code: http.StatusBadRequest},
		{err: getAvailableSlots.ErrDateTooFarInFuture, code: http.StatusBadRequest},
		{err: getAvailableSlots.ErrBusinessHoursNotConfigured, code: http.StatusNotFound},
		{err: getAvailableSlots.ErrInvalidConfiguration, code: http.StatusInternalServerError},
		{err: fmt.Errorf("%w: db down", getAvailableSlots.ErrInternal), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := doRequest(NewHandler(uc, nopLogger{}), "1", "date=2026-11-02")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
