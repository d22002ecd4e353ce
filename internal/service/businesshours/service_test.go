package businesshours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type mockRepo struct {
	hours   *domain.BusinessHours
	saveErr error
	saves   int
}

func (m *mockRepo) Get(ctx context.Context) (*domain.BusinessHours, error) {
	if m.hours == nil {
		return nil, businessHoursRepo.ErrBusinessHoursNotFound
	}
	return m.hours, nil
}

func (m *mockRepo) Save(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	m.saves++
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.hours = hours
	return hours, nil
}

type mockTx struct{}

func (mockTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *models.UpdateBusinessHoursRequest {
	return &models.UpdateBusinessHoursRequest{
		OpeningTime:         types.MustTimeOfDay("09:00"),
		ClosingTime:         types.MustTimeOfDay("17:00"),
		SlotDurationMinutes: 30,
		Breaks: []models.BreakPeriod{
			{Name: "lunch", Start: types.MustTimeOfDay("12:00"), End: types.MustTimeOfDay("13:00")},
		},
		DaysOff: []string{"Sunday", "monday"},
	}
}

func TestService_UpdateAndGet(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, mockTx{}, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrBusinessHoursNotFound)

	resp, err := svc.Update(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.OpeningTime)
	assert.Equal(t, []string{"sunday", "monday"}, resp.DaysOff)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, repo.hours.DaysOff)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "17:00", got.ClosingTime)
	require.Len(t, got.Breaks, 1)
	assert.Equal(t, "lunch", got.Breaks[0].Name)
}

func TestService_UpdateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpdateBusinessHoursRequest)
	}{
		{name: "opening after closing", mutate: func(r *models.UpdateBusinessHoursRequest) {
			r.OpeningTime = types.MustTimeOfDay("18:00")
		}},
		{name: "zero slot", mutate: func(r *models.UpdateBusinessHoursRequest) { r.SlotDurationMinutes = 0 }},
		{name: "break outside hours", mutate: func(r *models.UpdateBusinessHoursRequest) {
			r.Breaks[0].End = types.MustTimeOfDay("18:00")
		}},
		{name: "unknown weekday", mutate: func(r *models.UpdateBusinessHoursRequest) { r.DaysOff = []string{"caturday"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo, mockTx{}, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, repo.saves)
		})
	}
}

func TestService_UpdateRepositoryError(t *testing.T) {
	svc := NewService(&mockRepo{saveErr: errors.New("db down")}, mockTx{}, nopLogger{})

	_, err := svc.Update(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
