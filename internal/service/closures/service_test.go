package closures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	closureRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type mockRepo struct {
	items     map[int64]domain.ShopClosure
	nextID    int64
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: map[int64]domain.ShopClosure{}}
}

func (m *mockRepo) Create(ctx context.Context, c *domain.ShopClosure) (*domain.ShopClosure, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	c.ID = m.nextID
	m.items[c.ID] = *c
	return c, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.ShopClosure, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, closureRepo.ErrClosureNotFound
	}
	return &c, nil
}

func (m *mockRepo) GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error) {
	result := make([]domain.ShopClosure, 0)
	for _, c := range m.items {
		if c.IsOnDate(date) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]domain.ShopClosure, error) {
	result := make([]domain.ShopClosure, 0)
	for _, c := range m.items {
		if !c.Date.Before(from) && !c.Date.After(to) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(ctx context.Context, c *domain.ShopClosure) (*domain.ShopClosure, error) {
	if _, ok := m.items[c.ID]; !ok {
		return nil, closureRepo.ErrClosureNotFound
	}
	m.items[c.ID] = *c
	return c, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return closureRepo.ErrClosureNotFound
	}
	delete(m.items, id)
	return nil
}

type mockCache struct {
	invalidated []string
}

func (m *mockCache) Invalidate(ctx context.Context, date time.Time) {
	m.invalidated = append(m.invalidated, date.Format(types.DateLayout))
}

type recordingLogger struct {
	warnings int
}

func (l *recordingLogger) Info(format string, v ...interface{})  {}
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.warnings++ }
func (l *recordingLogger) Error(format string, v ...interface{}) {}

func setup() (*Service, *mockRepo, *mockCache, *recordingLogger) {
	repo := newMockRepo()
	cache := &mockCache{}
	logger := &recordingLogger{}
	return NewService(repo, cache, logger), repo, cache, logger
}

func partial(date, start, end string) *models.ClosureRequest {
	return &models.ClosureRequest{
		Date:      date,
		Reason:    "training",
		StartTime: ptr.Ptr(types.MustTimeOfDay(start)),
		EndTime:   ptr.Ptr(types.MustTimeOfDay(end)),
	}
}

func TestService_Create(t *testing.T) {
	svc, _, cache, logger := setup()
	ctx := context.Background()

	resp, err := svc.Create(ctx, partial("2026-03-14", "14:00", "16:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-03-14", resp.Date)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "14:00", *resp.StartTime)
	assert.Equal(t, []string{"2026-03-14"}, cache.invalidated)
	assert.Equal(t, 0, logger.warnings)

	// вторая запись на ту же дату допустима, но логируется
	_, err = svc.Create(ctx, &models.ClosureRequest{Date: "2026-03-14", IsFullDay: true, Reason: "holiday"})
	require.NoError(t, err)
	assert.Equal(t, 1, logger.warnings)
}

func TestService_CreateValidation(t *testing.T) {
	svc, repo, cache, _ := setup()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.ClosureRequest
	}{
		{name: "bad date", req: &models.ClosureRequest{Date: "14.03.2026", IsFullDay: true}},
		{name: "partial without times", req: &models.ClosureRequest{Date: "2026-03-14"}},
		{name: "reversed window", req: partial("2026-03-14", "16:00", "14:00")},
		{name: "full day with times", req: &models.ClosureRequest{
			Date: "2026-03-14", IsFullDay: true, StartTime: ptr.Ptr(types.MustTimeOfDay("10:00")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.items)
	assert.Empty(t, cache.invalidated)
}

func TestService_UpdateMovesDate(t *testing.T) {
	svc, _, cache, _ := setup()
	ctx := context.Background()

	created, err := svc.Create(ctx, partial("2026-03-14", "14:00", "16:00"))
	require.NoError(t, err)
	cache.invalidated = nil

	updated, err := svc.Update(ctx, created.ID, &models.ClosureRequest{Date: "2026-03-15", IsFullDay: true})
	require.NoError(t, err)
	assert.True(t, updated.IsFullDay)
	assert.Nil(t, updated.StartTime)
	assert.Equal(t, []string{"2026-03-14", "2026-03-15"}, cache.invalidated)

	_, err = svc.Update(ctx, 99, &models.ClosureRequest{Date: "2026-03-15", IsFullDay: true})
	assert.ErrorIs(t, err, ErrClosureNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo, cache, _ := setup()
	ctx := context.Background()

	created, err := svc.Create(ctx, partial("2026-03-14", "14:00", "16:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.items)
	assert.Equal(t, []string{"2026-03-14", "2026-03-14"}, cache.invalidated)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrClosureNotFound)
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrClosureNotFound)
}

func TestService_List(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Create(ctx, partial("2026-03-14", "14:00", "16:00"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.ClosureRequest{Date: "2026-04-01", IsFullDay: true})
	require.NoError(t, err)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(ctx, &models.ListClosuresRequest{From: from, To: from.AddDate(0, 0, 30)})
	require.NoError(t, err)
	assert.Len(t, resp.Closures, 1)

	_, err = svc.List(ctx, &models.ListClosuresRequest{From: from, To: from.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.List(ctx, &models.ListClosuresRequest{From: from, To: from.AddDate(2, 0, 0)})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_CreateRepositoryError(t *testing.T) {
	svc, repo, cache, _ := setup()
	repo.createErr = errors.New("db down")

	_, err := svc.Create(context.Background(), partial("2026-03-14", "14:00", "16:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, cache.invalidated)
}
