package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type mockAppointmentRepo struct {
	existing  []*domain.Appointment
	created   []*domain.Appointment
	getErr    error
	createErr error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	a.ID = int64(len(m.created) + 1)
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockAppointmentRepo) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	all := make([]*domain.Appointment, 0, len(m.existing)+len(m.created))
	all = append(all, m.existing...)
	all = append(all, m.created...)

	result := make([]*domain.Appointment, 0)
	for _, a := range all {
		if a.StaffID == staffID && (includeInactive || a.IsActive()) {
			result = append(result, a)
		}
	}
	return result, nil
}

type mockHoursRepo struct {
	hours *domain.BusinessHours
}

func (m *mockHoursRepo) Get(ctx context.Context) (*domain.BusinessHours, error) {
	return m.hours, nil
}

type mockClosureRepo struct {
	closures []domain.ShopClosure
}

func (m *mockClosureRepo) GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error) {
	return m.closures, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockMetrics struct {
	created   map[string]int
	conflicts map[string]int
}

func (m *mockMetrics) IncAppointmentCreated(status string) { m.created[status]++ }
func (m *mockMetrics) IncSlotConflict(reason string)       { m.conflicts[reason]++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	now      = time.Date(2026, 3, 13, 10, 5, 0, 0, time.UTC)
	today    = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
)

func tod(s string) types.TimeOfDay {
	return types.MustTimeOfDay(s)
}

type fixture struct {
	appointments *mockAppointmentRepo
	closures     *mockClosureRepo
	tx           *mockTxManager
	metrics      *mockMetrics
	uc           *UseCase
}

func newFixture(policy domain.BookingPolicy) *fixture {
	f := &fixture{
		appointments: &mockAppointmentRepo{},
		closures:     &mockClosureRepo{},
		tx:           &mockTxManager{},
		metrics:      &mockMetrics{created: map[string]int{}, conflicts: map[string]int{}},
	}
	hours := &mockHoursRepo{hours: &domain.BusinessHours{
		OpeningTime:         tod("09:00"),
		ClosingTime:         tod("17:00"),
		SlotDurationMinutes: 30,
		Breaks:              []domain.BreakPeriod{{Name: "lunch", Start: tod("12:00"), End: tod("13:00")}},
		DaysOff:             []time.Weekday{time.Sunday},
	}}
	f.uc = NewUseCase(f.appointments, hours, f.closures, f.tx, policy, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func request(start string) *Request {
	return &Request{
		StaffID:     7,
		ClientName:  "Ivan",
		ClientPhone: ptr.Ptr("+79990000000"),
		ServiceName: "haircut",
		Date:        tomorrow,
		StartTime:   tod(start),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())

	resp, err := f.uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, tod("10:30"), resp.EndTime)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics.created["confirmed"])
}

func TestExecute_EndsAfterMidnight(t *testing.T) {
	t.Run("explicit duration", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		req := request("16:30")
		req.DurationMinutes = domain.MaxServiceDurationMinutes

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.appointments.created)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("default slot duration at end of day", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		late := &mockHoursRepo{hours: &domain.BusinessHours{
			OpeningTime:         tod("22:00"),
			ClosingTime:         tod("23:50"),
			SlotDurationMinutes: 30,
		}}
		f.uc = NewUseCase(f.appointments, late, f.closures, f.tx, domain.DefaultBookingPolicy(), f.metrics, nopLogger{})
		f.uc.timeProvider = fixedTime{now: now}

		_, err := f.uc.Execute(context.Background(), request("23:30"))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.appointments.created)
	})

	t.Run("past closing but before midnight", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		req := request("16:30")
		req.DurationMinutes = 90

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, tod("18:00"), resp.EndTime)
	})
}

func TestExecute_DoubleBooking(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())

	_, err := f.uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.metrics.conflicts["overlap"])

	// соседний слот свободен
	_, err = f.uc.Execute(context.Background(), request("10:30"))
	assert.NoError(t, err)

	// другой мастер не конфликтует
	other := request("10:00")
	other.StaffID = 8
	_, err = f.uc.Execute(context.Background(), other)
	assert.NoError(t, err)
}

func TestExecute_LongServiceOverlapsNext(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())
	f.appointments.existing = []*domain.Appointment{
		{StaffID: 7, StartTime: tod("10:30"), DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	req := request("10:00")
	req.DurationMinutes = 60
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())
	f.appointments.existing = []*domain.Appointment{
		{StaffID: 7, StartTime: tod("10:00"), DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), request("10:00"))
	assert.NoError(t, err)
}

func TestExecute_Closures(t *testing.T) {
	t.Run("full day", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		f.closures.closures = []domain.ShopClosure{{Date: tomorrow, IsFullDay: true, Reason: "holiday"}}

		_, err := f.uc.Execute(context.Background(), request("10:00"))
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("day off", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		req := request("10:00")
		req.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("inside partial closure", func(t *testing.T) {
		f := newFixture(domain.DefaultBookingPolicy())
		f.closures.closures = []domain.ShopClosure{{
			Date:      tomorrow,
			StartTime: ptr.Ptr(tod("14:00")),
			EndTime:   ptr.Ptr(tod("16:00")),
		}}

		_, err := f.uc.Execute(context.Background(), request("14:30"))
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)

		_, err = f.uc.Execute(context.Background(), request("16:00"))
		assert.NoError(t, err)
	})
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())

	for _, start := range []string{"10:15", "12:00", "08:30", "17:00"} {
		_, err := f.uc.Execute(context.Background(), request(start))
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, start)
	}
	assert.Empty(t, f.appointments.created)
}

func TestExecute_Notice(t *testing.T) {
	f := newFixture(domain.BookingPolicy{MinNoticeMinutes: 60, Location: time.UTC})

	req := request("10:30")
	req.Date = today
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	req = request("11:30")
	req.Date = today
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DateValidation(t *testing.T) {
	f := newFixture(domain.BookingPolicy{AdvanceBookingDays: 3, Location: time.UTC})

	req := request("10:00")
	req.Date = today.AddDate(0, 0, -1)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = request("10:00")
	req.Date = today.AddDate(0, 0, 4)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no staff", mutate: func(r *Request) { r.StaffID = 0 }},
		{name: "no client", mutate: func(r *Request) { r.ClientName = "  " }},
		{name: "no service", mutate: func(r *Request) { r.ServiceName = "" }},
		{name: "no date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "negative duration", mutate: func(r *Request) { r.DurationMinutes = -10 }},
		{name: "invalid start", mutate: func(r *Request) { r.StartTime = types.TimeOfDay(1500) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("10:00")
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	f := newFixture(domain.DefaultBookingPolicy())
	f.appointments.getErr = errors.New("db down")

	_, err := f.uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrInternal)

	f.appointments.getErr = nil
	f.appointments.createErr = errors.New("insert failed")
	_, err = f.uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.metrics.created)
}
