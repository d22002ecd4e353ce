package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

const tableName = "appointments"

var columns = []string{
	"id",
	"staff_id",
	"client_name",
	"client_phone",
	"service_name",
	"appointment_date",
	"start_minute",
	"duration_minutes",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей к мастерам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись.
// Проверка доступности слота выполняется вызывающим кодом в той же транзакции
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"staff_id",
			"client_name",
			"client_phone",
			"service_name",
			"appointment_date",
			"start_minute",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			appointment.StaffID,
			appointment.ClientName,
			appointment.ClientPhone,
			appointment.ServiceName,
			types.DateOnly(appointment.Date),
			appointment.StartTime,
			appointment.DurationMinutes,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByStaffAndDate получает записи мастера на дату, упорядоченные по времени начала.
// includeInactive=false отбрасывает отмененные записи и неявки.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельное
// создание записи на тот же день ждало завершения текущей
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"appointment_date": types.DateOnly(date)}).
		OrderBy("start_minute ASC")

	if !includeInactive {
		inactive := make([]string, 0, len(domain.InactiveStatuses))
		for _, s := range domain.InactiveStatuses {
			inactive = append(inactive, string(s))
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStaffAndDate - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var clientPhone, notes, cancellationReason sql.NullString
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.StaffID,
		&a.ClientName,
		&clientPhone,
		&a.ServiceName,
		&a.Date,
		&a.StartTime,
		&a.DurationMinutes,
		&a.Status,
		&notes,
		&cancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientPhone.Valid {
		a.ClientPhone = &clientPhone.String
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
	if cancellationReason.Valid {
		a.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		a.CancelledAt = &cancelledAt.Time
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
