package businesshours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

// Repository репозиторий расписания салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает расписание салона вместе с перерывами
func (r *Repository) Get(ctx context.Context) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"opening_minute",
		"closing_minute",
		"slot_duration_minutes",
		"days_off",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"id": domain.BusinessHoursSingletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.BusinessHours
	var daysOff pq.Int64Array
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.OpeningTime,
		&hours.ClosingTime,
		&hours.SlotDurationMinutes,
		&daysOff,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business hours: %v", ErrScanRow, err)
	}

	hours.DaysOff = make([]time.Weekday, 0, len(daysOff))
	for _, d := range daysOff {
		hours.DaysOff = append(hours.DaysOff, time.Weekday(d))
	}
	hours.UpdatedAt = updatedAt.Time

	breaks, err := r.getBreaks(ctx, executor)
	if err != nil {
		return nil, err
	}
	hours.Breaks = breaks

	return &hours, nil
}

func (r *Repository) getBreaks(ctx context.Context, executor DBExecutor) ([]domain.BreakPeriod, error) {
	query, args, err := psqlbuilder.Select("name", "start_minute", "end_minute").
		From("break_periods").
		OrderBy("start_minute ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBreaks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.BreakPeriod, 0)
	for rows.Next() {
		var b domain.BreakPeriod
		if err := rows.Scan(&b.Name, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("%w: getBreaks - scan break: %v", ErrScanRow, err)
		}
		breaks = append(breaks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBreaks - rows error: %v", ErrScanRow, err)
	}

	return breaks, nil
}

// Save сохраняет расписание и полностью заменяет список перерывов.
// Должен вызываться внутри транзакции, иначе читатель может увидеть
// новое расписание со старыми перерывами
func (r *Repository) Save(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	daysOff := make(pq.Int64Array, 0, len(hours.DaysOff))
	for _, d := range hours.DaysOff {
		daysOff = append(daysOff, int64(d))
	}

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("id", "opening_minute", "closing_minute", "slot_duration_minutes", "days_off", "updated_at").
		Values(
			domain.BusinessHoursSingletonID,
			hours.OpeningTime,
			hours.ClosingTime,
			hours.SlotDurationMinutes,
			daysOff,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			opening_minute = EXCLUDED.opening_minute,
			closing_minute = EXCLUDED.closing_minute,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			days_off = EXCLUDED.days_off,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	hours.UpdatedAt = updatedAt.Time

	// Перерывы заменяем целиком
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("break_periods").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build delete breaks query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Save - delete breaks: %v", ErrExecQuery, err)
	}

	if len(hours.Breaks) == 0 {
		return hours, nil
	}

	insert := psqlbuilder.Insert("break_periods").Columns("name", "start_minute", "end_minute")
	for _, b := range hours.Breaks {
		insert = insert.Values(b.Name, b.Start, b.End)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert breaks query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: Save - insert breaks: %v", ErrExecQuery, err)
	}

	return hours, nil
}
