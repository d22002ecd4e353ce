package closure

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

const tableName = "shop_closures"

var columns = []string{
	"id",
	"closure_date",
	"reason",
	"is_full_day",
	"start_minute",
	"end_minute",
	"created_at",
	"updated_at",
}

// Repository репозиторий закрытий салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает закрытие
func (r *Repository) Create(ctx context.Context, closure *domain.ShopClosure) (*domain.ShopClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("closure_date", "reason", "is_full_day", "start_minute", "end_minute").
		Values(
			types.DateOnly(closure.Date),
			closure.Reason,
			closure.IsFullDay,
			closure.StartTime,
			closure.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&closure.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// GetByID получает закрытие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ShopClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	closure, err := scanClosure(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan closure: %v", ErrScanRow, err)
	}

	return closure, nil
}

// GetByDate получает все закрытия на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error) {
	return r.list(ctx, "GetByDate", squirrel.Eq{"closure_date": types.DateOnly(date)})
}

// ListByPeriod получает закрытия в диапазоне дат включительно
func (r *Repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]domain.ShopClosure, error) {
	return r.list(ctx, "ListByPeriod", squirrel.And{
		squirrel.GtOrEq{"closure_date": types.DateOnly(from)},
		squirrel.LtOrEq{"closure_date": types.DateOnly(to)},
	})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.ShopClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(where).
		OrderBy("closure_date ASC", "is_full_day DESC", "start_minute ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	closures := make([]domain.ShopClosure, 0)
	for rows.Next() {
		closure, err := scanClosure(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan closure: %v", ErrScanRow, op, err)
		}
		closures = append(closures, *closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return closures, nil
}

// Update обновляет закрытие
func (r *Repository) Update(ctx context.Context, closure *domain.ShopClosure) (*domain.ShopClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("closure_date", types.DateOnly(closure.Date)).
		Set("reason", closure.Reason).
		Set("is_full_day", closure.IsFullDay).
		Set("start_minute", closure.StartTime).
		Set("end_minute", closure.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": closure.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// Delete удаляет закрытие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClosure(row rowScanner) (*domain.ShopClosure, error) {
	var closure domain.ShopClosure
	var startMinute, endMinute sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&closure.ID,
		&closure.Date,
		&closure.Reason,
		&closure.IsFullDay,
		&startMinute,
		&endMinute,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startMinute.Valid {
		start := types.TimeOfDay(startMinute.Int64)
		closure.StartTime = &start
	}
	if endMinute.Valid {
		end := types.TimeOfDay(endMinute.Int64)
		closure.EndTime = &end
	}
	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return &closure, nil
}
