package businesshour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

const tableBusinessHours = "business_hours"

var columns = []string{"id", "day_of_week", "start_time", "end_time", "is_open"}

// Repository репозиторий для работы с часами работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет новый диапазон
func (r *Repository) Create(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBusinessHours).
		Columns("day_of_week", "start_time", "end_time", "is_open").
		Values(int(hour.DayOfWeek), hour.StartTime, hour.EndTime, hour.IsOpen).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hour.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return hour, nil
}

// Update обновляет существующий диапазон
func (r *Repository) Update(ctx context.Context, hour *domain.BusinessHour) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBusinessHours).
		Set("day_of_week", int(hour.DayOfWeek)).
		Set("start_time", hour.StartTime).
		Set("end_time", hour.EndTime).
		Set("is_open", hour.IsOpen).
		Where(squirrel.Eq{"id": hour.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusinessHourNotFound
	}

	return nil
}

// GetByID получает диапазон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableBusinessHours).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	hour, err := scanHour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business hour: %w", ErrScanRow, err)
	}

	return hour, nil
}

// ListByDay получает диапазоны дня недели, отсортированные по началу.
// openOnly оставляет только открытые диапазоны.
func (r *Repository) ListByDay(ctx context.Context, day time.Weekday, openOnly bool) ([]*domain.BusinessHour, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableBusinessHours).
		Where(squirrel.Eq{"day_of_week": int(day)})

	if openOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_open": true})
	}

	return r.list(ctx, "ListByDay", selectBuilder.OrderBy("start_time ASC"))
}

// List получает все диапазоны недели
func (r *Repository) List(ctx context.Context) ([]*domain.BusinessHour, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableBusinessHours).
		OrderBy("day_of_week ASC", "start_time ASC")

	return r.list(ctx, "List", selectBuilder)
}

// ExistsOverlapping проверяет, есть ли другой открытый диапазон того же дня,
// пересекающийся с [start, end). excludeID исключает редактируемый диапазон.
func (r *Repository) ExistsOverlapping(
	ctx context.Context,
	day time.Weekday,
	start, end types.TimeString,
	excludeID *int64,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From(tableBusinessHours).
		Where(squirrel.Eq{"day_of_week": int(day)}).
		Where(squirrel.Eq{"is_open": true}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - rows error: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Delete удаляет диапазон
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBusinessHours).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusinessHourNotFound
	}

	return nil
}

// Count возвращает количество диапазонов (используется при начальном заполнении)
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableBusinessHours).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHour, 0)
	for rows.Next() {
		hour, err := scanHour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan business hour: %w", ErrScanRow, op, err)
		}
		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return hours, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHour(row rowScanner) (*domain.BusinessHour, error) {
	var (
		hour domain.BusinessHour
		day  int
	)

	err := row.Scan(&hour.ID, &day, &hour.StartTime, &hour.EndTime, &hour.IsOpen)
	if err != nil {
		return nil, err
	}

	hour.DayOfWeek = time.Weekday(day)
	return &hour, nil
}
