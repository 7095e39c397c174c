package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"a.id",
	"a.customer_id",
	"a.service_id",
	"a.start_time",
	"a.end_time",
	"a.is_completed",
	"a.created_at",
	"a.updated_at",
}

var detailsColumns = append(append([]string{}, appointmentColumns...),
	"c.first_name",
	"c.last_name",
	"c.email",
	"c.phone",
	"s.service_name",
	"s.price",
)

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория записей.
// Время из БД приводится к часовому поясу бизнеса loc.
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Create создает новую запись. Если ID не задан, генерируется новый.
// Пересечение с существующей записью на уровне БД возвращает ErrOverlap.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableAppointments).
		Columns(
			"id",
			"customer_id",
			"service_id",
			"start_time",
			"end_time",
			"is_completed",
		).
		Values(
			appointment.ID,
			appointment.CustomerID,
			appointment.ServiceID,
			appointment.Start,
			appointment.End,
			appointment.IsCompleted,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrOverlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appointment, nil
}

// Update переносит запись: меняет услугу и интервал
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAppointments).
		Set("service_id", appointment.ServiceID).
		Set("start_time", appointment.Start).
		Set("end_time", appointment.End).
		Set("is_completed", appointment.IsCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", appointment.ID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isOverlapViolation(err) {
			return ErrOverlap
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments + " a").
		Where("a.id = ?", id)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	appointment, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// GetDetailsByID получает запись вместе с данными клиента и услуги
func (r *Repository) GetDetailsByID(ctx context.Context, id uuid.UUID) (*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsSelect().
		Where("a.id = ?", id).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %w", ErrBuildQuery, err)
	}

	details, err := r.scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan appointment: %w", ErrScanRow, err)
	}

	return details, nil
}

// ExistsOverlapping проверяет, есть ли запись, пересекающаяся с [start, end).
// Условие: existing.start < end AND existing.end > start, по всем записям, включая завершенные.
func (r *Repository) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableAppointments).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1).
		ToSql()

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

// ListDetails получает записи с данными клиента и услуги, отсортированные по времени начала
func (r *Repository) ListDetails(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.detailsSelect()

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where("a.customer_id = ?", *filter.CustomerID)
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.is_completed": false})
	}
	if filter.StartFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_time": *filter.StartTo})
	}

	query, args, err := selectBuilder.OrderBy("a.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		details, err := r.scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan appointment: %w", ErrScanRow, err)
		}
		result = append(result, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// ListDueIDs возвращает ID незавершенных записей, закончившихся к моменту now (end <= now)
func (r *Repository) ListDueIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(tableAppointments).
		Where(squirrel.Eq{"is_completed": false}).
		Where(squirrel.LtOrEq{"end_time": now}).
		OrderBy("end_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDueIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListDueIDs - scan id: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDueIDs - rows error: %w", ErrScanRow, err)
	}

	return ids, nil
}

// MarkCompleted одним запросом отмечает записи завершенными.
// Уже завершенные не затрагиваются, возвращается число измененных строк.
func (r *Repository) MarkCompleted(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAppointments).
		Set("is_completed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": uuidStrings(ids)}).
		Where(squirrel.Eq{"is_completed": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkCompleted - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkCompleted - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkCompleted - get rows affected: %w", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableAppointments).
		Where("id = ?", id).
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
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From(tableAppointments + " a").
		Join(tableCustomers + " c ON c.id = a.customer_id").
		Join(tableServices + " s ON s.id = a.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.ServiceID,
		&a.Start,
		&a.End,
		&a.IsCompleted,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.localize(&a)
	return &a, nil
}

func (r *Repository) scanDetails(row rowScanner) (*domain.AppointmentDetails, error) {
	var d domain.AppointmentDetails
	err := row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.ServiceID,
		&d.Start,
		&d.End,
		&d.IsCompleted,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CustomerFirstName,
		&d.CustomerLastName,
		&d.CustomerEmail,
		&d.CustomerPhone,
		&d.ServiceName,
		&d.ServicePrice,
	)
	if err != nil {
		return nil, err
	}

	r.localize(&d.Appointment)
	return &d, nil
}

func (r *Repository) localize(a *domain.Appointment) {
	a.Start = a.Start.In(r.loc)
	a.End = a.End.In(r.loc)
}

// squirrel разворачивает массивы в IN (...), а uuid.UUID это [16]byte,
// поэтому списки ID передаем строками
func uuidStrings(ids []uuid.UUID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}

func isOverlapViolation(err error) bool {
	return pgerr.IsExclusionViolation(err) && pgerr.Constraint(err) == constraintNoOverlap
}
