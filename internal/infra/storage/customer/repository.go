package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

const (
	tableCustomers = "customers"

	constraintEmail = "customers_email_key"
	constraintPhone = "customers_phone_key"
)

var columns = []string{
	"c.id",
	"c.user_id",
	"u.username",
	"c.first_name",
	"c.last_name",
	"c.email",
	"c.phone",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableCustomers).
		Columns("id", "user_id", "first_name", "last_name", "email", "phone").
		Values(
			customer.ID,
			nullUUID(customer.UserID),
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.Phone,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return customer, nil
}

// Update сохраняет контактные данные и привязку к аккаунту
func (r *Repository) Update(ctx context.Context, customer *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableCustomers).
		Set("user_id", nullUUID(customer.UserID)).
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", customer.ID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByID", squirrel.Expr("c.id = ?", id))
}

// GetByEmailAndPhone ищет клиента с точным совпадением email и телефона
func (r *Repository) GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByEmailAndPhone", squirrel.Eq{"c.email": email, "c.phone": phone})
}

// GetByUsername ищет клиента, привязанного к аккаунту username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"u.username": username})
}

// ExistsByEmail проверяет, занят ли email другим клиентом (кроме excludeID)
func (r *Repository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "ExistsByEmail", squirrel.Eq{"email": email}, excludeID)
}

// ExistsByPhone проверяет, занят ли телефон другим клиентом (кроме excludeID)
func (r *Repository) ExistsByPhone(ctx context.Context, phone string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "ExistsByPhone", squirrel.Eq{"phone": phone}, excludeID)
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Sqlizer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableCustomers + " c").
		LeftJoin("users u ON u.id = c.user_id").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	var (
		customer domain.Customer
		userID   uuid.NullUUID
		username sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&userID,
		&username,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %w", ErrScanRow, op, err)
	}

	if userID.Valid {
		id := userID.UUID
		customer.UserID = &id
	}
	if username.Valid {
		customer.Username = &username.String
	}

	return &customer, nil
}

func (r *Repository) exists(ctx context.Context, op string, pred squirrel.Sqlizer, excludeID *uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From(tableCustomers).
		Where(pred)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where("id <> ?", *excludeID)
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
	}

	return true, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// uniqueConflict переводит нарушение уникальности в ошибку репозитория
func uniqueConflict(err error) error {
	if !pgerr.IsUniqueViolation(err) {
		return nil
	}
	switch pgerr.Constraint(err) {
	case constraintEmail:
		return ErrEmailTaken
	case constraintPhone:
		return ErrPhoneTaken
	default:
		return nil
	}
}
