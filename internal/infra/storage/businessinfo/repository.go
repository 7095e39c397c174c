package businessinfo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

const tableBusinessInfo = "business_info"

var (
	// ErrBusinessInfoNotFound профиль бизнеса еще не создан
	ErrBusinessInfoNotFound = errors.New("businessinfo.repository: business info not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("businessinfo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("businessinfo.repository: failed to execute query")
)

// Repository репозиторий профиля бизнеса (одна строка с id = 1)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает профиль бизнеса
func (r *Repository) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "background_path", "updated_at").
		From(tableBusinessInfo).
		Where(squirrel.Eq{"id": domain.BusinessInfoID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var (
		info           domain.BusinessInfo
		description    sql.NullString
		backgroundPath sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ID,
		&info.Name,
		&description,
		&backgroundPath,
		&info.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business info: %w", ErrExecQuery, err)
	}

	if description.Valid {
		info.Description = &description.String
	}
	if backgroundPath.Valid {
		info.BackgroundImagePath = &backgroundPath.String
	}

	return &info, nil
}

// Save создает или обновляет профиль бизнеса
func (r *Repository) Save(ctx context.Context, info *domain.BusinessInfo) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBusinessInfo).
		Columns("id", "name", "description", "background_path").
		Values(domain.BusinessInfoID, info.Name, info.Description, info.BackgroundImagePath).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			background_path = EXCLUDED.background_path,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	info.ID = domain.BusinessInfoID
	return nil
}
