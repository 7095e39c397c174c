package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

// Service сервис аккаунтов
type Service struct {
	repo       UserRepository
	locker     Locker
	logger     Logger
	bcryptCost int
}

// NewService создает новый экземпляр сервиса аккаунтов.
// bcryptCost <= 0 означает bcrypt.DefaultCost.
func NewService(repo UserRepository, locker Locker, logger Logger, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		locker:     locker,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// ValidateNewUser проверяет данные нового аккаунта.
// Порядок: формат, занятость username, совпадение паролей.
// Вызывающий держит блокировку domain.LockKeyUsernames.
func (s *Service) ValidateNewUser(ctx context.Context, username, password, confirmPassword string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%w: ValidateNewUser - username check: %w", ErrInternal, err)
	}
	if exists {
		return domain.ErrUsernameTaken
	}

	if password != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	return nil
}

// CreateAccount хеширует пароль и сохраняет аккаунт. Проверки выполняет ValidateNewUser.
func (s *Service) CreateAccount(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Enabled:      true,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: CreateAccount - repository error: %w", ErrInternal, err)
	}

	return user, nil
}

// AddOwner добавляет аккаунт владельца
func (s *Service) AddOwner(ctx context.Context, req *models.AddOwnerRequest) (*models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)

	var created *domain.User
	err := s.locker.WithLock(ctx, domain.LockKeyUsernames, func(ctx context.Context) error {
		if err := s.ValidateNewUser(ctx, username, req.Password, req.ConfirmPassword); err != nil {
			return err
		}

		var err error
		created, err = s.CreateAccount(ctx, username, req.Password, domain.RoleOwner)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("AddOwner: %v", err)
		} else {
			s.logger.Warn("AddOwner: username=%s rejected: %v", username, err)
		}
		return nil, err
	}

	s.logger.Info("AddOwner: created owner id=%s username=%s", created.ID, created.Username)
	return models.FromDomainUser(created), nil
}

// ChangePassword меняет пароль после проверки старого
func (s *Service) ChangePassword(ctx context.Context, username string, req *models.ChangePasswordRequest) error {
	user, err := s.getByUsername(ctx, username)
	if err != nil {
		return err
	}

	// 1. Старый пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		s.logger.Warn("ChangePassword: old password mismatch for username=%s", username)
		return domain.ErrOldPasswordIncorrect
	}

	// 2. Подтверждение
	if req.NewPassword != req.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := s.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ChangePassword: repository error for username=%s: %v", username, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password changed for username=%s", username)
	return nil
}

// DeleteAccount удаляет аккаунт. Аккаунт владельца по умолчанию удалить нельзя.
// Клиент аккаунта остается как гостевой.
func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	if username == domain.DefaultOwnerUsername {
		s.logger.Warn("DeleteAccount: attempt to delete default owner")
		return domain.ErrDefaultOwnerProtected
	}

	user, err := s.getByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("DeleteAccount: repository error for username=%s: %v", username, err)
		return fmt.Errorf("%w: DeleteAccount - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("DeleteAccount: deleted username=%s", username)
	return nil
}

// Get получает аккаунт по username
func (s *Service) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.getByUsername(ctx, username)
}

// Count количество аккаунтов
func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: Count - repository error: %w", ErrInternal, err)
	}
	return count, nil
}

// HashPassword bcrypt-хеш пароля
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: HashPassword: %w", ErrInternal, err)
	}
	return string(hash), nil
}

func (s *Service) getByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("user username=%s not found", username)
			return nil, ErrUserNotFound
		}
		s.logger.Error("repository error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: GetByUsername - repository error: %w", ErrInternal, err)
	}
	return user, nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < domain.MinUsernameLength || n > domain.MaxNameLength {
		return fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalidInput, domain.MinUsernameLength, domain.MaxNameLength)
	}
	return nil
}

func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < domain.MinPasswordLength || n > domain.MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters", ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}
	return nil
}
