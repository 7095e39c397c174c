package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

type memoryUsers struct {
	items map[string]*domain.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{items: make(map[string]*domain.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.items[user.Username]; ok {
		return nil, userRepo.ErrUsernameTaken
	}
	user.ID = uuid.New()
	stored := *user
	m.items[user.Username] = &stored
	return user, nil
}

func (m *memoryUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := m.items[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (m *memoryUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.items[username]
	return ok, nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	for _, u := range m.items {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return userRepo.ErrUserNotFound
}

func (m *memoryUsers) Delete(_ context.Context, id uuid.UUID) error {
	for name, u := range m.items {
		if u.ID == id {
			delete(m.items, name)
			return nil
		}
	}
	return userRepo.ErrUserNotFound
}

func (m *memoryUsers) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

type recordingLocker struct {
	keys []string
}

func (l *recordingLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.keys = append(l.keys, key)
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *memoryUsers, *recordingLocker) {
	repo := newMemoryUsers()
	locker := &recordingLocker{}
	return NewService(repo, locker, nopLogger{}, bcrypt.MinCost), repo, locker
}

func TestAddOwner(t *testing.T) {
	svc, repo, locker := newTestService()
	ctx := context.Background()

	created, err := svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "boss", Password: "Secret123", ConfirmPassword: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleOwner), created.Role)
	assert.True(t, created.Enabled)
	assert.Equal(t, []string{domain.LockKeyUsernames}, locker.keys)

	stored := repo.items["boss"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")))
}

func TestAddOwner_ValidationOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "boss", Password: "Secret123", ConfirmPassword: "Secret123"})
	require.NoError(t, err)

	// Занятый username сообщается раньше несовпадения паролей
	_, err = svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "boss", Password: "Secret123", ConfirmPassword: "Other1234"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "boss2", Password: "Secret123", ConfirmPassword: "Other1234"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "bo", Password: "Secret123", ConfirmPassword: "Secret123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddOwner(ctx, &models.AddOwnerRequest{Username: "boss3", Password: "short", ConfirmPassword: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "jodoe", "Secret123", domain.RoleCustomer)
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "jodoe", &models.ChangePasswordRequest{OldPassword: "wrong-pass", NewPassword: "NewSecret1", ConfirmNewPassword: "NewSecret1"})
	assert.ErrorIs(t, err, domain.ErrOldPasswordIncorrect)

	err = svc.ChangePassword(ctx, "jodoe", &models.ChangePasswordRequest{OldPassword: "Secret123", NewPassword: "NewSecret1", ConfirmNewPassword: "NewSecret2"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	err = svc.ChangePassword(ctx, "jodoe", &models.ChangePasswordRequest{OldPassword: "Secret123", NewPassword: "NewSecret1", ConfirmNewPassword: "NewSecret1"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.items["jodoe"].PasswordHash), []byte("NewSecret1")))

	err = svc.ChangePassword(ctx, "ghost", &models.ChangePasswordRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, domain.DefaultOwnerUsername, "Owner1234", domain.RoleOwner)
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "jodoe", "Secret123", domain.RoleCustomer)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, domain.DefaultOwnerUsername), domain.ErrDefaultOwnerProtected)
	require.NoError(t, svc.DeleteAccount(ctx, "jodoe"))
	assert.ErrorIs(t, svc.DeleteAccount(ctx, "jodoe"), ErrUserNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, repo.items, domain.DefaultOwnerUsername)
}

func TestCreateAccount_MapsUniqueViolation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "jodoe", "Secret123", domain.RoleCustomer)
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "jodoe", "Secret123", domain.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
