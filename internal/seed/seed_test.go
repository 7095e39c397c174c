package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businesshours/models"
)

type fakeAccounts struct {
	users []*domain.User
	pass  map[string]string
}

func (f *fakeAccounts) Count(context.Context) (int, error) { return len(f.users), nil }

func (f *fakeAccounts) CreateAccount(_ context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if f.pass == nil {
		f.pass = make(map[string]string)
	}
	u := &domain.User{Username: username, Role: role, Enabled: true}
	f.users = append(f.users, u)
	f.pass[username] = password
	return u, nil
}

type fakeHours struct {
	ranges []*models.SaveRangeRequest
}

func (f *fakeHours) Count(context.Context) (int, error) { return len(f.ranges), nil }

func (f *fakeHours) SaveRange(_ context.Context, req *models.SaveRangeRequest) (*models.BusinessHourResponse, error) {
	f.ranges = append(f.ranges, req)
	return &models.BusinessHourResponse{DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime, IsOpen: req.IsOpen}, nil
}

type fakeInfo struct {
	info *domain.BusinessInfo
}

func (f *fakeInfo) Exists(context.Context) (bool, error) { return f.info != nil, nil }

func (f *fakeInfo) Save(_ context.Context, info *domain.BusinessInfo) error {
	f.info = info
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestLoad_Default(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "owner", data.Owner.Username)
	assert.Equal(t, "Owner1234", data.Owner.Password)
	assert.Equal(t, "Default Business", data.BusinessInfo.Name)
	require.Len(t, data.BusinessHours, 1)
	assert.Len(t, data.BusinessHours[0].Days, 7)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner:\n  username: boss\n  password: Boss12345\n"), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boss", data.Owner.Username)
	assert.Empty(t, data.BusinessHours)

	require.NoError(t, os.WriteFile(path, []byte("business_info:\n  name: x\n"), 0o600))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSeeder_Run(t *testing.T) {
	accounts, hours, info := &fakeAccounts{}, &fakeHours{}, &fakeInfo{}
	seeder := NewSeeder(accounts, hours, info, nopLogger{})

	data, err := Load("")
	require.NoError(t, err)
	require.NoError(t, seeder.Run(context.Background(), data))

	require.Len(t, accounts.users, 1)
	assert.Equal(t, domain.RoleOwner, accounts.users[0].Role)
	assert.Equal(t, "Owner1234", accounts.pass["owner"])

	require.Len(t, hours.ranges, 7)
	assert.Equal(t, int(0), hours.ranges[0].DayOfWeek)
	assert.Equal(t, "09:00", hours.ranges[0].StartTime)
	assert.Equal(t, "17:00", hours.ranges[6].EndTime)

	require.NotNil(t, info.info)
	assert.Equal(t, "Default Business", info.info.Name)
	assert.Nil(t, info.info.Description)

	// повторный запуск ничего не создает
	require.NoError(t, seeder.Run(context.Background(), data))
	assert.Len(t, accounts.users, 1)
	assert.Len(t, hours.ranges, 7)
}

func TestSeeder_UnknownDay(t *testing.T) {
	seeder := NewSeeder(&fakeAccounts{}, &fakeHours{}, &fakeInfo{}, nopLogger{})

	err := seeder.Run(context.Background(), &Data{
		Owner:         Owner{Username: "owner", Password: "Owner1234"},
		BusinessHours: []HourRange{{Days: []string{"Blursday"}, Start: "09:00", End: "17:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidData)
}
