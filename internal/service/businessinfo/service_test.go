package businessinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	businessInfoRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/businessinfo"
	"github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

type memoryInfo struct {
	info *domain.BusinessInfo
}

func (m *memoryInfo) Get(context.Context) (*domain.BusinessInfo, error) {
	if m.info == nil {
		return nil, businessInfoRepo.ErrBusinessInfoNotFound
	}
	out := *m.info
	return &out, nil
}

func (m *memoryInfo) Save(_ context.Context, info *domain.BusinessInfo) error {
	stored := *info
	m.info = &stored
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUpdate(t *testing.T) {
	repo := &memoryInfo{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	exists, err := svc.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, ErrBusinessInfoNotFound)

	got, err := svc.Update(ctx, &models.UpdateBusinessInfoRequest{
		Name:                " Barber Shop ",
		Description:         ptr.Ptr("Best cuts"),
		BackgroundImagePath: ptr.Ptr("uploads/business_background/bg.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Barber Shop", got.Name)
	assert.Equal(t, domain.BusinessInfoID, repo.info.ID)

	// Фон сохраняется, если новый путь не передан
	got, err = svc.Update(ctx, &models.UpdateBusinessInfoRequest{Name: "Barber Shop"})
	require.NoError(t, err)
	assert.Equal(t, "uploads/business_background/bg.png", ptr.Deref(got.BackgroundImagePath, ""))
	assert.Nil(t, got.Description)

	got, err = svc.Update(ctx, &models.UpdateBusinessInfoRequest{Name: "Barber Shop", RemoveBackground: true})
	require.NoError(t, err)
	assert.Nil(t, got.BackgroundImagePath)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&memoryInfo{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateBusinessInfoRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
