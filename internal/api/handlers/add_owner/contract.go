package add_owner

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

type UserService interface {
	AddOwner(ctx context.Context, req *models.AddOwnerRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
