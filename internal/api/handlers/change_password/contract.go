package change_password

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/users/models"
)

type UserService interface {
	ChangePassword(ctx context.Context, username string, req *models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
