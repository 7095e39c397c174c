package delete_account

import "context"

type UserService interface {
	DeleteAccount(ctx context.Context, username string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
