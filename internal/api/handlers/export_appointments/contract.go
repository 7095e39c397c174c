package export_appointments

import (
	"context"
	"io"
)

type AppointmentService interface {
	ExportXML(ctx context.Context, w io.Writer, activeOnly bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
