package get_client_status

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetClientStatus(ctx context.Context, cedula string) (*models.ClientStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
