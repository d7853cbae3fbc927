package admin_appointments

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/appointments/models"
	createAppointment "github.com/mundoinsolito/manicura/internal/usecase/create_appointment"
	recordPayment "github.com/mundoinsolito/manicura/internal/usecase/record_payment"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error)
	List(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
}

type CreateAppointmentUseCase interface {
	ExecuteAdmin(ctx context.Context, req *createAppointment.AdminRequest) (*createAppointment.AdminResponse, error)
}

type RecordPaymentUseCase interface {
	Execute(ctx context.Context, req *recordPayment.Request) (*recordPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
