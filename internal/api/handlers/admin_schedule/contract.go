package admin_schedule

import (
	"context"

	"github.com/mundoinsolito/manicura/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error)
	ListBlockedTimes(ctx context.Context) (*models.BlockedTimeListResponse, error)
	DeleteBlockedTime(ctx context.Context, id string) error

	SaveCustomSchedule(ctx context.Context, req *models.SaveCustomScheduleRequest) (*models.CustomScheduleResponse, error)
	ListCustomSchedules(ctx context.Context) (*models.CustomScheduleListResponse, error)
	DeleteCustomSchedule(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
