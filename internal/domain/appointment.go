package domain

import (
	"time"

	"github.com/mundoinsolito/manicura/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every valid appointment status
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Valid returns true if the status is one of the known values
func (s AppointmentStatus) Valid() bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus represents the payment state of an appointment,
// independent of the appointment status
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentFull    PaymentStatus = "full"
)

// PaymentStatuses lists every valid payment status
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPartial,
	PaymentFull,
}

// Valid returns true if the payment status is one of the known values
func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment represents a booked visit for one client and one service.
// When a booking groups several services/promotions, the grouped total
// travels in PaymentAmount and Notes; the appointment links the first
// selected service.
type Appointment struct {
	ID            string
	ClientID      string
	ServiceID     string
	Date          time.Time
	Time          types.TimeString
	Status        AppointmentStatus
	PaymentStatus PaymentStatus
	PaymentAmount float64
	Notes         *string

	CreatedAt time.Time

	// Resolved references, populated by the repository on joined reads
	Client  *Client
	Service *Service
}

// IsCancelled returns true if the appointment no longer occupies a slot
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiedDuration returns the duration in minutes this appointment
// blocks on the agenda. Falls back when the service reference is gone.
func (a *Appointment) OccupiedDuration() int {
	if a.Service != nil && a.Service.Duration > 0 {
		return a.Service.Duration
	}
	return FallbackAppointmentDurationMinutes
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ClientID         *string
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	Status           *AppointmentStatus
	IncludeCancelled bool // Включать ли отмененные записи
}
