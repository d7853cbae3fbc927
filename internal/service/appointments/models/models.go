package models

import (
	"errors"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetAppointmentsRequest запрос на выборку записей с фильтрацией
type GetAppointmentsRequest struct {
	ClientID         *string    `json:"clientId,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ClientID:         r.ClientID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !status.Valid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            string  `json:"id"`
	ClientID      string  `json:"clientId"`
	ServiceID     string  `json:"serviceId"`
	Date          string  `json:"date"` // "2025-07-15"
	Time          string  `json:"time"` // "10:00"
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentAmount float64 `json:"paymentAmount"`
	Notes         *string `json:"notes,omitempty"`

	// Денормализованные данные
	ClientName   *string  `json:"clientName,omitempty"`
	ClientPhone  *string  `json:"clientPhone,omitempty"`
	ClientCedula *string  `json:"clientCedula,omitempty"`
	ServiceName  *string  `json:"serviceName,omitempty"`
	ServicePrice *float64 `json:"servicePrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ClientAppointmentResponse публичный ответ о записи клиента
// Без внутренних идентификаторов и заметок администратора
type ClientAppointmentResponse struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentAmount float64 `json:"paymentAmount"`
	ServiceName   *string `json:"serviceName,omitempty"`
}

// ClientStatusResponse публичный ответ на проверку статуса по cédula
type ClientStatusResponse struct {
	ClientName   string                      `json:"clientName"`
	Appointments []ClientAppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:            a.ID,
		ClientID:      a.ClientID,
		ServiceID:     a.ServiceID,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		PaymentAmount: a.PaymentAmount,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}

	if a.Client != nil {
		resp.ClientName = &a.Client.Name
		resp.ClientPhone = &a.Client.Phone
		resp.ClientCedula = &a.Client.Cedula
	}
	if a.Service != nil {
		resp.ServiceName = &a.Service.Name
		resp.ServicePrice = &a.Service.Price
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

// ClientStatusFromDomain собирает публичный ответ для клиента
func ClientStatusFromDomain(client *domain.Client, appointments []*domain.Appointment) *ClientStatusResponse {
	resp := &ClientStatusResponse{
		ClientName:   client.Name,
		Appointments: make([]ClientAppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		item := ClientAppointmentResponse{
			Date:          a.Date.Format(domain.DateFormat),
			Time:          a.Time.String(),
			Status:        string(a.Status),
			PaymentStatus: string(a.PaymentStatus),
			PaymentAmount: a.PaymentAmount,
		}
		if a.Service != nil {
			item.ServiceName = &a.Service.Name
		}
		resp.Appointments = append(resp.Appointments, item)
	}

	return resp
}
