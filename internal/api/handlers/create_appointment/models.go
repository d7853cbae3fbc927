package create_appointment

import (
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	createAppointment "github.com/mundoinsolito/manicura/internal/usecase/create_appointment"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Cedula      string  `json:"cedula"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	ServiceID   string  `json:"serviceId"`
	Date        string  `json:"date"` // "2025-07-15"
	Time        string  `json:"time"` // "10:00"
	PaymentType string  `json:"paymentType"` // "partial" | "full"
	TotalAmount float64 `json:"totalAmount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	AppointmentID string  `json:"appointmentId"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ServiceName   string  `json:"serviceName"`
	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
	WhatsAppURL   string  `json:"whatsappUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Cedula:      r.Cedula,
		Name:        r.Name,
		Phone:       r.Phone,
		ServiceID:   r.ServiceID,
		Date:        date,
		Time:        startTime,
		PaymentType: r.PaymentType,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		AppointmentID: resp.AppointmentID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		ServiceName:   resp.ServiceName,
		TotalAmount:   resp.TotalAmount,
		DepositAmount: resp.DepositAmount,
		WhatsAppURL:   resp.WhatsAppURL,
	}
}
