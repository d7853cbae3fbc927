package admin_appointments

import (
	"net/url"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/internal/service/appointments/models"
	createAppointment "github.com/mundoinsolito/manicura/internal/usecase/create_appointment"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// CreateAppointmentRequest запрос на создание записи администратором
type CreateAppointmentRequest struct {
	Cedula    string  `json:"cedula"`
	Name      string  `json:"name,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	ServiceID string  `json:"serviceId"`
	Date      string  `json:"date"` // "2025-07-15"
	Time      string  `json:"time"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.AdminRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.AdminRequest{
		Cedula:    r.Cedula,
		Name:      r.Name,
		Phone:     r.Phone,
		ServiceID: r.ServiceID,
		Date:      date,
		Time:      startTime,
		Notes:     r.Notes,
	}, nil
}

// AppointmentCreatedResponse ответ о созданной администратором записи
type AppointmentCreatedResponse struct {
	AppointmentID string  `json:"appointmentId"`
	ClientID      string  `json:"clientId"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ServiceName   string  `json:"serviceName"`
	PaymentAmount float64 `json:"paymentAmount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.AdminResponse) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		AppointmentID: resp.AppointmentID,
		ClientID:      resp.ClientID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		ServiceName:   resp.ServiceName,
		PaymentAmount: resp.PaymentAmount,
	}
}

// UpdatePaymentRequest запрос на регистрацию оплаты
type UpdatePaymentRequest struct {
	PaymentStatus string  `json:"paymentStatus"` // "pending" | "partial" | "full"
	Amount        float64 `json:"amount"`
}

// PaymentRecordedResponse ответ о зарегистрированной оплате
type PaymentRecordedResponse struct {
	AppointmentID string  `json:"appointmentId"`
	PaymentStatus string  `json:"paymentStatus"`
	Amount        float64 `json:"amount"`
	IncomeAmount  float64 `json:"incomeAmount"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// parseListQuery разбирает query-параметры выборки записей
func parseListQuery(query url.Values) (*models.GetAppointmentsRequest, error) {
	req := &models.GetAppointmentsRequest{}

	if clientID := query.Get("clientId"); clientID != "" {
		req.ClientID = &clientID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}
	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	return req, nil
}
