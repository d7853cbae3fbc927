package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Cedula) == "" {
		return fmt.Errorf("%w: cedula is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	if req.PaymentType != PaymentTypePartial && req.PaymentType != PaymentTypeFull {
		return fmt.Errorf("%w: paymentType must be %q or %q", ErrInvalidInput, PaymentTypePartial, PaymentTypeFull)
	}
	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

func validateAdminRequest(req *AdminRequest) error {
	if strings.TrimSpace(req.Cedula) == "" {
		return fmt.Errorf("%w: cedula is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateNotInPast отклоняет запись на прошедший момент
func validateNotInPast(date time.Time, start types.TimeString, now time.Time) error {
	minutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	slot := time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, now.Location())
	if slot.Before(now) {
		return ErrDateInPast
	}
	return nil
}
