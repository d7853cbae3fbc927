package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInactive возвращается при попытке забронировать выключенную услугу
	ErrServiceInactive = errors.New("service is not active")

	// ErrSlotUnavailable возвращается, когда выбранное время уже недоступно
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrDateInPast возвращается при попытке записаться на прошедший момент
	ErrDateInPast = errors.New("appointment date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
