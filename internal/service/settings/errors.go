package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidBusinessHours возвращается, когда открытие не раньше закрытия
	ErrInvalidBusinessHours = errors.New("opening time must be before closing time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
