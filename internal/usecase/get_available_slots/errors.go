package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDuration возвращается при отрицательной длительности
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidConfiguration возвращается при некорректных настройках расписания
	ErrInvalidConfiguration = errors.New("invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
