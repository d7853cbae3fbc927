package promotions

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда промоакция не найдена
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidValidityWindow возвращается, когда окно действия задано наоборот
	ErrInvalidValidityWindow = errors.New("validUntil is before validFrom")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
