package finances

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда запись не найдена
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
