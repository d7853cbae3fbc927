package availability

import "errors"

var (
	// ErrInvalidConfiguration возвращается, когда настройки расписания
	// содержат непарсящееся время — это ошибка вызывающей стороны
	ErrInvalidConfiguration = errors.New("availability: invalid schedule configuration")
)
