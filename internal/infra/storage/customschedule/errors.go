package customschedule

import "errors"

var (
	// ErrScheduleNotFound расписание на дату не найдено
	ErrScheduleNotFound = errors.New("custom schedule not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")
	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("failed to scan row")
)
