package models

import (
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// Request модели

// CreateBlockedTimeRequest запрос на блокировку интервала
// При FullDay = true границы интервала игнорируются
type CreateBlockedTimeRequest struct {
	Date      string  `json:"date"` // "2025-07-15"
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	FullDay   bool    `json:"fullDay"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateBlockedTimeRequest) ToDomain() (*domain.BlockedTime, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.BlockedTime{
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
		Reason:    r.Reason,
		FullDay:   r.FullDay,
	}, nil
}

// SaveCustomScheduleRequest запрос на расписание для конкретной даты
// Пустой список часов означает закрытый день
type SaveCustomScheduleRequest struct {
	Date  string   `json:"date"` // "2025-07-15"
	Hours []string `json:"hours"`
}

// ToDomain конвертирует запрос в domain модель
func (r *SaveCustomScheduleRequest) ToDomain() (*domain.CustomSchedule, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	hours := make([]types.TimeString, 0, len(r.Hours))
	for _, h := range r.Hours {
		hours = append(hours, types.TimeString(h))
	}

	return &domain.CustomSchedule{
		Date:  date,
		Hours: hours,
	}, nil
}

// Response модели

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	FullDay   bool    `json:"fullDay"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// CustomScheduleResponse ответ с расписанием на дату
type CustomScheduleResponse struct {
	ID    string   `json:"id"`
	Date  string   `json:"date"`
	Hours []string `json:"hours"`
}

// CustomScheduleListResponse ответ со списком расписаний
type CustomScheduleListResponse struct {
	Schedules []CustomScheduleResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(bt *domain.BlockedTime) *BlockedTimeResponse {
	if bt == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:        bt.ID,
		Date:      bt.Date.Format(domain.DateFormat),
		StartTime: bt.StartTime.String(),
		EndTime:   bt.EndTime.String(),
		Reason:    bt.Reason,
		FullDay:   bt.FullDay,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blocked []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(blocked)),
	}
	for _, bt := range blocked {
		resp.BlockedTimes = append(resp.BlockedTimes, *FromDomainBlockedTime(bt))
	}
	return resp
}

// FromDomainCustomSchedule конвертирует domain модель в DTO
func FromDomainCustomSchedule(cs *domain.CustomSchedule) *CustomScheduleResponse {
	if cs == nil {
		return nil
	}

	hours := make([]string, 0, len(cs.Hours))
	for _, h := range cs.Hours {
		hours = append(hours, h.String())
	}

	return &CustomScheduleResponse{
		ID:    cs.ID,
		Date:  cs.Date.Format(domain.DateFormat),
		Hours: hours,
	}
}

// FromDomainCustomScheduleList конвертирует список domain моделей в DTO
func FromDomainCustomScheduleList(schedules []*domain.CustomSchedule) *CustomScheduleListResponse {
	resp := &CustomScheduleListResponse{
		Schedules: make([]CustomScheduleResponse, 0, len(schedules)),
	}
	for _, cs := range schedules {
		resp.Schedules = append(resp.Schedules, *FromDomainCustomSchedule(cs))
	}
	return resp
}
