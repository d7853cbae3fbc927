// Package availability computes the bookable start times for a single
// date. It is a pure function of its inputs: the caller loads settings,
// overrides, blocks and existing appointments, the engine performs no
// I/O and keeps no state. Both the public booking flow and the admin
// agenda share this one implementation.
package availability

import (
	"fmt"
	"time"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// Hours настройки рабочих часов, участвующие в генерации слотов
type Hours struct {
	Opening     types.TimeString
	Closing     types.TimeString
	Interval    int // шаг генерации в минутах
	Mode        domain.ScheduleMode
	ManualHours []types.TimeString
}

// Block закрытый интервал [Start, End) либо закрытие всего дня
type Block struct {
	Start   types.TimeString
	End     types.TimeString
	FullDay bool
}

// Occupied занятый диапазон существующей записи
// Отмененные записи сюда попадать не должны
type Occupied struct {
	Start    types.TimeString
	Duration int // минуты; <= 0 трактуется как fallback-длительность
}

// Request входные данные расчета доступных слотов на одну дату
type Request struct {
	// Date календарная дата, на которую считаются слоты
	Date time.Time

	// RequestedDuration суммарная длительность бронируемых услуг в минутах
	// Значение <= 0 заменяется дефолтом (30 минут)
	RequestedDuration int

	// Hours рабочие часы салона
	Hours Hours

	// CustomSchedule явный список слотов на эту дату
	// nil — переопределения нет; пустой непустой-nil список закрывает день
	CustomSchedule []types.TimeString

	// Blocked закрытые интервалы на эту дату
	Blocked []Block

	// Occupied занятые диапазоны неотмененных записей на эту дату
	Occupied []Occupied

	// Now текущий момент; используется только когда Date — сегодня,
	// чтобы исключить прошедшие слоты
	Now time.Time
}

// Slots возвращает упорядоченный список доступных времен начала.
// Порядок повторяет порядок базовых кандидатов: custom/manual списки
// считаются отсортированными автором, сгенерированные — хронологические.
func Slots(req Request) ([]types.TimeString, error) {
	duration := req.RequestedDuration
	if duration <= 0 {
		duration = domain.DefaultRequestedDurationMinutes
	}

	// Шаг 1: базовые кандидаты (первый подошедший источник побеждает)
	base, err := baseCandidates(req)
	if err != nil {
		return nil, err
	}

	closingMinutes, err := req.Hours.Closing.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidConfiguration, err)
	}

	today := isSameDay(req.Date, req.Now)

	// Шаг 2: фильтрация кандидатов
	result := make([]types.TimeString, 0, len(base))
	for _, slot := range base {
		slotMinutes, err := slot.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: slot %q: %v", ErrInvalidConfiguration, slot, err)
		}

		// Прошедшие слоты сегодняшнего дня
		if today && slotInstant(req.Date, slotMinutes, req.Now.Location()).Before(req.Now) {
			continue
		}

		if isBlocked(slot, req.Blocked) {
			continue
		}

		if conflicts(slotMinutes, duration, req.Occupied) {
			continue
		}

		// Запись должна закончиться не позже закрытия
		if slotMinutes+duration > closingMinutes {
			continue
		}

		result = append(result, slot)
	}

	return result, nil
}

// baseCandidates выбирает источник базовых слотов по приоритету:
// custom schedule > manual hours > генерация по интервалу
func baseCandidates(req Request) ([]types.TimeString, error) {
	if req.CustomSchedule != nil {
		return req.CustomSchedule, nil
	}

	if req.Hours.Mode == domain.ScheduleModeManual && len(req.Hours.ManualHours) > 0 {
		return req.Hours.ManualHours, nil
	}

	return generateIntervalSlots(req.Hours)
}

// generateIntervalSlots генерирует кандидатов шагом interval минут.
// Минуты идут по сетке каждого часа (0, interval, 2*interval, ...);
// в первом часе отбрасываются минуты до открытия, в последнем — после
// закрытия, поэтому обе границы включительны.
func generateIntervalSlots(hours Hours) ([]types.TimeString, error) {
	openMinutes, err := hours.Opening.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidConfiguration, err)
	}
	closeMinutes, err := hours.Closing.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidConfiguration, err)
	}

	// Открытие не раньше закрытия — салон закрыт, слотов нет
	if openMinutes >= closeMinutes {
		return []types.TimeString{}, nil
	}

	interval := hours.Interval
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	openHour, openMin := openMinutes/60, openMinutes%60
	closeHour, closeMin := closeMinutes/60, closeMinutes%60

	slots := make([]types.TimeString, 0)
	for h := openHour; h <= closeHour; h++ {
		for m := 0; m < 60; m += interval {
			if h == openHour && m < openMin {
				continue
			}
			if h == closeHour && m > closeMin {
				continue
			}
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", h, m)))
		}
	}

	return slots, nil
}

// isBlocked проверяет, что слот попадает в закрытый интервал
// Граница: blocked.Start <= t < blocked.End
func isBlocked(t types.TimeString, blocked []Block) bool {
	for _, b := range blocked {
		if b.FullDay {
			return true
		}
		if !t.IsBefore(b.Start) && t.IsBefore(b.End) {
			return true
		}
	}
	return false
}

// conflicts проверяет пересечение слота [t, t+duration) с занятыми
// диапазонами: t < occ.end AND t+duration > occ.start
func conflicts(slotMinutes, duration int, occupied []Occupied) bool {
	slotEnd := slotMinutes + duration

	for _, occ := range occupied {
		occStart, err := occ.Start.Minutes()
		if err != nil {
			// Непарсящееся время существующей записи пропускаем,
			// а не валим весь расчет
			continue
		}

		occDuration := occ.Duration
		if occDuration <= 0 {
			occDuration = domain.FallbackAppointmentDurationMinutes
		}

		if slotMinutes < occStart+occDuration && slotEnd > occStart {
			return true
		}
	}

	return false
}

// slotInstant строит абсолютный момент начала слота на дате date
func slotInstant(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
