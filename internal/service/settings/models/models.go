package models

import (
	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// Request модели

// UpdateSettingsRequest запрос на сохранение настроек салона
type UpdateSettingsRequest struct {
	BusinessName      string   `json:"businessName"`
	LogoURL           *string  `json:"logoUrl,omitempty"`
	CoverImageURL     *string  `json:"coverImageUrl,omitempty"`
	WhatsAppNumber    string   `json:"whatsappNumber"`
	ReservationAmount float64  `json:"reservationAmount"`
	OpeningTime       string   `json:"openingTime"` // "09:00"
	ClosingTime       string   `json:"closingTime"` // "18:00"
	TimeSlotInterval  int      `json:"timeSlotInterval"`
	ScheduleMode      string   `json:"scheduleMode"` // "interval" | "manual"
	ManualHours       []string `json:"manualHours"`
	PrimaryColor      string   `json:"primaryColor"`
	AccentColor       string   `json:"accentColor"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateSettingsRequest) ToDomain() *domain.Settings {
	manualHours := make([]types.TimeString, 0, len(r.ManualHours))
	for _, h := range r.ManualHours {
		manualHours = append(manualHours, types.TimeString(h))
	}

	return &domain.Settings{
		ID:                domain.SettingsID,
		BusinessName:      r.BusinessName,
		LogoURL:           r.LogoURL,
		CoverImageURL:     r.CoverImageURL,
		WhatsAppNumber:    r.WhatsAppNumber,
		ReservationAmount: r.ReservationAmount,
		OpeningTime:       types.TimeString(r.OpeningTime),
		ClosingTime:       types.TimeString(r.ClosingTime),
		TimeSlotInterval:  r.TimeSlotInterval,
		ScheduleMode:      domain.ScheduleMode(r.ScheduleMode),
		ManualHours:       manualHours,
		PrimaryColor:      r.PrimaryColor,
		AccentColor:       r.AccentColor,
	}
}

// Response модели

// SettingsResponse ответ с настройками салона (админка)
type SettingsResponse struct {
	BusinessName      string   `json:"businessName"`
	LogoURL           *string  `json:"logoUrl,omitempty"`
	CoverImageURL     *string  `json:"coverImageUrl,omitempty"`
	WhatsAppNumber    string   `json:"whatsappNumber"`
	ReservationAmount float64  `json:"reservationAmount"`
	OpeningTime       string   `json:"openingTime"`
	ClosingTime       string   `json:"closingTime"`
	TimeSlotInterval  int      `json:"timeSlotInterval"`
	ScheduleMode      string   `json:"scheduleMode"`
	ManualHours       []string `json:"manualHours"`
	PrimaryColor      string   `json:"primaryColor"`
	AccentColor       string   `json:"accentColor"`
}

// SiteResponse публичные данные салона для витрины
// Без суммы депозита и внутренних параметров расписания
type SiteResponse struct {
	BusinessName      string  `json:"businessName"`
	LogoURL           *string `json:"logoUrl,omitempty"`
	CoverImageURL     *string `json:"coverImageUrl,omitempty"`
	WhatsAppNumber    string  `json:"whatsappNumber"`
	ReservationAmount float64 `json:"reservationAmount"`
	PrimaryColor      string  `json:"primaryColor"`
	AccentColor       string  `json:"accentColor"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}

	manualHours := make([]string, 0, len(s.ManualHours))
	for _, h := range s.ManualHours {
		manualHours = append(manualHours, h.String())
	}

	return &SettingsResponse{
		BusinessName:      s.BusinessName,
		LogoURL:           s.LogoURL,
		CoverImageURL:     s.CoverImageURL,
		WhatsAppNumber:    s.WhatsAppNumber,
		ReservationAmount: s.ReservationAmount,
		OpeningTime:       s.OpeningTime.String(),
		ClosingTime:       s.ClosingTime.String(),
		TimeSlotInterval:  s.TimeSlotInterval,
		ScheduleMode:      string(s.ScheduleMode),
		ManualHours:       manualHours,
		PrimaryColor:      s.PrimaryColor,
		AccentColor:       s.AccentColor,
	}
}

// SiteFromDomainSettings конвертирует domain модель в публичный DTO
func SiteFromDomainSettings(s *domain.Settings) *SiteResponse {
	if s == nil {
		return nil
	}

	return &SiteResponse{
		BusinessName:      s.BusinessName,
		LogoURL:           s.LogoURL,
		CoverImageURL:     s.CoverImageURL,
		WhatsAppNumber:    s.WhatsAppNumber,
		ReservationAmount: s.ReservationAmount,
		PrimaryColor:      s.PrimaryColor,
		AccentColor:       s.AccentColor,
	}
}
