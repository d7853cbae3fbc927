package domain

import (
	"time"

	"github.com/mundoinsolito/manicura/pkg/types"
)

// ScheduleMode selects how base slot candidates are produced
type ScheduleMode string

const (
	// ScheduleModeInterval generates slots by stepping through business
	// hours with a fixed interval
	ScheduleModeInterval ScheduleMode = "interval"

	// ScheduleModeManual uses the explicit manual hour list verbatim
	ScheduleModeManual ScheduleMode = "manual"
)

// Valid returns true if the mode is one of the known values
func (m ScheduleMode) Valid() bool {
	return m == ScheduleModeInterval || m == ScheduleModeManual
}

// SettingsID is the id of the single settings row
const SettingsID = "1"

// Settings holds the salon-wide configuration: business identity,
// booking hours and the deposit required to reserve a slot.
// There is exactly one row; every availability computation reads it.
type Settings struct {
	ID                string
	BusinessName      string
	LogoURL           *string
	CoverImageURL     *string
	WhatsAppNumber    string
	ReservationAmount float64
	OpeningTime       types.TimeString
	ClosingTime       types.TimeString
	TimeSlotInterval  int
	ScheduleMode      ScheduleMode
	ManualHours       []types.TimeString
	PrimaryColor      string
	AccentColor       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultSettings returns the configuration used until the
// administrator saves their own
func DefaultSettings() *Settings {
	return &Settings{
		ID:                SettingsID,
		BusinessName:      "Nails Clara",
		WhatsAppNumber:    "+58412000000",
		ReservationAmount: 10,
		OpeningTime:       "09:00",
		ClosingTime:       "18:00",
		TimeSlotInterval:  DefaultSlotIntervalMinutes,
		ScheduleMode:      ScheduleModeInterval,
		ManualHours:       []types.TimeString{},
		PrimaryColor:      "#d4768f",
		AccentColor:       "#d4a574",
	}
}
