package domain

// Default durations in minutes
const (
	// DefaultRequestedDurationMinutes is assumed when a booking request
	// carries no resolvable duration (nothing selected yet).
	DefaultRequestedDurationMinutes = 30

	// FallbackAppointmentDurationMinutes is the occupied-range duration
	// used when an existing appointment's service reference cannot be
	// resolved.
	FallbackAppointmentDurationMinutes = 60

	// DefaultSlotIntervalMinutes is used when the configured interval is
	// missing or non-positive.
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240

	MaxNotesLength  = 500
	MaxReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
