package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// futureDate is far enough ahead that "today" filtering never applies
var futureDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func defaultHours() Hours {
	return Hours{
		Opening:  "09:00",
		Closing:  "18:00",
		Interval: 30,
		Mode:     domain.ScheduleModeInterval,
	}
}

func ts(values ...string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}

func TestSlots_IntervalGeneration(t *testing.T) {
	slots, err := Slots(Request{
		Date: futureDate,
		Hours: Hours{
			Opening:  "09:00",
			Closing:  "11:00",
			Interval: 30,
			Mode:     domain.ScheduleModeInterval,
		},
		RequestedDuration: 0,
		Now:               testNow,
	})
	require.NoError(t, err)

	// Endpoint-inclusive generation; the 30-minute default duration then
	// drops 11:00 (it would end past closing) and keeps 10:30.
	assert.Equal(t, ts("09:00", "09:30", "10:00", "10:30"), slots)
}

func TestSlots_IntervalGeneration_BaseCandidates(t *testing.T) {
	// With a zero-cost duration check neutralized by closing far away,
	// verify the raw candidate sequence for 09:00-11:00 @ 30m.
	base, err := generateIntervalSlots(Hours{Opening: "09:00", Closing: "11:00", Interval: 30})
	require.NoError(t, err)
	assert.Equal(t, ts("09:00", "09:30", "10:00", "10:30", "11:00"), base)
}

func TestSlots_OffsetOpeningMinutes(t *testing.T) {
	// Minutes step on each hour's own grid, skipping those outside hours
	base, err := generateIntervalSlots(Hours{Opening: "09:15", Closing: "10:45", Interval: 30})
	require.NoError(t, err)
	assert.Equal(t, ts("09:30", "10:00", "10:30"), base)
}

func TestSlots_OpeningNotBeforeClosing(t *testing.T) {
	for _, hours := range []Hours{
		{Opening: "18:00", Closing: "09:00", Interval: 30},
		{Opening: "09:00", Closing: "09:00", Interval: 30},
	} {
		slots, err := Slots(Request{Date: futureDate, Hours: hours, Now: testNow})
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestSlots_CustomSchedulePrecedence(t *testing.T) {
	req := Request{
		Date:           futureDate,
		Hours:          defaultHours(),
		CustomSchedule: ts("10:00", "14:30"),
		Now:            testNow,
	}
	// Manual hours present and mode manual: custom schedule still wins
	req.Hours.Mode = domain.ScheduleModeManual
	req.Hours.ManualHours = ts("08:00", "08:30")

	slots, err := Slots(req)
	require.NoError(t, err)
	assert.Equal(t, ts("10:00", "14:30"), slots)
}

func TestSlots_EmptyCustomScheduleClosesDay(t *testing.T) {
	slots, err := Slots(Request{
		Date:           futureDate,
		Hours:          defaultHours(),
		CustomSchedule: []types.TimeString{},
		Now:            testNow,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_ManualModePrecedence(t *testing.T) {
	hours := defaultHours()
	hours.Mode = domain.ScheduleModeManual
	hours.ManualHours = ts("09:00", "12:00", "15:00")

	slots, err := Slots(Request{Date: futureDate, Hours: hours, Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, ts("09:00", "12:00", "15:00"), slots)
}

func TestSlots_ManualModeEmptyListFallsBackToInterval(t *testing.T) {
	hours := Hours{
		Opening:  "09:00",
		Closing:  "10:00",
		Interval: 30,
		Mode:     domain.ScheduleModeManual,
	}

	slots, err := Slots(Request{Date: futureDate, Hours: hours, Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, ts("09:00", "09:30"), slots)
}

func TestSlots_BlockedIntervals(t *testing.T) {
	slots, err := Slots(Request{
		Date:    futureDate,
		Hours:   defaultHours(),
		Blocked: []Block{{Start: "10:00", End: "12:00"}},
		Now:     testNow,
	})
	require.NoError(t, err)

	// Slot starts inside [10:00, 12:00) are excluded; 12:00 itself is not
	for _, slot := range slots {
		assert.False(t, !slot.IsBefore("10:00") && slot.IsBefore("12:00"),
			"slot %s starts inside the blocked interval", slot)
	}
	assert.Contains(t, slots, types.TimeString("09:30"))
	assert.Contains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("11:30"))
}

func TestSlots_FullDayBlock(t *testing.T) {
	slots, err := Slots(Request{
		Date:    futureDate,
		Hours:   defaultHours(),
		Blocked: []Block{{Start: "09:00", End: "18:00", FullDay: true}},
		Now:     testNow,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlots_ConflictWithExistingAppointment(t *testing.T) {
	// spec scenario: one 60-minute appointment at 10:00, requesting 30
	slots, err := Slots(Request{
		Date:              futureDate,
		Hours:             Hours{Opening: "09:00", Closing: "17:00", Interval: 30, Mode: domain.ScheduleModeInterval},
		RequestedDuration: 30,
		Occupied:          []Occupied{{Start: "10:00", Duration: 60}},
		Now:               testNow,
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("09:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestSlots_RequestedDurationOverlapsForward(t *testing.T) {
	// A 90-minute request at 09:00 would run into the 10:00 appointment
	slots, err := Slots(Request{
		Date:              futureDate,
		Hours:             defaultHours(),
		RequestedDuration: 90,
		Occupied:          []Occupied{{Start: "10:00", Duration: 60}},
		Now:               testNow,
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("09:00"))
	assert.NotContains(t, slots, types.TimeString("09:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestSlots_UnresolvedDurationFallsBackTo60(t *testing.T) {
	slots, err := Slots(Request{
		Date:              futureDate,
		Hours:             defaultHours(),
		RequestedDuration: 30,
		Occupied:          []Occupied{{Start: "10:00", Duration: 0}},
		Now:               testNow,
	})
	require.NoError(t, err)

	// Zero duration means the service reference is gone: occupy 60 minutes
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestSlots_DurationMustFitBeforeClosing(t *testing.T) {
	slots, err := Slots(Request{
		Date:              futureDate,
		Hours:             defaultHours(),
		RequestedDuration: 120,
		Now:               testNow,
	})
	require.NoError(t, err)

	closing, err := types.TimeString("18:00").Minutes()
	require.NoError(t, err)

	for _, slot := range slots {
		minutes, err := slot.Minutes()
		require.NoError(t, err)
		assert.LessOrEqual(t, minutes+120, closing, "slot %s does not fit before closing", slot)
	}
	assert.Contains(t, slots, types.TimeString("16:00"))
	assert.NotContains(t, slots, types.TimeString("16:30"))
}

func TestSlots_PastSlotsExcludedToday(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 15, 0, 0, time.UTC)

	slots, err := Slots(Request{
		Date:  now,
		Hours: defaultHours(),
		Now:   now,
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("09:00"))
	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.Contains(t, slots, types.TimeString("12:30"))

	for _, slot := range slots {
		minutes, err := slot.Minutes()
		require.NoError(t, err)
		instant := slotInstant(now, minutes, time.UTC)
		assert.False(t, instant.Before(now), "slot %s is in the past", slot)
	}
}

func TestSlots_PastSlotsKeptOnFutureDates(t *testing.T) {
	slots, err := Slots(Request{
		Date:  futureDate,
		Hours: defaultHours(),
		Now:   testNow,
	})
	require.NoError(t, err)
	assert.Contains(t, slots, types.TimeString("09:00"))
}

func TestSlots_Idempotent(t *testing.T) {
	req := Request{
		Date:              futureDate,
		Hours:             defaultHours(),
		RequestedDuration: 45,
		Blocked:           []Block{{Start: "13:00", End: "14:00"}},
		Occupied:          []Occupied{{Start: "10:00", Duration: 60}},
		Now:               testNow,
	}

	first, err := Slots(req)
	require.NoError(t, err)
	second, err := Slots(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlots_MalformedConfigurationFailsFast(t *testing.T) {
	_, err := Slots(Request{
		Date:  futureDate,
		Hours: Hours{Opening: "nine", Closing: "18:00", Interval: 30},
		Now:   testNow,
	})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Slots(Request{
		Date:           futureDate,
		Hours:          defaultHours(),
		CustomSchedule: ts("25:99"),
		Now:            testNow,
	})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSlots_EndToEndScenario(t *testing.T) {
	// opening=09:00 closing=17:00 interval=30, one confirmed 60-minute
	// appointment at 10:00, requested duration 30
	slots, err := Slots(Request{
		Date:              futureDate,
		Hours:             Hours{Opening: "09:00", Closing: "17:00", Interval: 30, Mode: domain.ScheduleModeInterval},
		RequestedDuration: 30,
		Occupied:          []Occupied{{Start: "10:00", Duration: 60}},
		Now:               testNow,
	})
	require.NoError(t, err)

	expected := ts(
		"09:00", "09:30",
		"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	)
	assert.Equal(t, expected, slots)
}
