package domain

import (
	"time"

	"github.com/mundoinsolito/manicura/pkg/types"
)

// BlockedTime is an administrator-declared closed interval
// [StartTime, EndTime) on a given date. FullDay marks a whole-day
// closure explicitly instead of inferring it from the interval bounds
// matching business hours.
type BlockedTime struct {
	ID        string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
	FullDay   bool
	CreatedAt time.Time
}

// Contains returns true if a slot starting at t falls inside the block
func (b *BlockedTime) Contains(t types.TimeString) bool {
	if b.FullDay {
		return true
	}
	return !t.IsBefore(b.StartTime) && t.IsBefore(b.EndTime)
}

// CustomSchedule is an explicit per-date slot list that fully replaces
// generated or manual hours for its date. An empty hour list closes the
// date. At most one entry exists per date.
type CustomSchedule struct {
	ID        string
	Date      time.Time
	Hours     []types.TimeString
	CreatedAt time.Time
}
