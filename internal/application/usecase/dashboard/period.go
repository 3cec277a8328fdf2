// Package dashboard contains the dashboard aggregation use case and the pure
// month-window and derivation helpers it is built on.
package dashboard

import "time"

// MonthWindow is an inclusive [Start, End] calendar-month range.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// MonthBounds returns the window of the calendar month containing ref and
// the window of the immediately preceding month, in ref's location.
//
// The previous month is derived from the first day of the current month, not
// from ref itself: shifting e.g. March 31 back one month would normalize to
// March 3 and land in the wrong window.
func MonthBounds(ref time.Time) (current, previous MonthWindow) {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())

	current = MonthWindow{
		Start: firstOfMonth,
		End:   firstOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}

	firstOfPrevious := firstOfMonth.AddDate(0, -1, 0)
	previous = MonthWindow{
		Start: firstOfPrevious,
		End:   firstOfMonth.Add(-time.Nanosecond),
	}

	return current, previous
}
