// Package cycle maps calendar dates to billing-cycle labels.
//
// A billing cycle is the month a credit-card charge settles in:
// purchases through the 15th belong to the date's own month, later
// purchases roll into the next month. The same labels are used as
// budget periods, so every caller that groups by cycle must go through
// Resolve.
package cycle

import "time"

// Format is the layout of a cycle label, e.g. "Jun 2025".
// Labels are stable and sortable within a year by parsing back
// through ParseLabel.
const Format = "Jan 2006"

// Resolve returns the billing-cycle label for the given date.
// Day-of-month 15 is the cutoff: the 15th stays in its own month,
// the 16th rolls forward, with the year incrementing past December.
func Resolve(date time.Time) string {
	year, month, day := date.Date()
	if day > 15 {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(Format)
}

// ParseLabel parses a cycle label back to the first instant of its
// month. Returns an error for anything Resolve would not produce.
func ParseLabel(label string) (time.Time, error) {
	return time.Parse(Format, label)
}
