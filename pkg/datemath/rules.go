package datemath

import (
	"regexp"
	"strconv"
	"time"
)

const (
	anchorPrefix   = `^(?:due\s+(?:by|on|before|until)\s+|(?:due|by|on|before|until)\s+)?`
	weekdayPattern = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun)`

	// maxCount bounds "in N units" so AddDate cannot overflow.
	maxCount = 10000
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// rule is one entry of the ordered relative-phrase table.
// resolve receives the submatches and today's local midnight.
type rule struct {
	name       string
	pattern    *regexp.Regexp
	confidence Confidence
	resolve    func(m []string, today time.Time) (time.Time, bool)
}

// relativeRules are evaluated top to bottom; the first match wins.
var relativeRules = []rule{
	{
		name:       "today",
		pattern:    relative(`today\b`),
		confidence: ConfidenceHigh,
		resolve: func(_ []string, today time.Time) (time.Time, bool) {
			return today, true
		},
	},
	{
		name:       "tomorrow",
		pattern:    relative(`tomorrow\b`),
		confidence: ConfidenceHigh,
		resolve: func(_ []string, today time.Time) (time.Time, bool) {
			return today.AddDate(0, 0, 1), true
		},
	},
	{
		name:       "weekday",
		pattern:    relative(`(next\s+)?` + weekdayPattern + `\b`),
		confidence: ConfidenceHigh,
		resolve:    resolveWeekday,
	},
	{
		name:       "in_duration",
		pattern:    relative(`in\s+(\d+|an?|one)\s+(day|week|month)s?\b`),
		confidence: ConfidenceHigh,
		resolve:    resolveInDuration,
	},
	{
		name:       "next_period",
		pattern:    relative(`next\s+(week|month)\b`),
		confidence: ConfidenceHigh,
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			if m[1] == "week" {
				return today.AddDate(0, 0, 7), true
			}
			return today.AddDate(0, 1, 0), true
		},
	},
	{
		name:       "end_of_period",
		pattern:    relative(`end\s+of\s+(?:the\s+)?(week|month)\b`),
		confidence: ConfidenceHigh,
		resolve:    resolveEndOfPeriod,
	},
	{
		name:       "this_weekday",
		pattern:    relative(`this\s+` + weekdayPattern + `\b`),
		confidence: ConfidenceHigh,
		resolve:    resolveThisWeekday,
	},
}

func relative(p string) *regexp.Regexp {
	return regexp.MustCompile(anchorPrefix + p)
}

// resolveWeekday handles "friday" and "next friday". A bare weekday equal to
// today resolves to today; with "next" it resolves to a week from today.
func resolveWeekday(m []string, today time.Time) (time.Time, bool) {
	target, ok := weekdays[m[2]]
	if !ok {
		return time.Time{}, false
	}
	hasNext := m[1] != ""

	delta := int(target - today.Weekday())
	if delta < 0 || (delta == 0 && hasNext) {
		delta += 7
	}
	return today.AddDate(0, 0, delta), true
}

// resolveThisWeekday handles "this friday". Today or an already passed
// weekday rolls over to next week's occurrence.
func resolveThisWeekday(m []string, today time.Time) (time.Time, bool) {
	target, ok := weekdays[m[1]]
	if !ok {
		return time.Time{}, false
	}

	delta := int(target - today.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return today.AddDate(0, 0, delta), true
}

func resolveInDuration(m []string, today time.Time) (time.Time, bool) {
	var amount int
	switch m[1] {
	case "a", "an", "one":
		amount = 1
	default:
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxCount {
			return time.Time{}, false
		}
		amount = n
	}

	switch m[2] {
	case "day":
		return today.AddDate(0, 0, amount), true
	case "week":
		return today.AddDate(0, 0, amount*7), true
	case "month":
		return today.AddDate(0, amount, 0), true
	}
	return time.Time{}, false
}

// resolveEndOfPeriod returns the Sunday closing the current Monday-based week,
// or the last day of the current month.
func resolveEndOfPeriod(m []string, today time.Time) (time.Time, bool) {
	if m[1] == "week" {
		return today.AddDate(0, 0, (7-int(today.Weekday()))%7), true
	}
	return time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()), true
}
