package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date phrases in a fixed timezone.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseNaturalDate resolves input relative to the current time.
func (p *Parser) ParseNaturalDate(input string) (ParsedDate, bool) {
	return p.Parse(input, p.now())
}

// Parse resolves input relative to baseTime. The boolean is false when no
// rule applies; callers must not substitute a default date in that case.
func (p *Parser) Parse(input string, baseTime time.Time) (ParsedDate, bool) {
	original := strings.TrimSpace(input)
	if original == "" {
		return ParsedDate{}, false
	}

	normalized := normalize(original)
	today := p.startOfDay(baseTime)

	result := func(day time.Time, c Confidence) (ParsedDate, bool) {
		return ParsedDate{
			Date:          p.atDeadline(day),
			Confidence:    c,
			OriginalInput: original,
		}, true
	}

	for _, r := range relativeRules {
		m := r.pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		if day, ok := r.resolve(m, today); ok {
			return result(day, r.confidence)
		}
	}

	if day, hasYear, ok := p.parseAbsolute(normalized, today); ok {
		if hasYear {
			return result(day, ConfidenceHigh)
		}
		return result(day, ConfidenceMedium)
	}

	if anchorPattern.MatchString(normalized) {
		return result(today, ConfidenceHigh)
	}

	for _, kw := range urgencyKeywords {
		if strings.Contains(normalized, kw) {
			return result(today, ConfidenceMedium)
		}
	}

	return ParsedDate{}, false
}

var (
	// anchorPattern is an explicit same-day deadline, e.g. "by noon".
	anchorPattern   = regexp.MustCompile(`\bby\s+(?:midnight|noon|eod|end\s+of\s+day)\b`)
	urgencyKeywords = []string{"asap", "urgent", "immediately", "midnight", "eod", "end of day"}

	whitespace    = regexp.MustCompile(`\s+`)
	ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\b`)
	leadingAnchor = regexp.MustCompile(`^(?:due\s+(?:by|on|before|until)\s+|(?:due|by|on|before|until)\s+)`)
	fourDigitYear = regexp.MustCompile(`\b\d{4}\b`)
	isoDate       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// absoluteLayouts are tried in order; the first one that parses wins.
// Month names are matched case-insensitively by time.Parse.
var absoluteLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-1-2",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2006",
	"Jan 2006",
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
	"1/2",
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return whitespace.ReplaceAllString(s, " ")
}

// parseAbsolute tries the fixed layouts. Dates without a year land on the
// next occurrence: this year, or next year if the day already passed.
// Today's date counts as upcoming and stays in the current year.
func (p *Parser) parseAbsolute(s string, today time.Time) (time.Time, bool, bool) {
	s = leadingAnchor.ReplaceAllString(s, "")
	s = ordinalSuffix.ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)
	hasYear := fourDigitYear.MatchString(s)

	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, s, p.location)
		if err != nil {
			continue
		}
		if hasYear {
			return p.startOfDay(t), true, true
		}
		return p.nextOccurrence(t.Month(), t.Day(), today), false, true
	}
	return time.Time{}, false, false
}

func (p *Parser) nextOccurrence(month time.Month, day int, today time.Time) time.Time {
	year := today.Year()
	candidate, ok := p.validDate(year, month, day)
	if ok && !candidate.Before(today) {
		return candidate
	}
	// Feb 29 may need up to a few years to find a leap year.
	for y := year + 1; y <= year+8; y++ {
		if candidate, ok := p.validDate(y, month, day); ok {
			return candidate
		}
	}
	return candidate
}

func (p *Parser) validDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	return t, t.Month() == month && t.Day() == day
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// atDeadline pins a day to DeadlineHour:00:00.000 local time.
func (p *Parser) atDeadline(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), DeadlineHour, 0, 0, 0, p.location)
}

// FormatDueDate renders date for display relative to baseTime:
// "Today", "Tomorrow", a weekday name within the next week, otherwise "Jan 2".
func (p *Parser) FormatDueDate(date, baseTime time.Time) string {
	d := date.In(p.location)
	days := calendarDaysBetween(baseTime.In(p.location), d)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1 && days < 7:
		return d.Weekday().String()
	default:
		return d.Format("Jan 2")
	}
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring DST.
func calendarDaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseLocalISODate parses "YYYY-MM-DD" into local midnight of that calendar
// day. The components are decomposed by hand so the day never shifts with
// the UTC offset.
func (p *Parser) ParseLocalISODate(s string) (time.Time, error) {
	m := isoDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, s)
	}

	t, ok := p.validDate(year, time.Month(month), day)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, s)
	}
	return t, nil
}

// ToISODateString formats t as "YYYY-MM-DD" in the parser's timezone.
func (p *Parser) ToISODateString(t time.Time) string {
	return t.In(p.location).Format(ISODateLayout)
}
